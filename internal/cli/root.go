package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"pocket/internal/cli/output"
	"pocket/internal/config"
	"pocket/internal/domain"
	"pocket/internal/logging"
	"pocket/internal/service"
	"pocket/internal/store/jsonfile"
)

// annotationStore marks commands that need the expense list loaded before
// they run.
const annotationStore = "pocket/store"

type RootOptions struct {
	Output   string
	FilePath string
	LogLevel string

	now      func() time.Time
	expenses *service.ExpenseService
	warnings []domain.Warning
}

func NewRootCmd() *cobra.Command {
	return newRootCmdWithOptions(&RootOptions{})
}

func newRootCmdWithOptions(opts *RootOptions) *cobra.Command {
	if opts.Output == "" {
		opts.Output = output.FormatHuman
	}
	if opts.FilePath == "" {
		opts.FilePath = config.DefaultStoreFile
	}
	if opts.LogLevel == "" {
		opts.LogLevel = logging.DefaultLevel
	}

	cmd := &cobra.Command{
		Use:           "pocket",
		Short:         "Simple expense tracker CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			return usageError(cmd, &cliError{
				Code:    output.CodeInvalidArgument,
				Message: fmt.Sprintf("unknown command %q", args[0]),
				Details: map[string]any{"args": args},
			})
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !output.IsValidFormat(opts.Output) {
				return usageError(cmd, &cliError{
					Code:    output.CodeInvalidArgument,
					Message: fmt.Sprintf("invalid --output value %q: supported values are %s|%s", opts.Output, output.FormatHuman, output.FormatJSON),
				})
			}
			opts.Output = strings.ToLower(strings.TrimSpace(opts.Output))

			if err := logging.Init(opts.LogLevel, cmd.ErrOrStderr()); err != nil {
				return usageError(cmd, &cliError{
					Code:    output.CodeInvalidArgument,
					Message: fmt.Sprintf("invalid --log-level value: %v", err),
				})
			}

			if cmd.Annotations[annotationStore] != "true" {
				return nil
			}
			return openStore(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError(cmd, &cliError{
				Code:    output.CodeInvalidArgument,
				Message: "a command is required",
				Details: map[string]any{"commands": []string{"add", "list", "total", "summary", "export"}},
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Output, "output", opts.Output, "Output format: human|json")
	cmd.PersistentFlags().StringVar(&opts.FilePath, "file", opts.FilePath, "Expense store path")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Diagnostic log level on stderr: debug|info|warning|error")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, &cliError{
			Code:    output.CodeInvalidArgument,
			Message: err.Error(),
		})
	})

	cmd.AddCommand(
		NewAddCmd(opts),
		NewListCmd(opts),
		NewTotalCmd(opts),
		NewSummaryCmd(opts),
		NewExportCmd(opts),
	)

	return cmd
}

func openStore(cmd *cobra.Command, opts *RootOptions) error {
	path, err := config.ResolvePath(opts.FilePath)
	if err != nil {
		return &cliError{Code: output.CodeConfigError, Message: fmt.Sprintf("invalid --file value %q: %v", opts.FilePath, err)}
	}

	store, err := jsonfile.New(path)
	if err != nil {
		return &cliError{Code: output.CodeConfigError, Message: err.Error()}
	}

	serviceOpts := []service.ExpenseServiceOption{service.WithExpenseSource(path)}
	if opts.now != nil {
		serviceOpts = append(serviceOpts, service.WithExpenseClock(opts.now))
	}

	svc, err := service.NewExpenseService(store, serviceOpts...)
	if err != nil {
		return fmt.Errorf("expense service init: %w", err)
	}

	result, err := svc.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	opts.expenses = svc
	opts.warnings = result.Warnings
	return nil
}

func storeAnnotations() map[string]string {
	return map[string]string{annotationStore: "true"}
}
