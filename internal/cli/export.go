package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pocket/internal/cli/output"
	"pocket/internal/config"
	"pocket/internal/service"
)

type exportFlags struct {
	format string
	path   string
}

func NewExportCmd(opts *RootOptions) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:         "export",
		Short:       "Write all expenses to a CSV (or JSON) file",
		Annotations: storeAnnotations(),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := exactArgs(cmd, args); err != nil {
				return err
			}
			if strings.TrimSpace(flags.path) == "" {
				return usageError(cmd, &cliError{
					Code:    output.CodeInvalidArgument,
					Message: "path must not be empty",
					Details: map[string]any{"field": "path"},
				})
			}
			if _, err := service.NormalizeExportFormat(flags.format); err != nil {
				return usageError(cmd, &cliError{
					Code:    output.CodeInvalidArgument,
					Message: "format must be one of: csv|json",
					Details: map[string]any{"field": "format", "value": flags.format},
				})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseSvc, err := expenseService(opts)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			exportSvc, err := service.NewExportService(expenseSvc)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			result, err := exportSvc.Export(cmd.Context(), flags.format, flags.path)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			return printResult(cmd, opts, exportView(result))
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", service.ExportFormatCSV, "Export format: csv|json")
	cmd.Flags().StringVar(&flags.path, "path", config.DefaultExportFile, "Export file path")

	return cmd
}
