package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pocket/internal/cli/output"
	"pocket/internal/domain"
)

type cliError struct {
	Code    string
	Message string
	Details any
}

func (e *cliError) Error() string {
	if e == nil {
		return "command error"
	}
	return e.Message
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var cliErr *cliError
	if errors.As(err, &cliErr) {
		return output.ExitCodeForErrorCode(cliErr.Code)
	}
	return output.ExitCodeForErrorCode(codeFromError(err))
}

// usageError prints the command usage on stderr and hands err back so
// cobra stops before any command or hook runs.
func usageError(cmd *cobra.Command, err *cliError) error {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return err
}

func exactArgs(cmd *cobra.Command, args []string, names ...string) error {
	if len(args) == len(names) {
		return nil
	}

	message := fmt.Sprintf("%s does not accept positional arguments", cmd.Name())
	if len(names) > 0 {
		message = fmt.Sprintf("%s requires exactly %d arguments: <%s>", cmd.Name(), len(names), strings.Join(names, "> <"))
	}
	return usageError(cmd, &cliError{
		Code:    output.CodeInvalidArgument,
		Message: message,
		Details: map[string]any{"required_args": names, "args": args},
	})
}

func outputFormat(opts *RootOptions) string {
	if opts == nil {
		return output.FormatHuman
	}
	return opts.Output
}

func errorWriter(cmd *cobra.Command, format string) io.Writer {
	if format == output.FormatJSON {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}

func printCLIError(cmd *cobra.Command, opts *RootOptions, err error) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	format := outputFormat(opts)
	warnings := envelopeWarnings(opts)

	if err == nil {
		env := output.NewErrorEnvelope(cmd.CommandPath(), output.CodeInternalError, "unexpected internal failure", map[string]any{}, warnings)
		return output.Print(errorWriter(cmd, format), format, env)
	}

	var cliErr *cliError
	if errors.As(err, &cliErr) {
		env := output.NewErrorEnvelope(cmd.CommandPath(), cliErr.Code, cliErr.Message, cliErr.Details, warnings)
		return output.Print(errorWriter(cmd, format), format, env)
	}

	env := output.NewErrorEnvelope(cmd.CommandPath(), codeFromError(err), messageFromError(err), map[string]any{"reason": err.Error()}, warnings)
	return output.Print(errorWriter(cmd, format), format, env)
}

// printResult writes a success envelope for data on stdout.
func printResult(cmd *cobra.Command, opts *RootOptions, data any) error {
	env := output.NewSuccessEnvelope(cmd.CommandPath(), data, envelopeWarnings(opts))
	return output.Print(cmd.OutOrStdout(), outputFormat(opts), env)
}

// envelopeWarnings returns load warnings for json output only. In human mode
// the logger has already reported them on stderr.
func envelopeWarnings(opts *RootOptions) []domain.Warning {
	if opts == nil || outputFormat(opts) != output.FormatJSON {
		return nil
	}
	return opts.warnings
}

func codeFromError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountOutOfRange),
		errors.Is(err, domain.ErrInvalidExportFormat):
		return output.CodeInvalidArgument
	case errors.Is(err, domain.ErrStoreWrite):
		return output.CodeStoreWriteError
	case errors.Is(err, domain.ErrExport):
		return output.CodeExportError
	default:
		return output.CodeInternalError
	}
}

func messageFromError(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "amount must be a decimal number"
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return "amount must be within ±1e308"
	case errors.Is(err, domain.ErrInvalidExportFormat):
		return "format must be one of: csv|json"
	case errors.Is(err, domain.ErrStoreWrite):
		return "could not write expense store"
	case errors.Is(err, domain.ErrExport):
		return "could not write export file"
	default:
		return "unexpected internal failure"
	}
}
