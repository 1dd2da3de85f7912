package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pocket/internal/cli/output"
	"pocket/internal/domain"
	"pocket/internal/service"
)

func NewAddCmd(opts *RootOptions) *cobra.Command {
	input := &domain.ExpenseAddInput{}

	return &cobra.Command{
		Use:         "add <amount> <desc> <cat>",
		Short:       "Add an expense dated today",
		Example:     "  pocket add 12.50 coffee food\n  pocket add -- -5 refund misc",
		Annotations: storeAnnotations(),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := exactArgs(cmd, args, "amount", "desc", "cat"); err != nil {
				return err
			}

			amount, err := domain.ParseAmount(args[0])
			if err != nil {
				return usageError(cmd, &cliError{
					Code:    output.CodeInvalidArgument,
					Message: fmt.Sprintf("invalid amount %q: %s", args[0], messageFromError(err)),
					Details: map[string]any{"field": "amount", "value": args[0]},
				})
			}

			input.Amount = amount
			input.Description = args[1]
			input.Category = args[2]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := expenseService(opts)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			created, err := svc.Add(cmd.Context(), *input)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			return printResult(cmd, opts, addView{Expense: created})
		},
	}
}

func NewListCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List every expense in insertion order",
		Annotations: storeAnnotations(),
		Args: func(cmd *cobra.Command, args []string) error {
			return exactArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := expenseService(opts)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			expenses, err := svc.List(cmd.Context())
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			return printResult(cmd, opts, listView{Expenses: expenses, Count: len(expenses)})
		},
	}
}

func NewTotalCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "total",
		Short:       "Print the sum of all expenses",
		Annotations: storeAnnotations(),
		Args: func(cmd *cobra.Command, args []string) error {
			return exactArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := expenseService(opts)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			total, err := svc.Total(cmd.Context())
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			return printResult(cmd, opts, totalView{Total: total})
		},
	}
}

func NewSummaryCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:         "summary",
		Short:       "Print the sum of expenses per category",
		Annotations: storeAnnotations(),
		Args: func(cmd *cobra.Command, args []string) error {
			return exactArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := expenseService(opts)
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			summary, err := svc.Summary(cmd.Context())
			if err != nil {
				return printCLIError(cmd, opts, err)
			}

			return printResult(cmd, opts, summaryView(summary))
		},
	}
}

func expenseService(opts *RootOptions) (*service.ExpenseService, error) {
	if opts == nil || opts.expenses == nil {
		return nil, &cliError{
			Code:    output.CodeInternalError,
			Message: "expense store not loaded",
			Details: map[string]any{},
		}
	}
	return opts.expenses, nil
}
