package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pocket/internal/domain"
	"pocket/internal/service"
)

type addView struct {
	Expense domain.Expense `json:"expense"`
}

func (v addView) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Expense saved.")
	return err
}

type listView struct {
	Expenses []domain.Expense `json:"expenses"`
	Count    int              `json:"count"`
}

func (v listView) RenderHuman(w io.Writer) error {
	for _, expense := range v.Expenses {
		_, err := fmt.Fprintf(w, "%s | %s%s | %s | %s\n",
			expense.Date,
			domain.FormatAmount(expense.Amount),
			domain.CurrencySymbol,
			expense.Category,
			expense.Description,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

type totalView struct {
	Total decimal.Decimal `json:"total"`
}

func (v totalView) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Total spent: %s\n", domain.FormatMoney(v.Total))
	return err
}

type summaryView domain.Summary

func (v summaryView) RenderHuman(w io.Writer) error {
	for _, category := range v.Categories {
		if _, err := fmt.Fprintf(w, "%s: %s\n", category.Category, domain.FormatMoney(category.Total)); err != nil {
			return err
		}
	}
	return nil
}

type exportView service.ExportResult

func (v exportView) RenderHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Exported to %s\n", v.File)
	return err
}
