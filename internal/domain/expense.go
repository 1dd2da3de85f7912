package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	ErrStoreUnreadable     = errors.New("store unreadable")
	ErrStoreWrite          = errors.New("store write failed")
	ErrExport              = errors.New("export failed")
	ErrInvalidExportFormat = errors.New("invalid export format")
)

// Expense is one stored record. Records carry no identifier and are never
// edited once appended.
type Expense struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

type ExpenseAddInput struct {
	Amount      decimal.Decimal
	Description string
	Category    string
}

// NewExpense stamps the input with the local calendar date of now.
func NewExpense(input ExpenseAddInput, now time.Time) Expense {
	return Expense{
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        FormatDate(now),
	}
}

func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}
