package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"pocket/internal/domain"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"
)

var exportCSVHeader = []string{"date", "amount", "category", "description"}

type ExportService struct {
	expenseService *ExpenseService
}

type ExportResult struct {
	Format   string `json:"format"`
	File     string `json:"file"`
	Exported int    `json:"exported"`
}

type exportRecord struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type exportJSONEnvelope struct {
	Expenses []exportRecord `json:"expenses"`
}

func NewExportService(expenseService *ExpenseService) (*ExportService, error) {
	if expenseService == nil {
		return nil, fmt.Errorf("export service: expense service is required")
	}
	return &ExportService{expenseService: expenseService}, nil
}

func NormalizeExportFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatJSON:
		return ExportFormatJSON, nil
	default:
		return "", domain.ErrInvalidExportFormat
	}
}

// Export writes every expense, in load order, to filePath. The file is
// replaced on each call.
func (s *ExportService) Export(ctx context.Context, format, filePath string) (ExportResult, error) {
	normalizedFormat, err := NormalizeExportFormat(format)
	if err != nil {
		return ExportResult{}, err
	}

	expenses, err := s.expenseService.List(ctx)
	if err != nil {
		return ExportResult{}, err
	}

	switch normalizedFormat {
	case ExportFormatCSV:
		err = writeExpensesCSV(filePath, expenses)
	case ExportFormatJSON:
		err = writeExpensesJSON(filePath, expenses)
	}
	if err != nil {
		return ExportResult{}, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}

	return ExportResult{
		Format:   normalizedFormat,
		File:     filePath,
		Exported: len(expenses),
	}, nil
}

func toExportRecord(expense domain.Expense) exportRecord {
	return exportRecord{
		Date:        expense.Date,
		Amount:      domain.FormatAmount(expense.Amount),
		Category:    expense.Category,
		Description: expense.Description,
	}
}

// writeExpensesCSV leaves quoting to encoding/csv. Fields holding a comma,
// quote or line break are quoted, and so are fields with a leading space or
// tab and the field `\.`. Other rows read as date,amount,category,description.
func writeExpensesCSV(filePath string, expenses []domain.Expense) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportCSVHeader); err != nil {
		return err
	}

	for _, expense := range expenses {
		record := toExportRecord(expense)
		row := []string{record.Date, record.Amount, record.Category, record.Description}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

func writeExpensesJSON(filePath string, expenses []domain.Expense) error {
	records := make([]exportRecord, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, toExportRecord(expense))
	}

	content, err := json.MarshalIndent(exportJSONEnvelope{Expenses: records}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, content, 0o644)
}
