package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"

	"pocket/internal/domain"
	"pocket/internal/logging"
)

const filePerm = 0o644

// record is the on-disk shape: amount is a bare JSON number.
type record struct {
	Amount json.Number `json:"amount"`
	Desc   string      `json:"desc"`
	Cat    string      `json:"cat"`
	Date   string      `json:"date"`
}

type Store struct {
	path string
}

func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("jsonfile store: path is required")
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string {
	return s.path
}

// Load returns every stored expense in insertion order. A missing file is an
// empty store. Any other read or decode failure also yields an empty slice,
// together with an error wrapping domain.ErrStoreUnreadable.
func (s *Store) Load(ctx context.Context) ([]domain.Expense, error) {
	if err := ctx.Err(); err != nil {
		return []domain.Expense{}, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Logger.WithField("path", s.path).Debug("store file absent, starting empty")
			return []domain.Expense{}, nil
		}
		return []domain.Expense{}, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnreadable, s.path, err)
	}

	expenses, err := decode(content)
	if err != nil {
		return []domain.Expense{}, fmt.Errorf("%w: decode %s: %w", domain.ErrStoreUnreadable, s.path, err)
	}

	logging.Logger.WithFields(map[string]any{"path": s.path, "count": len(expenses)}).Debug("store loaded")
	return expenses, nil
}

// Save overwrites the file with the complete list. There is no temp file
// and no rename: a crash mid-write can truncate the store.
func (s *Store) Save(ctx context.Context, expenses []domain.Expense) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := encode(expenses)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", domain.ErrStoreWrite, err)
	}

	if err := os.WriteFile(s.path, content, filePerm); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWrite, err)
	}

	logging.Logger.WithFields(map[string]any{"path": s.path, "count": len(expenses)}).Debug("store saved")
	return nil
}

func encode(expenses []domain.Expense) ([]byte, error) {
	records := make([]record, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, record{
			Amount: json.Number(expense.Amount.String()),
			Desc:   expense.Description,
			Cat:    expense.Category,
			Date:   expense.Date,
		})
	}

	return json.MarshalIndent(records, "", "  ")
}

func decode(content []byte) ([]domain.Expense, error) {
	var records []record
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, err
	}

	expenses := make([]domain.Expense, 0, len(records))
	for i, rec := range records {
		amount, err := decimal.NewFromString(rec.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("record %d: amount %q: %w", i, rec.Amount, err)
		}
		if err := domain.ValidateAmountRange(amount); err != nil {
			return nil, fmt.Errorf("record %d: amount %q: %w", i, rec.Amount, err)
		}
		if amount.IsZero() {
			amount = decimal.Zero
		}
		expenses = append(expenses, domain.Expense{
			Amount:      amount,
			Description: rec.Desc,
			Category:    rec.Cat,
			Date:        rec.Date,
		})
	}
	return expenses, nil
}
