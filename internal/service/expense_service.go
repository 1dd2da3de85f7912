package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pocket/internal/domain"
	"pocket/internal/logging"
	"pocket/internal/reporting"
)

type ExpenseRepository interface {
	Load(ctx context.Context) ([]domain.Expense, error)
	Save(ctx context.Context, expenses []domain.Expense) error
}

// ExpenseService owns the in-memory expense list for one invocation. Load
// runs once, before any other method.
type ExpenseService struct {
	repo     ExpenseRepository
	now      func() time.Time
	source   string
	expenses []domain.Expense
	loaded   bool
}

type ExpenseServiceOption func(*ExpenseService)

func WithExpenseClock(now func() time.Time) ExpenseServiceOption {
	return func(service *ExpenseService) {
		service.now = now
	}
}

// WithExpenseSource names the store in warnings.
func WithExpenseSource(source string) ExpenseServiceOption {
	return func(service *ExpenseService) {
		service.source = source
	}
}

type ExpenseLoadResult struct {
	Count    int              `json:"count"`
	Warnings []domain.Warning `json:"warnings"`
}

func NewExpenseService(repo ExpenseRepository, opts ...ExpenseServiceOption) (*ExpenseService, error) {
	if repo == nil {
		return nil, fmt.Errorf("expense service: repo is required")
	}

	service := &ExpenseService{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(service)
		}
	}

	return service, nil
}

// Load reads the store. Unreadable stores are treated as empty and reported
// through a warning instead of an error.
func (s *ExpenseService) Load(ctx context.Context) (ExpenseLoadResult, error) {
	expenses, err := s.repo.Load(ctx)
	result := ExpenseLoadResult{Warnings: []domain.Warning{}}

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStoreUnreadable):
		logging.Logger.WithField("path", s.source).WithError(err).Warn("store unreadable, treating as empty")
		result.Warnings = append(result.Warnings, domain.Warning{
			Code:    domain.WarningCodeStoreUnreadable,
			Message: domain.StoreUnreadableWarningMessage,
			Details: domain.StoreUnreadableWarningDetails{
				Path:   s.source,
				Reason: err.Error(),
			},
		})
		expenses = nil
	default:
		return ExpenseLoadResult{}, err
	}

	if expenses == nil {
		expenses = []domain.Expense{}
	}
	s.expenses = expenses
	s.loaded = true
	result.Count = len(expenses)
	return result, nil
}

// Add appends a new expense dated today and persists the full list.
func (s *ExpenseService) Add(ctx context.Context, input domain.ExpenseAddInput) (domain.Expense, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Expense{}, err
	}

	expense := domain.NewExpense(input, s.now())
	next := append(s.expenses, expense)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Expense{}, err
	}

	s.expenses = next
	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]domain.Expense, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	out := make([]domain.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, nil
}

func (s *ExpenseService) Total(ctx context.Context) (decimal.Decimal, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return decimal.Decimal{}, err
	}
	return reporting.Total(s.expenses), nil
}

func (s *ExpenseService) Summary(ctx context.Context) (domain.Summary, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return domain.Summary{}, err
	}
	return reporting.SummarizeByCategory(s.expenses), nil
}

func (s *ExpenseService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	_, err := s.Load(ctx)
	return err
}
