package reporting

import (
	"testing"

	"github.com/shopspring/decimal"

	"pocket/internal/domain"
)

func expense(amount, category string) domain.Expense {
	return domain.Expense{
		Amount:      decimal.RequireFromString(amount),
		Description: "x",
		Category:    category,
		Date:        "2026-02-01",
	}
}

func TestTotalIsOrderIndependentAndSigned(t *testing.T) {
	t.Parallel()

	forward := []domain.Expense{expense("12.50", "food"), expense("-2.25", "refund"), expense("3", "bus")}
	reversed := []domain.Expense{forward[2], forward[1], forward[0]}

	want := decimal.RequireFromString("13.25")
	if got := Total(forward); !got.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got)
	}
	if got := Total(reversed); !got.Equal(want) {
		t.Fatalf("expected reversed total %s, got %s", want, got)
	}
}

func TestTotalOfEmptyIsZero(t *testing.T) {
	t.Parallel()

	if got := Total(nil); !got.IsZero() {
		t.Fatalf("expected zero total, got %s", got)
	}
	if got := domain.FormatMoney(Total(nil)); got != "0.00€" {
		t.Fatalf("expected 0.00€, got %s", got)
	}
}

func TestTotalAvoidsBinaryFloatDrift(t *testing.T) {
	t.Parallel()

	got := Total([]domain.Expense{expense("0.1", "a"), expense("0.2", "a")})
	if !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exact 0.3, got %s", got)
	}
}

func TestSummarizeByCategoryGroupsExactly(t *testing.T) {
	t.Parallel()

	summary := SummarizeByCategory([]domain.Expense{
		expense("10.00", "food"),
		expense("2.00", "transport"),
		expense("5.50", "food"),
		expense("1", "Food"),
	})

	want := []struct {
		category string
		total    string
		count    int
	}{
		{category: "Food", total: "1.00", count: 1},
		{category: "food", total: "15.50", count: 2},
		{category: "transport", total: "2.00", count: 1},
	}

	if len(summary.Categories) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(summary.Categories), summary.Categories)
	}
	for i, w := range want {
		got := summary.Categories[i]
		if got.Category != w.category {
			t.Fatalf("category %d: expected %q, got %q", i, w.category, got.Category)
		}
		if domain.FormatAmountFixed(got.Total) != w.total {
			t.Fatalf("category %q: expected total %s, got %s", w.category, w.total, domain.FormatAmountFixed(got.Total))
		}
		if got.Count != w.count {
			t.Fatalf("category %q: expected count %d, got %d", w.category, w.count, got.Count)
		}
	}
	if domain.FormatAmountFixed(summary.Total) != "18.50" {
		t.Fatalf("expected overall total 18.50, got %s", summary.Total)
	}
}

func TestSummarizeByCategoryEmpty(t *testing.T) {
	t.Parallel()

	summary := SummarizeByCategory(nil)
	if summary.Categories == nil || len(summary.Categories) != 0 {
		t.Fatalf("expected empty non-nil categories, got %#v", summary.Categories)
	}
}
