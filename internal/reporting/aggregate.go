package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"pocket/internal/domain"
)

func Total(expenses []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}
	return total
}

// SummarizeByCategory sums amounts per category. Categories match by exact
// string equality and are returned in lexicographic order.
func SummarizeByCategory(expenses []domain.Expense) domain.Summary {
	totals := map[string]decimal.Decimal{}
	counts := map[string]int{}
	for _, expense := range expenses {
		current, ok := totals[expense.Category]
		if !ok {
			current = decimal.Zero
		}
		totals[expense.Category] = current.Add(expense.Amount)
		counts[expense.Category]++
	}

	categories := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		categories = append(categories, domain.CategoryTotal{
			Category: category,
			Total:    total,
			Count:    counts[category],
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return domain.Summary{
		Categories: categories,
		Total:      Total(expenses),
	}
}
