package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/syukranDev/mytrackerwallet-v2/internal/money"
)

// othersCategory is the fallback group for expenses with no category.
const othersCategory = "Others"

// TransactionView is a transaction as it appears in the dashboard and
// transaction-list payloads. Type is only set on merged lists.
type TransactionView struct {
	ID        uint      `json:"id"`
	Type      string    `json:"type,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category,omitempty"`
	Source    string    `json:"source,omitempty"`
	To        string    `json:"to,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryShare is one entry of the top-spending-categories ranking.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

func toView(t Transaction) TransactionView {
	amount, _ := t.Amount.Float64()
	return TransactionView{
		ID:        t.ID,
		Icon:      t.Icon,
		Amount:    amount,
		Category:  t.Category,
		Source:    t.Source,
		To:        t.To,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toViews(ts []Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(ts))
	for _, t := range ts {
		views = append(views, toView(t))
	}
	return views
}

// sumWindow adds up the exact amounts of the records in a window. The
// total must match the rows the window selector returned, so it is a
// client-side sum, not a store-side one.
func sumWindow(records []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// averageOf divides total by count rounded to 2 places. An empty window
// yields zero; division by zero is guarded, never raised.
func averageOf(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

// topCategories groups expense records by category, ranks groups by
// summed amount descending and keeps the top 3. Percentages are of the
// window total, rounded half away from zero, and 0 when the total is 0.
// Equal sums are ordered by category name so the ranking is stable
// across runs.
func topCategories(records []Transaction, total decimal.Decimal) []CategoryShare {
	sums := make(map[string]decimal.Decimal)
	for _, r := range records {
		category := r.Category
		if category == "" {
			category = othersCategory
		}
		sums[category] = sums[category].Add(r.Amount)
	}

	type group struct {
		category string
		amount   decimal.Decimal
	}
	groups := make([]group, 0, len(sums))
	for category, amount := range sums {
		groups = append(groups, group{category: category, amount: amount})
	}
	sort.Slice(groups, func(i, j int) bool {
		if cmp := groups[i].amount.Cmp(groups[j].amount); cmp != 0 {
			return cmp > 0
		}
		return groups[i].category < groups[j].category
	})

	if len(groups) > 3 {
		groups = groups[:3]
	}

	top := make([]CategoryShare, 0, len(groups))
	for _, g := range groups {
		percentage := 0
		if total.IsPositive() {
			percentage = int(g.amount.Mul(decimal.NewFromInt(100)).DivRound(total, 0).IntPart())
		}
		top = append(top, CategoryShare{
			Category:   g.category,
			Amount:     money.Display(g.amount),
			Percentage: percentage,
		})
	}
	return top
}

// MergeByDate interleaves two independently-sorted record lists into one
// list ordered by creation time descending, tagging every record with
// its kind. The sort is stable so records created at the same instant
// keep income-before-expense order. The transaction history endpoint
// paginates over the full merge; the dashboard caps it at five.
func MergeByDate(incomes, expenses []Transaction) []TransactionView {
	merged := make([]TransactionView, 0, len(incomes)+len(expenses))
	for _, t := range incomes {
		v := toView(t)
		v.Type = string(KindIncome)
		merged = append(merged, v)
	}
	for _, t := range expenses {
		v := toView(t)
		v.Type = string(KindExpense)
		merged = append(merged, v)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

func mergeRecent(incomes, expenses []Transaction, max int) []TransactionView {
	merged := MergeByDate(incomes, expenses)
	if len(merged) > max {
		merged = merged[:max]
	}
	return merged
}
