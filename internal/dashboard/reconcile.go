package dashboard

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/syukranDev/mytrackerwallet-v2/internal/money"
)

// SourceBalance is the net position of one income destination: all-time
// income routed to it minus all-time expenses paid from it.
type SourceBalance struct {
	Source  string  `json:"source"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// reconcile joins the full income and expense histories against the
// current destination list by trimmed name. Every existing destination
// gets exactly one row, zeros included; transactions referencing a
// deleted or renamed destination contribute to no row here, although
// their amounts still count in the all-time totals. Rows are sorted by
// balance descending; amounts are rounded only at this emission point.
func reconcile(incomes, expenses []Transaction, destinations []Destination) []SourceBalance {
	incomeByName := make(map[string]decimal.Decimal)
	for _, t := range incomes {
		name := strings.TrimSpace(t.To)
		if name == "" {
			continue
		}
		incomeByName[name] = incomeByName[name].Add(t.Amount)
	}

	expenseByName := make(map[string]decimal.Decimal)
	for _, t := range expenses {
		name := strings.TrimSpace(t.Source)
		if name == "" {
			continue
		}
		expenseByName[name] = expenseByName[name].Add(t.Amount)
	}

	type row struct {
		name    string
		income  decimal.Decimal
		expense decimal.Decimal
		balance decimal.Decimal
	}
	rows := make([]row, 0, len(destinations))
	for _, d := range destinations {
		name := strings.TrimSpace(d.Name)
		income := incomeByName[name]
		expense := expenseByName[name]
		rows = append(rows, row{
			name:    name,
			income:  income,
			expense: expense,
			balance: income.Sub(expense),
		})
	}

	// destinations arrive name-ascending, so equal balances stay in
	// name order
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].balance.Cmp(rows[j].balance) > 0
	})

	balances := make([]SourceBalance, 0, len(rows))
	for _, r := range rows {
		balances = append(balances, SourceBalance{
			Source:  r.name,
			Income:  money.Display(r.income),
			Expense: money.Display(r.expense),
			Balance: money.Display(r.balance),
		})
	}
	return balances
}
