// Package dashboard computes the aggregated view over a user's ledger:
// all-time totals, the bounded income and expense windows with their
// summaries, the recent-transaction merge and the per-destination
// balance reconciliation. It only ever reads; amounts accumulate as
// exact decimals and are rounded once, when the payload is assembled.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/syukranDev/mytrackerwallet-v2/internal/money"
)

// Lookback horizons differ per kind on purpose: income keeps a longer
// window than expenses.
const (
	incomeWindowLimit  = 60
	expenseWindowLimit = 30
	recentLimit        = 5
)

// ExpenseSummary describes the bounded expense window.
type ExpenseSummary struct {
	Total         float64           `json:"total"`
	Count         int               `json:"count"`
	Average       float64           `json:"average"`
	TopCategories []CategoryShare   `json:"topCategories"`
	Transactions  []TransactionView `json:"transactions"`
}

// IncomeSummary describes the bounded income window.
type IncomeSummary struct {
	Total        float64           `json:"total"`
	Count        int               `json:"count"`
	Average      float64           `json:"average"`
	Latest       *TransactionView  `json:"latest"`
	Transactions []TransactionView `json:"transactions"`
}

// Payload is the complete dashboard response for one user.
type Payload struct {
	TotalBalance                  float64           `json:"totalBalance"`
	TotalIncome                   float64           `json:"totalIncome"`
	TotalExpense                  float64           `json:"totalExpense"`
	Last30DaysExpenseTransactions ExpenseSummary    `json:"last30DaysExpenseTransactions"`
	Last60DaysIncome              IncomeSummary     `json:"last60DaysIncome"`
	RecentTransactions            []TransactionView `json:"recentTransactions"`
	SourceBalances                []SourceBalance   `json:"sourceBalances"`
}

// Composer assembles the dashboard payload from a Store.
type Composer struct {
	store Store
}

func NewComposer(store Store) *Composer {
	return &Composer{store: store}
}

// Compose builds the full payload for one user. The seven underlying
// queries are independent, so they run concurrently; the first failure
// cancels the rest and aborts the whole composition — no partial
// dashboard is ever returned.
func (c *Composer) Compose(ctx context.Context, userID string) (*Payload, error) {
	var (
		totalIncomeSum  decimal.Decimal
		totalExpenseSum decimal.Decimal
		incomeWindow    []Transaction
		expenseWindow   []Transaction
		allIncomes      []Transaction
		allExpenses     []Transaction
		destinations    []Destination
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalIncomeSum, err = c.store.SumAmount(gctx, userID, KindIncome)
		return err
	})
	g.Go(func() (err error) {
		totalExpenseSum, err = c.store.SumAmount(gctx, userID, KindExpense)
		return err
	})
	g.Go(func() (err error) {
		incomeWindow, err = c.store.FindTransactions(gctx, userID, KindIncome, incomeWindowLimit)
		return err
	})
	g.Go(func() (err error) {
		expenseWindow, err = c.store.FindTransactions(gctx, userID, KindExpense, expenseWindowLimit)
		return err
	})
	g.Go(func() (err error) {
		allIncomes, err = c.store.FindTransactions(gctx, userID, KindIncome, 0)
		return err
	})
	g.Go(func() (err error) {
		allExpenses, err = c.store.FindTransactions(gctx, userID, KindExpense, 0)
		return err
	})
	g.Go(func() (err error) {
		destinations, err = c.store.FindDestinations(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	incomeTotal := sumWindow(incomeWindow)
	expenseTotal := sumWindow(expenseWindow)

	var latest *TransactionView
	if len(incomeWindow) > 0 {
		v := toView(incomeWindow[0])
		latest = &v
	}

	return &Payload{
		TotalBalance: money.Display(totalIncomeSum.Sub(totalExpenseSum)),
		TotalIncome:  money.Display(totalIncomeSum),
		TotalExpense: money.Display(totalExpenseSum),
		Last30DaysExpenseTransactions: ExpenseSummary{
			Total:         money.Display(expenseTotal),
			Count:         len(expenseWindow),
			Average:       money.Display(averageOf(expenseTotal, len(expenseWindow))),
			TopCategories: topCategories(expenseWindow, expenseTotal),
			Transactions:  toViews(expenseWindow),
		},
		Last60DaysIncome: IncomeSummary{
			Total:        money.Display(incomeTotal),
			Count:        len(incomeWindow),
			Average:      money.Display(averageOf(incomeTotal, len(incomeWindow))),
			Latest:       latest,
			Transactions: toViews(incomeWindow),
		},
		RecentTransactions: mergeRecent(incomeWindow, expenseWindow, recentLimit),
		SourceBalances:     reconcile(allIncomes, allExpenses, destinations),
	}, nil
}
