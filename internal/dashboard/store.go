package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags a transaction as income or expense. The tag is attached at
// the point a record is fetched, never inferred downstream from which
// fields happen to be set.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is one ledger record of either kind, already scoped to a
// single user. Category is set for expenses, To for incomes; Source is
// the income's origin label for incomes and the paying destination name
// for expenses.
type Transaction struct {
	ID        uint
	Kind      Kind
	Icon      string
	Amount    decimal.Decimal
	Category  string
	Source    string
	To        string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Destination is the current snapshot of one income destination row.
type Destination struct {
	ID   uint
	Name string
}

// Store is the ledger access surface the composer depends on. Every
// method is scoped to one user; implementations must return either the
// complete result or an error, never a partial window.
type Store interface {
	// SumAmount returns the full-history amount sum for one kind.
	SumAmount(ctx context.Context, userID string, kind Kind) (decimal.Decimal, error)

	// FindTransactions returns records of one kind ordered by creation
	// time descending. A limit <= 0 means the full history.
	FindTransactions(ctx context.Context, userID string, kind Kind, limit int) ([]Transaction, error)

	// FindDestinations returns the user's destinations ordered by name
	// ascending.
	FindDestinations(ctx context.Context, userID string) ([]Destination, error)
}
