// Package store implements dashboard.Store on top of gorm. It is the
// only place where dashboard reads touch SQL; every query is scoped to
// one user and amounts cross the boundary through money.Normalize.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/syukranDev/mytrackerwallet-v2/internal/dashboard"
	"github.com/syukranDev/mytrackerwallet-v2/internal/models"
	"github.com/syukranDev/mytrackerwallet-v2/internal/money"
)

type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// SumAmount runs a store-side SUM over the full history of one kind.
// The driver may hand the sum back as a string or NULL; both go through
// the normalizer.
func (s *LedgerStore) SumAmount(ctx context.Context, userID string, kind dashboard.Kind) (decimal.Decimal, error) {
	model, err := modelFor(kind)
	if err != nil {
		return decimal.Zero, err
	}

	var raw sql.NullString
	row := s.db.WithContext(ctx).
		Model(model).
		Where("user_id = ?", userID).
		Select("SUM(amount)").
		Row()
	if err := row.Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("sum %s amounts: %w", kind, err)
	}
	if !raw.Valid {
		return decimal.Zero, nil
	}
	return money.Normalize(raw.String), nil
}

// FindTransactions returns records of one kind, newest first. Ties on
// created_at fall back to id so the order is stable. A limit <= 0
// returns the full history.
func (s *LedgerStore) FindTransactions(ctx context.Context, userID string, kind dashboard.Kind, limit int) ([]dashboard.Transaction, error) {
	q := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	switch kind {
	case dashboard.KindIncome:
		var incomes []models.Income
		if err := q.Find(&incomes).Error; err != nil {
			return nil, fmt.Errorf("find incomes: %w", err)
		}
		out := make([]dashboard.Transaction, 0, len(incomes))
		for _, in := range incomes {
			out = append(out, dashboard.Transaction{
				ID:        in.ID,
				Kind:      dashboard.KindIncome,
				Icon:      in.Icon,
				Amount:    money.Normalize(in.Amount),
				Source:    in.Source,
				To:        in.To,
				CreatedAt: in.CreatedAt,
				UpdatedAt: in.UpdatedAt,
			})
		}
		return out, nil
	case dashboard.KindExpense:
		var expenses []models.Expense
		if err := q.Find(&expenses).Error; err != nil {
			return nil, fmt.Errorf("find expenses: %w", err)
		}
		out := make([]dashboard.Transaction, 0, len(expenses))
		for _, ex := range expenses {
			out = append(out, dashboard.Transaction{
				ID:        ex.ID,
				Kind:      dashboard.KindExpense,
				Icon:      ex.Icon,
				Amount:    money.Normalize(ex.Amount),
				Category:  ex.Category,
				Source:    ex.Source,
				CreatedAt: ex.CreatedAt,
				UpdatedAt: ex.UpdatedAt,
			})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}
}

// FindDestinations returns the user's destinations ordered by name.
func (s *LedgerStore) FindDestinations(ctx context.Context, userID string) ([]dashboard.Destination, error) {
	var destinations []models.IncomeDestination
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("find destinations: %w", err)
	}

	out := make([]dashboard.Destination, 0, len(destinations))
	for _, d := range destinations {
		out = append(out, dashboard.Destination{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func modelFor(kind dashboard.Kind) (interface{}, error) {
	switch kind {
	case dashboard.KindIncome:
		return &models.Income{}, nil
	case dashboard.KindExpense:
		return &models.Expense{}, nil
	default:
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}
}
