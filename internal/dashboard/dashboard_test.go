package dashboard

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fakeStore serves canned ledger data. Transactions are kept newest
// first, the way the real store returns them.
type fakeStore struct {
	incomes      []Transaction
	expenses     []Transaction
	destinations []Destination
	err          error
}

func (f *fakeStore) SumAmount(_ context.Context, _ string, kind Kind) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	records := f.incomes
	if kind == KindExpense {
		records = f.expenses
	}
	total := decimal.Zero
	for _, t := range records {
		total = total.Add(t.Amount)
	}
	return total, nil
}

func (f *fakeStore) FindTransactions(_ context.Context, _ string, kind Kind, limit int) ([]Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	records := f.incomes
	if kind == KindExpense {
		records = f.expenses
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	out := make([]Transaction, len(records))
	copy(out, records)
	return out, nil
}

func (f *fakeStore) FindDestinations(_ context.Context, _ string) ([]Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]Destination, len(f.destinations))
	copy(out, f.destinations)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func income(id uint, amount string, source, to string, age time.Duration) Transaction {
	return Transaction{
		ID:        id,
		Kind:      KindIncome,
		Amount:    mustDecimal(amount),
		Source:    source,
		To:        to,
		CreatedAt: testBase.Add(-age),
		UpdatedAt: testBase.Add(-age),
	}
}

func expense(id uint, amount string, category, source string, age time.Duration) Transaction {
	return Transaction{
		ID:        id,
		Kind:      KindExpense,
		Amount:    mustDecimal(amount),
		Category:  category,
		Source:    source,
		CreatedAt: testBase.Add(-age),
		UpdatedAt: testBase.Add(-age),
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCompose_EmptyUser(t *testing.T) {
	composer := NewComposer(&fakeStore{})

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v, want nil", err)
	}

	if p.TotalBalance != 0 || p.TotalIncome != 0 || p.TotalExpense != 0 {
		t.Errorf("totals = %v/%v/%v, want all 0", p.TotalBalance, p.TotalIncome, p.TotalExpense)
	}
	if p.Last30DaysExpenseTransactions.Count != 0 || p.Last30DaysExpenseTransactions.Average != 0 {
		t.Errorf("expense window count/average = %d/%v, want 0/0",
			p.Last30DaysExpenseTransactions.Count, p.Last30DaysExpenseTransactions.Average)
	}
	if len(p.Last30DaysExpenseTransactions.TopCategories) != 0 {
		t.Errorf("topCategories = %v, want empty", p.Last30DaysExpenseTransactions.TopCategories)
	}
	if p.Last60DaysIncome.Latest != nil {
		t.Errorf("latest = %v, want nil", p.Last60DaysIncome.Latest)
	}
	if len(p.RecentTransactions) != 0 {
		t.Errorf("recentTransactions = %v, want empty", p.RecentTransactions)
	}
	if len(p.SourceBalances) != 0 {
		t.Errorf("sourceBalances = %v, want empty", p.SourceBalances)
	}
}

func TestCompose_ExpenseWindowSample(t *testing.T) {
	store := &fakeStore{
		expenses: []Transaction{
			expense(1, "50", "Food", "BankA", 1*time.Hour),
			expense(2, "30", "Food", "BankA", 2*time.Hour),
			expense(3, "20", "Transport", "BankA", 3*time.Hour),
		},
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	w := p.Last30DaysExpenseTransactions
	if w.Total != 100 {
		t.Errorf("total = %v, want 100", w.Total)
	}
	if w.Count != 3 {
		t.Errorf("count = %d, want 3", w.Count)
	}
	if w.Average != 33.33 {
		t.Errorf("average = %v, want 33.33", w.Average)
	}

	want := []CategoryShare{
		{Category: "Food", Amount: 80, Percentage: 80},
		{Category: "Transport", Amount: 20, Percentage: 20},
	}
	if !reflect.DeepEqual(w.TopCategories, want) {
		t.Errorf("topCategories = %+v, want %+v", w.TopCategories, want)
	}
}

func TestCompose_WindowCaps(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 70; i++ {
		store.incomes = append(store.incomes,
			income(uint(i+1), "10", "Salary", "", time.Duration(i)*time.Hour))
	}
	for i := 0; i < 40; i++ {
		store.expenses = append(store.expenses,
			expense(uint(i+100), "5", "Food", "BankA", time.Duration(i)*time.Hour))
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if p.Last60DaysIncome.Count != 60 {
		t.Errorf("income window count = %d, want 60", p.Last60DaysIncome.Count)
	}
	if p.Last30DaysExpenseTransactions.Count != 30 {
		t.Errorf("expense window count = %d, want 30", p.Last30DaysExpenseTransactions.Count)
	}

	// windowed totals cover the window rows only, all-time totals the
	// full history
	if p.Last60DaysIncome.Total != 600 {
		t.Errorf("income window total = %v, want 600", p.Last60DaysIncome.Total)
	}
	if p.TotalIncome != 700 {
		t.Errorf("totalIncome = %v, want 700", p.TotalIncome)
	}
	if p.Last30DaysExpenseTransactions.Total != 150 {
		t.Errorf("expense window total = %v, want 150", p.Last30DaysExpenseTransactions.Total)
	}
	if p.TotalExpense != 200 {
		t.Errorf("totalExpense = %v, want 200", p.TotalExpense)
	}
	if p.TotalBalance != 500 {
		t.Errorf("totalBalance = %v, want 500", p.TotalBalance)
	}
}

func TestCompose_LatestIncome(t *testing.T) {
	store := &fakeStore{
		incomes: []Transaction{
			income(2, "250", "Freelance", "BankA", 1*time.Hour),
			income(1, "100", "Salary", "BankA", 48*time.Hour),
		},
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	latest := p.Last60DaysIncome.Latest
	if latest == nil {
		t.Fatal("latest = nil, want newest income")
	}
	if latest.ID != 2 || latest.Source != "Freelance" {
		t.Errorf("latest = %+v, want id 2 source Freelance", latest)
	}
}

func TestCompose_RecentTransactions(t *testing.T) {
	store := &fakeStore{
		incomes: []Transaction{
			income(1, "10", "Salary", "", 1*time.Hour),
			income(2, "20", "Salary", "", 3*time.Hour),
			income(3, "30", "Salary", "", 5*time.Hour),
		},
		expenses: []Transaction{
			expense(4, "40", "Food", "BankA", 2*time.Hour),
			expense(5, "50", "Food", "BankA", 4*time.Hour),
			expense(6, "60", "Food", "BankA", 6*time.Hour),
		},
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	recent := p.RecentTransactions
	if len(recent) != 5 {
		t.Fatalf("len(recentTransactions) = %d, want 5", len(recent))
	}

	wantIDs := []uint{1, 4, 2, 5, 3}
	wantTypes := []string{"income", "expense", "income", "expense", "income"}
	for i, r := range recent {
		if r.ID != wantIDs[i] || r.Type != wantTypes[i] {
			t.Errorf("recent[%d] = id %d type %s, want id %d type %s",
				i, r.ID, r.Type, wantIDs[i], wantTypes[i])
		}
		if i > 0 && recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("recent[%d] newer than recent[%d], want descending order", i, i-1)
		}
	}
}

func TestCompose_SourceBalances(t *testing.T) {
	store := &fakeStore{
		incomes: []Transaction{
			income(1, "100", "Salary", "BankA", 1*time.Hour),
		},
		expenses: []Transaction{
			expense(2, "40", "Food", "BankA", 2*time.Hour),
			expense(3, "10", "Food", "DeletedBank", 3*time.Hour),
		},
		destinations: []Destination{
			{ID: 1, Name: "BankA"},
			{ID: 2, Name: "BankB"},
		},
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	want := []SourceBalance{
		{Source: "BankA", Income: 100, Expense: 40, Balance: 60},
		{Source: "BankB", Income: 0, Expense: 0, Balance: 0},
	}
	if !reflect.DeepEqual(p.SourceBalances, want) {
		t.Errorf("sourceBalances = %+v, want %+v", p.SourceBalances, want)
	}

	// the dangling DeletedBank expense is absent from the balances but
	// still counted in the all-time total
	if p.TotalExpense != 50 {
		t.Errorf("totalExpense = %v, want 50", p.TotalExpense)
	}
	if p.TotalBalance != 50 {
		t.Errorf("totalBalance = %v, want 50", p.TotalBalance)
	}
}

func TestCompose_BalanceIdentity(t *testing.T) {
	store := &fakeStore{
		incomes: []Transaction{
			income(1, "1234.56", "Salary", "BankA", 1*time.Hour),
			income(2, "0.01", "Salary", "BankA", 2*time.Hour),
		},
		expenses: []Transaction{
			expense(3, "999.99", "Rent", "BankA", 1*time.Hour),
			expense(4, "0.02", "Food", "BankA", 2*time.Hour),
		},
	}
	composer := NewComposer(store)

	p, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if p.TotalIncome != 1234.57 || p.TotalExpense != 1000.01 {
		t.Fatalf("totals = %v/%v, want 1234.57/1000.01", p.TotalIncome, p.TotalExpense)
	}
	if p.TotalBalance != 234.56 {
		t.Errorf("totalBalance = %v, want 234.56", p.TotalBalance)
	}
}

func TestCompose_Idempotent(t *testing.T) {
	store := &fakeStore{
		incomes: []Transaction{
			income(1, "100", "Salary", "BankA", 1*time.Hour),
			income(2, "100", "Salary", "BankB", 2*time.Hour),
		},
		expenses: []Transaction{
			expense(3, "25", "Food", "BankA", 1*time.Hour),
			expense(4, "25", "Transport", "BankB", 2*time.Hour),
		},
		destinations: []Destination{
			{ID: 1, Name: "BankA"},
			{ID: 2, Name: "BankB"},
		},
	}
	composer := NewComposer(store)

	first, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	second, err := composer.Compose(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two composes over unchanged data differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCompose_StoreFailure(t *testing.T) {
	wantErr := errors.New("store unavailable")
	composer := NewComposer(&fakeStore{err: wantErr})

	p, err := composer.Compose(context.Background(), "user-1")
	if err == nil {
		t.Fatal("Compose() error = nil, want store error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("Compose() error = %v, want %v", err, wantErr)
	}
	if p != nil {
		t.Errorf("Compose() payload = %+v, want nil on failure", p)
	}
}
