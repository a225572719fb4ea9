package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/ledger"
	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/storage/account"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// fakeAccountTable serves FindByID/Insert for a fixed set of accounts.
type fakeAccountTable struct {
	accounts map[uuid.UUID]*account.Account
	inserted []*account.AccountCreate
}

func newFakeAccountTable(ids ...uuid.UUID) *fakeAccountTable {
	f := &fakeAccountTable{accounts: make(map[uuid.UUID]*account.Account)}
	for _, id := range ids {
		f.accounts[id] = &account.Account{ID: id, Name: "acct"}
	}
	return f
}

func (f *fakeAccountTable) FindByID(_ context.Context, id uuid.UUID, _ bool) (*account.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return a, nil
}

func (f *fakeAccountTable) Insert(_ context.Context, create *account.AccountCreate) (uuid.UUID, error) {
	f.inserted = append(f.inserted, create)
	id := uuid.Must(uuid.NewV4())
	f.accounts[id] = &account.Account{ID: id, Name: create.Name, AccountBookID: create.AccountBookID}
	return id, nil
}

func (f *fakeAccountTable) ListByBook(context.Context, uuid.UUID) ([]*account.Account, error) {
	return nil, nil
}

func (f *fakeAccountTable) UpdateDerived(_ context.Context, id uuid.UUID, series account.BalanceSeries, snap ledger.Snapshot) error {
	a, ok := f.accounts[id]
	if !ok {
		return sql.ErrNoRows
	}
	a.HistoricalBalance = series
	a.TotalMonthlyBalance = snap.Balance
	a.TotalMonthlyDebits = snap.Debits
	a.TotalMonthlyCredits = snap.Credits
	return nil
}

func (f *fakeAccountTable) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

// fakeTransactionTable stores rows in memory. failInsertAt (1-based) makes
// that insert fail; zero disables injection.
type fakeTransactionTable struct {
	rows         []*transaction.Transaction
	failInsertAt int
	insertCalls  int
	updateErr    error
	updated      []uuid.UUID
}

func (f *fakeTransactionTable) FindByID(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTransactionTable) Insert(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	f.insertCalls++
	if f.failInsertAt > 0 && f.insertCalls == f.failInsertAt {
		return uuid.Nil, errors.New("connection refused")
	}
	row := &transaction.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: create.TransactionDate,
		Description:     create.Description,
		Category:        create.Category,
		SubCategory:     create.SubCategory,
		DebitAmount:     create.DebitAmount,
		CreditAmount:    create.CreditAmount,
		AccountID:       create.AccountID,
		AccountBookID:   create.AccountBookID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	f.rows = append(f.rows, row)
	return row.ID, nil
}

func (f *fakeTransactionTable) List(_ context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction
	for _, r := range f.rows {
		if filter != nil {
			if filter.AccountID != nil && r.AccountID != *filter.AccountID {
				continue
			}
			if filter.AccountBookID != nil && r.AccountBookID != *filter.AccountBookID {
				continue
			}
			if filter.DateFrom != nil && r.TransactionDate.Before(*filter.DateFrom) {
				continue
			}
			if filter.DateBefore != nil && !r.TransactionDate.Before(*filter.DateBefore) {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeTransactionTable) UpdateCategory(_ context.Context, id uuid.UUID, category, subCategory string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, r := range f.rows {
		if r.ID == id {
			r.Category = category
			r.SubCategory = subCategory
			f.updated = append(f.updated, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeTransactionTable) DeleteByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	var kept []*transaction.Transaction
	var deleted int64
	for _, r := range f.rows {
		if r.AccountID == accountID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return deleted, nil
}

func (f *fakeTransactionTable) DeleteByAccountDateRange(_ context.Context, accountID uuid.UUID, from, before time.Time) (int64, error) {
	var kept []*transaction.Transaction
	var deleted int64
	for _, r := range f.rows {
		if r.AccountID == accountID && !r.TransactionDate.Before(from) && r.TransactionDate.Before(before) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return deleted, nil
}

func (f *fakeTransactionTable) DistinctCategories(context.Context, uuid.UUID) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, r := range f.rows {
		if r.Category != "" && !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out, nil
}

// fakeRuleTable returns a fixed rule list in creation order.
type fakeRuleTable struct {
	rules []*categoryrule.CategoryRule
}

func (f *fakeRuleTable) Insert(_ context.Context, create *categoryrule.RuleCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	f.rules = append(f.rules, &categoryrule.CategoryRule{
		ID:            id,
		AccountBookID: create.AccountBookID,
		Keyword:       create.Keyword,
		Category:      create.Category,
		SubCategory:   create.SubCategory,
	})
	return id, nil
}

func (f *fakeRuleTable) ListByBook(context.Context, uuid.UUID) ([]*categoryrule.CategoryRule, error) {
	return f.rules, nil
}

func (f *fakeRuleTable) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.rules {
		if r.ID == id {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// fakeProcessor records actions instead of running them through a database
// transaction.
type fakeProcessor struct {
	processed []actions.IAction
	err       error
}

func (f *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	if f.err != nil {
		return f.err
	}
	f.processed = append(f.processed, action)
	return nil
}
