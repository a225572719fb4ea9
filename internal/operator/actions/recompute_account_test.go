package actions

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/accountbook-server/internal/ledger"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/account"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

type stubAccountTable struct {
	account     *account.Account
	lastSeries  account.BalanceSeries
	lastSnap    ledger.Snapshot
	updateCalls int
}

func (s *stubAccountTable) FindByID(_ context.Context, id uuid.UUID, _ bool) (*account.Account, error) {
	if s.account == nil || s.account.ID != id {
		return nil, sql.ErrNoRows
	}
	return s.account, nil
}

func (s *stubAccountTable) Insert(context.Context, *account.AccountCreate) (uuid.UUID, error) {
	return uuid.Nil, errors.New("not implemented")
}

func (s *stubAccountTable) ListByBook(context.Context, uuid.UUID) ([]*account.Account, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAccountTable) UpdateDerived(_ context.Context, _ uuid.UUID, series account.BalanceSeries, snap ledger.Snapshot) error {
	s.lastSeries = series
	s.lastSnap = snap
	s.updateCalls++
	return nil
}

func (s *stubAccountTable) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

type stubTransactionTable struct {
	rows    []*transaction.Transaction
	deleted []string
}

func (s *stubTransactionTable) FindByID(context.Context, uuid.UUID) (*transaction.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTransactionTable) Insert(_ context.Context, create *transaction.TransactionCreate) (uuid.UUID, error) {
	id := uuid.Must(uuid.NewV4())
	s.rows = append(s.rows, &transaction.Transaction{
		ID:              id,
		TransactionDate: create.TransactionDate,
		Description:     create.Description,
		DebitAmount:     create.DebitAmount,
		CreditAmount:    create.CreditAmount,
		AccountID:       create.AccountID,
	})
	return id, nil
}

func (s *stubTransactionTable) List(_ context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var out []*transaction.Transaction
	for _, r := range s.rows {
		if filter != nil && filter.AccountID != nil && r.AccountID != *filter.AccountID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *stubTransactionTable) UpdateCategory(context.Context, uuid.UUID, string, string) error {
	return errors.New("not implemented")
}

func (s *stubTransactionTable) DeleteByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	s.deleted = append(s.deleted, "all")
	var kept []*transaction.Transaction
	var n int64
	for _, r := range s.rows {
		if r.AccountID == accountID {
			n++
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	return n, nil
}

func (s *stubTransactionTable) DeleteByAccountDateRange(_ context.Context, accountID uuid.UUID, from, before time.Time) (int64, error) {
	s.deleted = append(s.deleted, from.Format("2006-01-02")+".."+before.Format("2006-01-02"))
	var kept []*transaction.Transaction
	var n int64
	for _, r := range s.rows {
		if r.AccountID == accountID && !r.TransactionDate.Before(from) && r.TransactionDate.Before(before) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	return n, nil
}

func (s *stubTransactionTable) DistinctCategories(context.Context, uuid.UUID) ([]string, error) {
	return nil, errors.New("not implemented")
}

func row(accountID uuid.UUID, date string, debit, credit string) *transaction.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &transaction.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: d,
		DebitAmount:     decimal.RequireFromString(debit),
		CreditAmount:    decimal.RequireFromString(credit),
		AccountID:       accountID,
	}
}

func newFixture(accountID uuid.UUID, rows ...*transaction.Transaction) (*storage.Writer, *stubAccountTable, *stubTransactionTable) {
	accounts := &stubAccountTable{account: &account.Account{ID: accountID}}
	txs := &stubTransactionTable{rows: rows}
	return &storage.Writer{Accounts: accounts, Transactions: txs}, accounts, txs
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time { return time.Date(year, month, 15, 9, 0, 0, 0, time.UTC) }
}

func TestRecomputeAccount_SeriesAndSnapshot(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	writer, accounts, _ := newFixture(accountID,
		row(accountID, "2024-01-10", "100", "0"),
		row(accountID, "2024-02-05", "0", "50"),
	)

	action := &RecomputeAccount{AccountID: accountID, Now: fixedClock(2024, time.February)}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	require.Len(t, accounts.lastSeries, 2)
	assert.Equal(t, "2024-01", accounts.lastSeries[0].Month)
	assert.True(t, accounts.lastSeries[0].Balance.Equal(decimal.NewFromInt(-100)))
	assert.Equal(t, "2024-02", accounts.lastSeries[1].Month)
	assert.True(t, accounts.lastSeries[1].Balance.Equal(decimal.NewFromInt(-50)))

	assert.True(t, accounts.lastSnap.Balance.Equal(decimal.NewFromInt(-50)))
	assert.True(t, accounts.lastSnap.Debits.IsZero())
	assert.True(t, accounts.lastSnap.Credits.Equal(decimal.NewFromInt(50)))
}

func TestRecomputeAccount_NoCurrentMonthEntry(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	writer, accounts, _ := newFixture(accountID,
		row(accountID, "2024-01-10", "100", "0"),
	)

	action := &RecomputeAccount{AccountID: accountID, Now: fixedClock(2024, time.June)}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.True(t, accounts.lastSnap.Balance.IsZero())
	assert.True(t, accounts.lastSnap.Debits.IsZero())
	assert.True(t, accounts.lastSnap.Credits.IsZero())
}

func TestRecomputeAccount_EmptyAccount(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	writer, accounts, _ := newFixture(accountID)

	action := &RecomputeAccount{AccountID: accountID, Now: fixedClock(2024, time.June)}
	err := action.Perform(context.Background(), writer)

	require.NoError(t, err)
	assert.Empty(t, accounts.lastSeries)
	assert.True(t, accounts.lastSnap.Balance.IsZero())
}

func TestRecomputeAccount_UnknownAccount(t *testing.T) {
	writer, accounts, _ := newFixture(uuid.Must(uuid.NewV4()))

	action := &RecomputeAccount{AccountID: uuid.Must(uuid.NewV4()), Now: fixedClock(2024, time.June)}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	assert.Zero(t, accounts.updateCalls)
}

func TestRecomputeAccount_Idempotent(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	writer, accounts, _ := newFixture(accountID,
		row(accountID, "2024-01-10", "100", "0"),
		row(accountID, "2024-02-05", "0", "50"),
	)

	action := &RecomputeAccount{AccountID: accountID, Now: fixedClock(2024, time.February)}
	require.NoError(t, action.Perform(context.Background(), writer))
	firstSeries := accounts.lastSeries
	require.NoError(t, action.Perform(context.Background(), writer))

	require.Equal(t, len(firstSeries), len(accounts.lastSeries))
	for i := range firstSeries {
		assert.Equal(t, firstSeries[i].Month, accounts.lastSeries[i].Month)
		assert.True(t, firstSeries[i].Balance.Equal(accounts.lastSeries[i].Balance))
	}
	assert.Equal(t, 2, accounts.updateCalls)
}
