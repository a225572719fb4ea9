package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
)

const sampleQIF = "!Type:Bank\n" +
	"D13/01/2024\nT-42.50\nPCOLES 123 SYDNEY\n^\n" +
	"D05/02/2024\nT1500\nPPAYROLL EMPLOYER\nLSalary\n^\n"

func newImportFixture(t *testing.T) (*ImportService, *fakeTransactionTable, *fakeProcessor, uuid.UUID, uuid.UUID) {
	t.Helper()
	accountID := uuid.Must(uuid.NewV4())
	bookID := uuid.Must(uuid.NewV4())

	txTable := &fakeTransactionTable{}
	ruleTable := &fakeRuleTable{rules: []*categoryrule.CategoryRule{
		{ID: uuid.Must(uuid.NewV4()), AccountBookID: bookID, Keyword: "coles", Category: "Groceries"},
	}}
	op := &fakeProcessor{}

	store := &storage.Storage{
		Accounts:      newFakeAccountTable(accountID),
		Transactions:  txTable,
		CategoryRules: ruleTable,
	}
	return NewImportService(store, op), txTable, op, accountID, bookID
}

func TestImportQIF_PersistsAndCategorizes(t *testing.T) {
	svc, txTable, op, accountID, bookID := newImportFixture(t)

	result, err := svc.ImportQIF(context.Background(), strings.NewReader(sampleQIF), accountID, bookID)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 2, result.Saved)
	require.Len(t, result.Transactions, 2)

	first := result.Transactions[0]
	assert.Equal(t, "COLES 123 SYDNEY", first.Description)
	assert.Equal(t, "Groceries", first.Category, "rule applied to uncategorized draft")
	assert.True(t, first.DebitAmount.Equal(decimal.RequireFromString("42.50")))

	second := result.Transactions[1]
	assert.Equal(t, "Salary", second.Category, "already categorized drafts are untouched")
	assert.True(t, second.CreditAmount.Equal(decimal.NewFromInt(1500)))

	assert.Len(t, txTable.rows, 2)

	// One aggregation run at the end, for the target account.
	require.Len(t, op.processed, 1)
	recompute, ok := op.processed[0].(*actions.RecomputeAccount)
	require.True(t, ok)
	assert.Equal(t, accountID, recompute.AccountID)
}

func TestImportQIF_EmptyFile(t *testing.T) {
	svc, txTable, op, accountID, bookID := newImportFixture(t)

	result, err := svc.ImportQIF(context.Background(), strings.NewReader("!Type:Bank\n^\n"), accountID, bookID)

	assert.ErrorIs(t, err, ErrNoTransactions)
	assert.Nil(t, result)
	assert.Empty(t, txTable.rows, "nothing persisted")
	assert.Empty(t, op.processed, "no aggregation run")
}

func TestImportQIF_ReadError(t *testing.T) {
	svc, _, _, accountID, bookID := newImportFixture(t)

	result, err := svc.ImportQIF(context.Background(), failingReader{}, accountID, bookID)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoTransactions, "read failure is distinct from empty content")
	assert.Nil(t, result)
}

func TestImportQIF_UnknownAccount(t *testing.T) {
	svc, txTable, _, _, bookID := newImportFixture(t)

	result, err := svc.ImportQIF(context.Background(), strings.NewReader(sampleQIF), uuid.Must(uuid.NewV4()), bookID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, txTable.rows)
}

func TestImportQIF_PartialFailureKeepsEarlierRows(t *testing.T) {
	svc, txTable, op, accountID, bookID := newImportFixture(t)
	txTable.failInsertAt = 2

	result, err := svc.ImportQIF(context.Background(), strings.NewReader(sampleQIF), accountID, bookID)

	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Parsed)
	assert.Equal(t, 1, result.Saved)
	assert.Len(t, txTable.rows, 1, "first row stays persisted")

	// Aggregates still recomputed over the surviving rows.
	require.Len(t, op.processed, 1)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, assert.AnError
}
