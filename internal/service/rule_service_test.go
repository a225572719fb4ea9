package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

func seedTransactions(txTable *fakeTransactionTable, bookID uuid.UUID, category, description string, n int) {
	for i := 0; i < n; i++ {
		txTable.rows = append(txTable.rows, &transaction.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			TransactionDate: time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC),
			Description:     fmt.Sprintf("%s %d", description, i),
			Category:        category,
			DebitAmount:     decimal.NewFromInt(10),
			AccountBookID:   bookID,
		})
	}
}

func TestApplyToUncategorized_UpdatesOnlyMatchingUncategorized(t *testing.T) {
	bookID := uuid.Must(uuid.NewV4())
	txTable := &fakeTransactionTable{}
	seedTransactions(txTable, bookID, "Uncategorized", "COLES STORE", 4)
	seedTransactions(txTable, bookID, "Uncategorized", "BP FUEL", 6)
	seedTransactions(txTable, bookID, "Food", "COLES STORE", 5)

	ruleTable := &fakeRuleTable{rules: []*categoryrule.CategoryRule{
		{ID: uuid.Must(uuid.NewV4()), AccountBookID: bookID, Keyword: "coles", Category: "Groceries"},
	}}
	svc := NewRuleService(&storage.Storage{Transactions: txTable, CategoryRules: ruleTable})

	updated, err := svc.ApplyToUncategorized(context.Background(), bookID)

	require.NoError(t, err)
	assert.Equal(t, 4, updated, "only uncategorized rows whose description matches")

	for _, row := range txTable.rows {
		switch {
		case row.Category == "Groceries":
			assert.Contains(t, row.Description, "COLES")
		case row.Category == "Food":
			// Pre-categorized rows stay untouched even though they match.
		default:
			assert.Equal(t, "Uncategorized", row.Category)
		}
	}
}

func TestApplyToUncategorized_NoRules(t *testing.T) {
	bookID := uuid.Must(uuid.NewV4())
	txTable := &fakeTransactionTable{}
	seedTransactions(txTable, bookID, "Uncategorized", "COLES STORE", 3)

	svc := NewRuleService(&storage.Storage{Transactions: txTable, CategoryRules: &fakeRuleTable{}})

	updated, err := svc.ApplyToUncategorized(context.Background(), bookID)

	require.NoError(t, err)
	assert.Zero(t, updated)
	assert.Empty(t, txTable.updated)
}

func TestApplyToUncategorized_StorageErrorReturnsPartialCount(t *testing.T) {
	bookID := uuid.Must(uuid.NewV4())
	txTable := &fakeTransactionTable{updateErr: assert.AnError}
	seedTransactions(txTable, bookID, "Uncategorized", "COLES STORE", 2)

	ruleTable := &fakeRuleTable{rules: []*categoryrule.CategoryRule{
		{ID: uuid.Must(uuid.NewV4()), AccountBookID: bookID, Keyword: "coles", Category: "Groceries"},
	}}
	svc := NewRuleService(&storage.Storage{Transactions: txTable, CategoryRules: ruleTable})

	updated, err := svc.ApplyToUncategorized(context.Background(), bookID)

	assert.Error(t, err)
	assert.Zero(t, updated)
}
