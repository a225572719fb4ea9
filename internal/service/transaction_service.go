package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, operator: op}
}

// Create persists a manually entered transaction and recomputes the owning
// account's aggregates.
func (s *TransactionService) Create(ctx context.Context, create transaction.TransactionCreate) error {
	return s.operator.Process(ctx, &actions.CreateTransaction{Create: create})
}

// ListByAccountMonth returns an account's transactions within one calendar
// month (YYYY-MM), ordered by transaction date.
func (s *TransactionService) ListByAccountMonth(ctx context.Context, accountID uuid.UUID, month string) ([]*transaction.Transaction, error) {
	from, before, err := actions.MonthWindow(month)
	if err != nil {
		return nil, err
	}
	return s.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		AccountID:  &accountID,
		DateFrom:   &from,
		DateBefore: &before,
	})
}

// ListByBook returns all transactions of an account book ordered by date.
func (s *TransactionService) ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*transaction.Transaction, error) {
	return s.storage.Transactions.List(ctx, &transaction.TransactionFilter{AccountBookID: &accountBookID})
}

// UpdateCategories reassigns the category of each listed transaction and
// returns the number updated. Category changes do not affect amounts, so no
// aggregation follows.
func (s *TransactionService) UpdateCategories(ctx context.Context, ids []uuid.UUID, category, subCategory string) (int, error) {
	updated := 0
	for _, id := range ids {
		if err := s.storage.Transactions.UpdateCategory(ctx, id, category, subCategory); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// DistinctCategories returns the sorted set of categories in use across an
// account book.
func (s *TransactionService) DistinctCategories(ctx context.Context, accountBookID uuid.UUID) ([]string, error) {
	return s.storage.Transactions.DistinctCategories(ctx, accountBookID)
}
