package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/accountbook"
)

// AccountBookService handles account book business logic.
type AccountBookService struct {
	storage *storage.Storage
}

// NewAccountBookService creates a new AccountBookService.
func NewAccountBookService(store *storage.Storage) *AccountBookService {
	return &AccountBookService{storage: store}
}

// Create creates a new account book and returns its ID.
func (s *AccountBookService) Create(ctx context.Context, name string) (uuid.UUID, error) {
	return s.storage.AccountBooks.Insert(ctx, name)
}

// Get retrieves an account book by ID.
func (s *AccountBookService) Get(ctx context.Context, id uuid.UUID) (*accountbook.AccountBook, error) {
	return s.storage.AccountBooks.FindByID(ctx, id)
}

// List returns all account books, most recently updated first.
func (s *AccountBookService) List(ctx context.Context) ([]*accountbook.AccountBook, error) {
	return s.storage.AccountBooks.List(ctx)
}

// Delete removes an account book and, via cascade, everything it owns.
func (s *AccountBookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storage.AccountBooks.Delete(ctx, id)
}
