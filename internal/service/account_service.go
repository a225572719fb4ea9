package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/account"
)

// AccountService handles account business logic.
type AccountService struct {
	storage  *storage.Storage
	operator ActionProcessor
	now      func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op ActionProcessor) *AccountService {
	return &AccountService{storage: store, operator: op, now: time.Now}
}

// AccountCreate is the service-layer input for creating an account.
type AccountCreate struct {
	Name          string
	AccountBookID uuid.UUID
	Balance       decimal.Decimal
	Debits        decimal.Decimal
	Credits       decimal.Decimal
}

// Create creates an account whose historical series is seeded with a
// current-month entry built from the provided totals.
func (s *AccountService) Create(ctx context.Context, create AccountCreate) (uuid.UUID, error) {
	month := s.now().UTC().Format("2006-01")
	seed := account.BalanceSeries{
		{
			Month:   month,
			Debits:  create.Debits,
			Credits: create.Credits,
			Balance: create.Credits.Sub(create.Debits),
		},
	}

	return s.storage.Accounts.Insert(ctx, &account.AccountCreate{
		Name:                create.Name,
		AccountBookID:       create.AccountBookID,
		TotalMonthlyBalance: create.Balance,
		TotalMonthlyDebits:  create.Debits,
		TotalMonthlyCredits: create.Credits,
		HistoricalBalance:   seed,
	})
}

// Get retrieves an account by ID.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.storage.Accounts.FindByID(ctx, id, false)
}

// ListByBook returns all accounts of an account book.
func (s *AccountService) ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*account.Account, error) {
	return s.storage.Accounts.ListByBook(ctx, accountBookID)
}

// Delete removes an account; its transactions cascade with it, so no
// aggregation follows.
func (s *AccountService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storage.Accounts.Delete(ctx, id)
}

// ClearMonth deletes one calendar month (YYYY-MM) of the account's
// transactions and recomputes the aggregates.
func (s *AccountService) ClearMonth(ctx context.Context, id uuid.UUID, month string) error {
	return s.operator.Process(ctx, &actions.ClearAccountData{
		AccountID: id,
		Scope:     actions.ClearScopeMonth,
		Month:     month,
	})
}

// ClearPreviousMonth deletes the calendar month before the current one.
func (s *AccountService) ClearPreviousMonth(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.ClearAccountData{
		AccountID: id,
		Scope:     actions.ClearScopePreviousMonth,
	})
}

// ClearAll deletes every transaction of the account.
func (s *AccountService) ClearAll(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.ClearAccountData{
		AccountID: id,
		Scope:     actions.ClearScopeAll,
	})
}

// Recompute forces a full aggregate rebuild for an account.
func (s *AccountService) Recompute(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RecomputeAccount{AccountID: id})
}
