package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted transaction. Exactly one of DebitAmount
// and CreditAmount is non-zero.
type Transaction struct {
	ID                  uuid.UUID       `db:"id"`
	TransactionDate     time.Time       `db:"transaction_date"`
	Description         string          `db:"description"`
	Category            string          `db:"category"`
	SubCategory         string          `db:"sub_category"`
	DebitAmount         decimal.Decimal `db:"debit_amount"`
	CreditAmount        decimal.Decimal `db:"credit_amount"`
	LinkedTransactionID *uuid.UUID      `db:"linked_transaction_id"`
	AccountID           uuid.UUID       `db:"account_id"`
	AccountBookID       uuid.UUID       `db:"account_book_id"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	TransactionDate     time.Time
	Description         string
	Category            string
	SubCategory         string
	DebitAmount         decimal.Decimal
	CreditAmount        decimal.Decimal
	LinkedTransactionID *uuid.UUID
	AccountID           uuid.UUID
	AccountBookID       uuid.UUID
}

// TransactionFilter specifies filters for listing transactions. Date bounds
// are half-open: DateFrom inclusive, DateBefore exclusive.
type TransactionFilter struct {
	AccountID     *uuid.UUID
	AccountBookID *uuid.UUID
	DateFrom      *time.Time
	DateBefore    *time.Time
}

// ITable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, category, subCategory string) error
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	DeleteByAccountDateRange(ctx context.Context, accountID uuid.UUID, from, before time.Time) (int64, error)
	DistinctCategories(ctx context.Context, accountBookID uuid.UUID) ([]string, error)
}
