package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/accountbook-server/internal/ledger"
)

// Account represents an account record. The three TotalMonthly* scalars and
// HistoricalBalance are derived fields; the aggregator is their sole writer.
type Account struct {
	ID                  uuid.UUID       `db:"id"`
	Name                string          `db:"name"`
	AccountBookID       uuid.UUID       `db:"account_book_id"`
	TotalMonthlyBalance decimal.Decimal `db:"total_monthly_balance"`
	TotalMonthlyDebits  decimal.Decimal `db:"total_monthly_debits"`
	TotalMonthlyCredits decimal.Decimal `db:"total_monthly_credits"`
	HistoricalBalance   BalanceSeries   `db:"historical_balance"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

// AccountCreate is the input for creating a new account. The scalar totals
// seed the initial current-month series entry.
type AccountCreate struct {
	Name                string
	AccountBookID       uuid.UUID
	TotalMonthlyBalance decimal.Decimal
	TotalMonthlyDebits  decimal.Decimal
	TotalMonthlyCredits decimal.Decimal
	HistoricalBalance   BalanceSeries
}

// ITable defines the interface for account storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error)
	ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*Account, error)
	UpdateDerived(ctx context.Context, id uuid.UUID, series BalanceSeries, snap ledger.Snapshot) error
	Delete(ctx context.Context, id uuid.UUID) error
}
