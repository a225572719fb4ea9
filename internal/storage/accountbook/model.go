package accountbook

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// AccountBook is a grouping namespace for accounts, transactions, and rules.
type AccountBook struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ITable defines the interface for account book storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccountBook, error)
	Insert(ctx context.Context, name string) (uuid.UUID, error)
	List(ctx context.Context) ([]*AccountBook, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
