package categoryrule

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// CategoryRule maps a description keyword to a category assignment within an
// account book. Rules apply in creation order.
type CategoryRule struct {
	ID            uuid.UUID `db:"id"`
	AccountBookID uuid.UUID `db:"account_book_id"`
	Keyword       string    `db:"keyword"`
	Category      string    `db:"category"`
	SubCategory   string    `db:"sub_category"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// RuleCreate is the input for creating a new category rule.
type RuleCreate struct {
	AccountBookID uuid.UUID
	Keyword       string
	Category      string
	SubCategory   string
}

// ITable defines the interface for category rule storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITable interface {
	Insert(ctx context.Context, create *RuleCreate) (uuid.UUID, error)
	ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*CategoryRule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
