package accountbook

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ITable = (*Table)(nil)

const tableName = "account_books"

type Table struct {
	exec bob.Executor
}

func NewTable(db *sql.DB) *Table {
	return &Table{exec: bob.NewDB(db)}
}

// NewTxTable returns a Table scoped to an open transaction.
func NewTxTable(tx bob.Tx) *Table {
	return &Table{exec: tx}
}

// FindByID retrieves an account book by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*AccountBook, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at", "updated_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*AccountBook]())
}

// Insert creates a new account book and returns its generated ID.
func (t *Table) Insert(ctx context.Context, name string) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName, "name"),
		im.Values(psql.Arg(name)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns all account books ordered by most recently updated.
func (t *Table) List(ctx context.Context) ([]*AccountBook, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at", "updated_at"),
		sm.From(tableName),
		sm.OrderBy("updated_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*AccountBook]())
}

// Delete removes an account book. Owned accounts, transactions, and rules go
// with it via ON DELETE CASCADE.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
