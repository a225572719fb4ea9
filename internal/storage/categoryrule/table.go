package categoryrule

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

const tableName = "category_rules"

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

// Insert creates a new category rule and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *RuleCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName, "account_book_id", "keyword", "category", "sub_category"),
		im.Values(psql.Arg(create.AccountBookID, create.Keyword, create.Category, create.SubCategory)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// ListByBook returns an account book's rules in creation order. First match
// wins during rule application, so the order here is the conflict resolution.
func (t *Table) ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*CategoryRule, error) {
	q := psql.Select(
		sm.Columns("id", "account_book_id", "keyword", "category", "sub_category", "created_at", "updated_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("account_book_id").EQ(psql.Arg(accountBookID))),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*CategoryRule]())
}

// Delete removes a category rule.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
