package transaction

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/bob/mods"
	"github.com/stephenafamo/scan"
)

var _ ITable = (*Table)(nil)

const tableName = "transactions"

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

func selectColumns() bob.Mod[*dialect.SelectQuery] {
	return sm.Columns(
		"id", "transaction_date", "description", "category", "sub_category",
		"debit_amount", "credit_amount", "linked_transaction_id",
		"account_id", "account_book_id", "created_at", "updated_at",
	)
}

// FindByID retrieves a transaction by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		selectColumns(),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return bob.One(ctx, t.exec, q, scan.StructMapper[*Transaction]())
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(tableName,
			"transaction_date", "description", "category", "sub_category",
			"debit_amount", "credit_amount", "linked_transaction_id",
			"account_id", "account_book_id",
		),
		im.Values(psql.Arg(
			create.TransactionDate, create.Description, create.Category, create.SubCategory,
			create.DebitAmount, create.CreditAmount, create.LinkedTransactionID,
			create.AccountID, create.AccountBookID,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// List returns transactions matching the filter ordered by transaction date.
// Nil filter returns all.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		selectColumns(),
		sm.From(tableName),
	}
	if filter != nil {
		var whereMods []mods.Where[*dialect.SelectQuery]
		if filter.AccountID != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.AccountBookID != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("account_book_id").EQ(psql.Arg(*filter.AccountBookID))))
		}
		if filter.DateFrom != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(*filter.DateFrom))))
		}
		if filter.DateBefore != nil {
			whereMods = append(whereMods, sm.Where(psql.Quote("transaction_date").LT(psql.Arg(*filter.DateBefore))))
		}
		if len(whereMods) == 1 {
			queryMods = append(queryMods, whereMods[0])
		} else if len(whereMods) > 1 {
			queryMods = append(queryMods, psql.WhereAnd(whereMods...))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Asc(),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
}

// UpdateCategory reassigns a transaction's category and sub-category.
func (t *Table) UpdateCategory(ctx context.Context, id uuid.UUID, category, subCategory string) error {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("category").ToArg(category),
		um.SetCol("sub_category").ToArg(subCategory),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// DeleteByAccount removes all transactions for an account and returns the
// number of rows deleted.
func (t *Table) DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByAccountDateRange removes an account's transactions with
// from <= transaction_date < before and returns the number deleted.
func (t *Table) DeleteByAccountDateRange(ctx context.Context, accountID uuid.UUID, from, before time.Time) (int64, error) {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		dm.Where(psql.Quote("transaction_date").GTE(psql.Arg(from))),
		dm.Where(psql.Quote("transaction_date").LT(psql.Arg(before))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DistinctCategories returns the sorted set of non-empty categories used by
// an account book's transactions.
func (t *Table) DistinctCategories(ctx context.Context, accountBookID uuid.UUID) ([]string, error) {
	q := psql.Select(
		sm.Distinct(),
		sm.Columns("category"),
		sm.From(tableName),
		psql.WhereAnd(
			sm.Where(psql.Quote("account_book_id").EQ(psql.Arg(accountBookID))),
			sm.Where(psql.Quote("category").NE(psql.Arg(""))),
		),
		sm.OrderBy("category").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.SingleColumnMapper[string])
}
