package account

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/accountbook-server/internal/ledger"
)

var _ ITable = (*Table)(nil)

const tableName = "accounts"

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
		"id", "name", "account_book_id",
		"total_monthly_balance", "total_monthly_debits", "total_monthly_credits",
		"historical_balance", "created_at", "updated_at",
	)
}

// FindByID retrieves an account by primary key. forUpdate takes a row lock
// for the duration of the surrounding transaction.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		selectColumns(),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	return bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Account]())
}

// Insert creates a new account and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	series := create.HistoricalBalance
	if series == nil {
		series = BalanceSeries{}
	}
	q := psql.Insert(
		im.Into(tableName,
			"name", "account_book_id",
			"total_monthly_balance", "total_monthly_debits", "total_monthly_credits",
			"historical_balance",
		),
		im.Values(psql.Arg(
			create.Name, create.AccountBookID,
			create.TotalMonthlyBalance, create.TotalMonthlyDebits, create.TotalMonthlyCredits,
			series,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
}

// ListByBook returns all accounts belonging to an account book.
func (t *Table) ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*Account, error) {
	q := psql.Select(
		selectColumns(),
		sm.From(tableName),
		sm.Where(psql.Quote("account_book_id").EQ(psql.Arg(accountBookID))),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*Account]())
}

// UpdateDerived replaces the account's historical series and scalar snapshot
// fields in one statement.
func (t *Table) UpdateDerived(ctx context.Context, id uuid.UUID, series BalanceSeries, snap ledger.Snapshot) error {
	if series == nil {
		series = BalanceSeries{}
	}
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("historical_balance").ToArg(series),
		um.SetCol("total_monthly_balance").ToArg(snap.Balance),
		um.SetCol("total_monthly_debits").ToArg(snap.Debits),
		um.SetCol("total_monthly_credits").ToArg(snap.Credits),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes an account; its transactions cascade.
func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}
