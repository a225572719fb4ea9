package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/ledger"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/account"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// RecomputeAccount rebuilds an account's historical balance series and
// current-month scalars from its full transaction set. It runs after every
// amount-affecting mutation and is idempotent.
type RecomputeAccount struct {
	AccountID uuid.UUID
	Now       func() time.Time
}

func (a *RecomputeAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Accounts.FindByID(ctx, a.AccountID, true)
	if err != nil {
		return err
	}
	return recomputeAccount(ctx, writer, a.AccountID, a.now())
}

func (a *RecomputeAccount) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// recomputeAccount is shared by every action that changes amounts. The
// account row must already be locked by the caller.
func recomputeAccount(ctx context.Context, writer *storage.Writer, accountID uuid.UUID, now time.Time) error {
	rows, err := writer.Transactions.List(ctx, &transaction.TransactionFilter{AccountID: &accountID})
	if err != nil {
		return err
	}

	entries := make([]ledger.Entry, len(rows))
	for i, row := range rows {
		entries[i] = ledger.Entry{
			Date:   row.TransactionDate,
			Debit:  row.DebitAmount,
			Credit: row.CreditAmount,
		}
	}

	series := ledger.ComputeMonthlySeries(entries)
	snap := ledger.SnapshotFor(series, now.UTC().Format("2006-01"))

	return writer.Accounts.UpdateDerived(ctx, accountID, account.BalanceSeries(series), snap)
}
