package actions

import (
	"context"
	"errors"
	"time"

	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// CreateTransaction inserts a manually entered transaction and recomputes the
// owning account's aggregates in the same database transaction.
type CreateTransaction struct {
	Create transaction.TransactionCreate
	Now    func() time.Time
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if t.Create.DebitAmount.IsNegative() || t.Create.CreditAmount.IsNegative() {
		return errors.New("amounts must not be negative")
	}
	if !t.Create.DebitAmount.IsZero() && !t.Create.CreditAmount.IsZero() {
		return errors.New("exactly one of debit and credit may be non-zero")
	}

	_, err := writer.Accounts.FindByID(ctx, t.Create.AccountID, true)
	if err != nil {
		return err
	}

	if _, err = writer.Transactions.Insert(ctx, &t.Create); err != nil {
		return err
	}

	now := time.Now()
	if t.Now != nil {
		now = t.Now()
	}
	return recomputeAccount(ctx, writer, t.Create.AccountID, now)
}
