package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/storage"
)

// ClearScope selects which portion of an account's transactions to delete.
type ClearScope int

const (
	// ClearScopeAll removes every transaction of the account.
	ClearScopeAll ClearScope = iota
	// ClearScopeMonth removes one calendar month given by Month (YYYY-MM).
	ClearScopeMonth
	// ClearScopePreviousMonth removes the calendar month before the current one.
	ClearScopePreviousMonth
)

// ClearAccountData deletes a scope of an account's transactions and
// recomputes the aggregates afterwards, all in one database transaction.
type ClearAccountData struct {
	AccountID uuid.UUID
	Scope     ClearScope
	Month     string // YYYY-MM, required for ClearScopeMonth
	Now       func() time.Time
}

func (a *ClearAccountData) Perform(ctx context.Context, writer *storage.Writer) error {
	_, err := writer.Accounts.FindByID(ctx, a.AccountID, true)
	if err != nil {
		return err
	}

	now := time.Now()
	if a.Now != nil {
		now = a.Now()
	}

	switch a.Scope {
	case ClearScopeAll:
		_, err = writer.Transactions.DeleteByAccount(ctx, a.AccountID)
	case ClearScopeMonth:
		var from, before time.Time
		from, before, err = MonthWindow(a.Month)
		if err == nil {
			_, err = writer.Transactions.DeleteByAccountDateRange(ctx, a.AccountID, from, before)
		}
	case ClearScopePreviousMonth:
		before := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		from := before.AddDate(0, -1, 0)
		_, err = writer.Transactions.DeleteByAccountDateRange(ctx, a.AccountID, from, before)
	default:
		err = fmt.Errorf("unknown clear scope %d", a.Scope)
	}
	if err != nil {
		return err
	}

	return recomputeAccount(ctx, writer, a.AccountID, now)
}

// MonthWindow converts a YYYY-MM key into its half-open calendar window
// [first of month, first of next month).
func MonthWindow(month string) (from, before time.Time, err error) {
	from, err = time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	return from, from.AddDate(0, 1, 0), nil
}
