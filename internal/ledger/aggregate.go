// Package ledger computes month-bucketed account aggregates.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is the amount-bearing slice of a transaction the aggregator needs.
type Entry struct {
	Date   time.Time
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// MonthTotals is one month's aggregate in an account's historical series.
// Balance is the running net (credits - debits) over all months up to and
// including this one.
type MonthTotals struct {
	Month   string          `json:"month"`
	Debits  decimal.Decimal `json:"debits"`
	Credits decimal.Decimal `json:"credits"`
	Balance decimal.Decimal `json:"balance"`
}

// Snapshot holds the scalar fields mirrored from one month of the series.
type Snapshot struct {
	Balance decimal.Decimal
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

// ComputeMonthlySeries rebuilds the full historical series from scratch.
// Entries are grouped by YYYY-MM, each month's debits and credits are summed
// in decimal arithmetic, months are sorted ascending (lexical order equals
// chronological order for YYYY-MM keys), and the running balance accumulates
// across months. The same entry set always yields the same series, so the
// recompute can run after any mutation without leaving stale months behind.
func ComputeMonthlySeries(entries []Entry) []MonthTotals {
	type totals struct {
		debits  decimal.Decimal
		credits decimal.Decimal
	}

	byMonth := make(map[string]totals)
	for _, e := range entries {
		key := e.Date.Format("2006-01")
		t := byMonth[key]
		t.debits = t.debits.Add(e.Debit)
		t.credits = t.credits.Add(e.Credit)
		byMonth[key] = t
	}

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	sort.Strings(months)

	series := make([]MonthTotals, 0, len(months))
	balance := decimal.Zero
	for _, month := range months {
		t := byMonth[month]
		balance = balance.Add(t.credits.Sub(t.debits))
		series = append(series, MonthTotals{
			Month:   month,
			Debits:  t.debits,
			Credits: t.credits,
			Balance: balance,
		})
	}

	return series
}

// SnapshotFor extracts the scalar fields for one month of the series. Months
// without an entry yield all zeros.
func SnapshotFor(series []MonthTotals, month string) Snapshot {
	for _, m := range series {
		if m.Month == month {
			return Snapshot{Balance: m.Balance, Debits: m.Debits, Credits: m.Credits}
		}
	}
	return Snapshot{
		Balance: decimal.Zero,
		Debits:  decimal.Zero,
		Credits: decimal.Zero,
	}
}
