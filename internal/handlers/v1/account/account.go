package account

import (
	"time"

	storageaccount "github.com/carson-networks/accountbook-server/internal/storage/account"
)

// MonthEntry is one month of an account's historical balance series.
type MonthEntry struct {
	Month   string `json:"month" doc:"Month key YYYY-MM"`
	Debits  string `json:"debits" doc:"Decimal debit total for the month"`
	Credits string `json:"credits" doc:"Decimal credit total for the month"`
	Balance string `json:"balance" doc:"Running balance through this month"`
}

// Account is the API response model for an account.
type Account struct {
	ID                  string       `json:"id" doc:"Account UUID"`
	Name                string       `json:"name" doc:"Account name"`
	AccountBookID       string       `json:"accountBookID" doc:"Owning account book UUID"`
	TotalMonthlyBalance string       `json:"totalMonthlyBalance" doc:"Current month running balance"`
	TotalMonthlyDebits  string       `json:"totalMonthlyDebits" doc:"Current month debit total"`
	TotalMonthlyCredits string       `json:"totalMonthlyCredits" doc:"Current month credit total"`
	HistoricalBalance   []MonthEntry `json:"historicalBalance" doc:"Ordered-by-month balance series"`
	UpdatedAt           string       `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromStorage(row *storageaccount.Account) Account {
	series := make([]MonthEntry, len(row.HistoricalBalance))
	for i, m := range row.HistoricalBalance {
		series[i] = MonthEntry{
			Month:   m.Month,
			Debits:  m.Debits.String(),
			Credits: m.Credits.String(),
			Balance: m.Balance.String(),
		}
	}
	return Account{
		ID:                  row.ID.String(),
		Name:                row.Name,
		AccountBookID:       row.AccountBookID.String(),
		TotalMonthlyBalance: row.TotalMonthlyBalance.String(),
		TotalMonthlyDebits:  row.TotalMonthlyDebits.String(),
		TotalMonthlyCredits: row.TotalMonthlyCredits.String(),
		HistoricalBalance:   series,
		UpdatedAt:           row.UpdatedAt.Format(time.RFC3339),
	}
}
