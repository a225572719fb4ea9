package transaction

import (
	"time"

	storagetransaction "github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID                  string  `json:"id" doc:"Transaction UUID"`
	TransactionDate     string  `json:"transactionDate" doc:"Transaction date, YYYY-MM-DD"`
	Description         string  `json:"description" doc:"Payee or memo text"`
	Category            string  `json:"category" doc:"Assigned category"`
	SubCategory         string  `json:"subCategory" doc:"Assigned sub-category"`
	DebitAmount         string  `json:"debitAmount" doc:"Debit amount, decimal string"`
	CreditAmount        string  `json:"creditAmount" doc:"Credit amount, decimal string"`
	LinkedTransactionID *string `json:"linkedTransactionID,omitempty" doc:"Counterpart transaction UUID for transfers"`
	AccountID           string  `json:"accountID" doc:"Owning account UUID"`
	AccountBookID       string  `json:"accountBookID" doc:"Owning account book UUID"`
}

func fromStorage(row *storagetransaction.Transaction) Transaction {
	out := Transaction{
		ID:              row.ID.String(),
		TransactionDate: row.TransactionDate.Format("2006-01-02"),
		Description:     row.Description,
		Category:        row.Category,
		SubCategory:     row.SubCategory,
		DebitAmount:     row.DebitAmount.String(),
		CreditAmount:    row.CreditAmount.String(),
		AccountID:       row.AccountID.String(),
		AccountBookID:   row.AccountBookID.String(),
	}
	if row.LinkedTransactionID != nil {
		linked := row.LinkedTransactionID.String()
		out.LinkedTransactionID = &linked
	}
	return out
}

func parseTransactionDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
