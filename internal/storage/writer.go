package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/accountbook-server/internal/storage/account"
	"github.com/carson-networks/accountbook-server/internal/storage/accountbook"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// Writer scopes all table operations to one open transaction.
type Writer struct {
	tx            bob.Tx
	AccountBooks  accountbook.ITable
	Accounts      account.ITable
	Transactions  transaction.ITable
	CategoryRules categoryrule.ITable
}

func NewWriter(tx bob.Tx) Writer {
	return Writer{
		tx:            tx,
		AccountBooks:  accountbook.NewTxTable(tx),
		Accounts:      account.NewTxTable(tx),
		Transactions:  transaction.NewTxTable(tx),
		CategoryRules: categoryrule.NewTxTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
