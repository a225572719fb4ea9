package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/accountbook-server/internal/config"
	"github.com/carson-networks/accountbook-server/internal/storage/account"
	"github.com/carson-networks/accountbook-server/internal/storage/accountbook"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// Storage bundles the table implementations over one database handle.
// The table fields are interfaces so tests can substitute fakes.
type Storage struct {
	DB            *sql.DB
	bobDB         bob.DB
	AccountBooks  accountbook.ITable
	Accounts      account.ITable
	Transactions  transaction.ITable
	CategoryRules categoryrule.ITable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	return &Storage{
		DB:            db,
		bobDB:         bob.NewDB(db),
		AccountBooks:  accountbook.NewTable(db),
		Accounts:      account.NewTable(db),
		Transactions:  transaction.NewTable(db),
		CategoryRules: categoryrule.NewTable(db),
	}
}

// Write opens a transaction and returns a Writer over it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx)
	return &writer, nil
}
