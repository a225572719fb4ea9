package service

import (
	"context"

	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/storage"
)

// ActionProcessor runs mutations through the operator queue so aggregate
// recomputes for an account never interleave.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	AccountBook *AccountBookService
	Account     *AccountService
	Transaction *TransactionService
	Rule        *RuleService
	Import      *ImportService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, op ActionProcessor) *Service {
	return &Service{
		AccountBook: NewAccountBookService(store),
		Account:     NewAccountService(store, op),
		Transaction: NewTransactionService(store, op),
		Rule:        NewRuleService(store),
		Import:      NewImportService(store, op),
	}
}
