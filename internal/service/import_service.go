package service

import (
	"context"
	"errors"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/operator/actions"
	"github.com/carson-networks/accountbook-server/internal/qif"
	"github.com/carson-networks/accountbook-server/internal/rules"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// ErrNoTransactions signals that the QIF payload held no complete records.
// Nothing was persisted.
var ErrNoTransactions = errors.New("no transactions found in file")

// ImportService runs the QIF ingestion pipeline: parse, categorize, persist,
// recompute aggregates.
type ImportService struct {
	storage  *storage.Storage
	operator ActionProcessor
	parser   *qif.Parser
}

// NewImportService creates a new ImportService.
func NewImportService(store *storage.Storage, op ActionProcessor) *ImportService {
	return &ImportService{storage: store, operator: op, parser: qif.NewParser()}
}

// ImportResult reports the outcome of one import run. Saved can lag Parsed
// when a mid-loop insert fails; rows persisted before the failure stay.
type ImportResult struct {
	Parsed       int
	Saved        int
	Transactions []*transaction.Transaction
}

// ImportQIF ingests a QIF payload into the target account. Each transaction
// is persisted as its own small insert; an insert failure keeps the rows that
// already succeeded and surfaces the error alongside the partial result.
// Aggregates are recomputed exactly once at the end.
func (s *ImportService) ImportQIF(ctx context.Context, r io.Reader, accountID, accountBookID uuid.UUID) (*ImportResult, error) {
	drafts, err := s.parser.ParseReader(r)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNoTransactions
	}

	if _, err := s.storage.Accounts.FindByID(ctx, accountID, false); err != nil {
		return nil, err
	}

	storedRules, err := s.storage.CategoryRules.ListByBook(ctx, accountBookID)
	if err != nil {
		return nil, err
	}
	ruleSet := toRuleSet(storedRules)

	result := &ImportResult{Parsed: len(drafts)}
	for _, draft := range drafts {
		category, subCategory, _ := rules.Apply(draft.Description, draft.Category, draft.SubCategory, ruleSet)

		id, insertErr := s.storage.Transactions.Insert(ctx, &transaction.TransactionCreate{
			TransactionDate:     draft.Date,
			Description:         draft.Description,
			Category:            category,
			SubCategory:         subCategory,
			DebitAmount:         draft.Debit,
			CreditAmount:        draft.Credit,
			LinkedTransactionID: draft.LinkedTransactionID,
			AccountID:           accountID,
			AccountBookID:       accountBookID,
		})
		if insertErr != nil {
			// No rollback across the loop: whatever persisted stays,
			// and the aggregate still reflects it.
			if aggErr := s.recompute(ctx, accountID); aggErr != nil {
				return result, errors.Join(insertErr, aggErr)
			}
			return result, insertErr
		}

		row, findErr := s.storage.Transactions.FindByID(ctx, id)
		if findErr != nil {
			return result, findErr
		}
		result.Saved++
		result.Transactions = append(result.Transactions, row)
	}

	if err := s.recompute(ctx, accountID); err != nil {
		return result, err
	}
	return result, nil
}

func (s *ImportService) recompute(ctx context.Context, accountID uuid.UUID) error {
	return s.operator.Process(ctx, &actions.RecomputeAccount{AccountID: accountID})
}
