package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/rules"
	"github.com/carson-networks/accountbook-server/internal/storage"
	"github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
	"github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// RuleService handles category rule business logic.
type RuleService struct {
	storage *storage.Storage
}

// NewRuleService creates a new RuleService.
func NewRuleService(store *storage.Storage) *RuleService {
	return &RuleService{storage: store}
}

// Create creates a new category rule and returns its ID.
func (s *RuleService) Create(ctx context.Context, create categoryrule.RuleCreate) (uuid.UUID, error) {
	return s.storage.CategoryRules.Insert(ctx, &create)
}

// List returns an account book's rules in creation order.
func (s *RuleService) List(ctx context.Context, accountBookID uuid.UUID) ([]*categoryrule.CategoryRule, error) {
	return s.storage.CategoryRules.ListByBook(ctx, accountBookID)
}

// Delete removes a category rule.
func (s *RuleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storage.CategoryRules.Delete(ctx, id)
}

// ApplyToUncategorized scans every transaction of the account book and
// assigns the first matching rule to those still uncategorized, returning
// the number updated. Amounts never change here, so no aggregation runs.
func (s *RuleService) ApplyToUncategorized(ctx context.Context, accountBookID uuid.UUID) (int, error) {
	stored, err := s.storage.CategoryRules.ListByBook(ctx, accountBookID)
	if err != nil {
		return 0, err
	}
	if len(stored) == 0 {
		return 0, nil
	}
	ruleSet := toRuleSet(stored)

	txs, err := s.storage.Transactions.List(ctx, &transaction.TransactionFilter{AccountBookID: &accountBookID})
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, tx := range txs {
		category, subCategory, matched := rules.Apply(tx.Description, tx.Category, tx.SubCategory, ruleSet)
		if !matched {
			continue
		}
		if err := s.storage.Transactions.UpdateCategory(ctx, tx.ID, category, subCategory); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func toRuleSet(stored []*categoryrule.CategoryRule) []rules.Rule {
	ruleSet := make([]rules.Rule, len(stored))
	for i, r := range stored {
		ruleSet[i] = rules.Rule{
			Keyword:     r.Keyword,
			Category:    r.Category,
			SubCategory: r.SubCategory,
		}
	}
	return ruleSet
}
