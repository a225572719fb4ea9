// Package rules implements keyword-based transaction categorization.
package rules

import "strings"

// Rule maps a keyword to a category assignment. Rules are evaluated in
// creation order and the first match wins.
type Rule struct {
	Keyword     string
	Category    string
	SubCategory string
}

// IsUncategorized reports whether a category value is eligible for rule
// application. Already-categorized transactions are never overwritten.
func IsUncategorized(category string) bool {
	return category == "" || strings.EqualFold(category, "Uncategorized")
}

// Match returns the first rule whose keyword is a case-insensitive substring
// of the description.
func Match(description string, ruleSet []Rule) (Rule, bool) {
	descLower := strings.ToLower(description)
	for _, r := range ruleSet {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(descLower, strings.ToLower(r.Keyword)) {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply matches the rule set against a transaction's description and returns
// the category assignment to use. It only acts when the current category is
// empty or "Uncategorized"; otherwise the existing values come back unchanged.
func Apply(description, category, subCategory string, ruleSet []Rule) (newCategory, newSubCategory string, matched bool) {
	if !IsUncategorized(category) {
		return category, subCategory, false
	}
	r, ok := Match(description, ruleSet)
	if !ok {
		return category, subCategory, false
	}
	return r.Category, r.SubCategory, true
}
