package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRules = []Rule{
	{Keyword: "coles", Category: "Groceries"},
	{Keyword: "netflix", Category: "Subscriptions", SubCategory: "Streaming"},
	{Keyword: "cole", Category: "ShouldNeverWin"},
}

func TestMatch_FirstMatchWins(t *testing.T) {
	r, ok := Match("COLES 123 SYDNEY", testRules)

	assert.True(t, ok)
	assert.Equal(t, "Groceries", r.Category)
}

func TestMatch_CaseInsensitiveSubstring(t *testing.T) {
	r, ok := Match("Payment NETFLIX.COM", testRules)

	assert.True(t, ok)
	assert.Equal(t, "Subscriptions", r.Category)
	assert.Equal(t, "Streaming", r.SubCategory)
}

func TestMatch_NoMatch(t *testing.T) {
	_, ok := Match("BP FUEL STATION", testRules)

	assert.False(t, ok)
}

func TestMatch_EmptyKeywordSkipped(t *testing.T) {
	_, ok := Match("anything", []Rule{{Keyword: "", Category: "All"}})

	assert.False(t, ok)
}

func TestIsUncategorized(t *testing.T) {
	assert.True(t, IsUncategorized(""))
	assert.True(t, IsUncategorized("Uncategorized"))
	assert.True(t, IsUncategorized("UNCATEGORIZED"))
	assert.True(t, IsUncategorized("uncategorized"))
	assert.False(t, IsUncategorized("Food"))
}

func TestApply_AssignsOnMatch(t *testing.T) {
	category, subCategory, matched := Apply("COLES 123 SYDNEY", "Uncategorized", "", testRules)

	assert.True(t, matched)
	assert.Equal(t, "Groceries", category)
	assert.Equal(t, "", subCategory)
}

func TestApply_NeverOverwritesCategorized(t *testing.T) {
	category, subCategory, matched := Apply("COLES 123 SYDNEY", "Food", "Takeaway", testRules)

	assert.False(t, matched)
	assert.Equal(t, "Food", category)
	assert.Equal(t, "Takeaway", subCategory)
}

func TestApply_NoMatchLeavesValues(t *testing.T) {
	category, subCategory, matched := Apply("BP FUEL", "Uncategorized", "", testRules)

	assert.False(t, matched)
	assert.Equal(t, "Uncategorized", category)
	assert.Equal(t, "", subCategory)
}
