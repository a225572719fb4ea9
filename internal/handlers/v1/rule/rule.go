package rule

import (
	storagerule "github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
)

// Rule is the API response model for a category rule.
type Rule struct {
	ID            string `json:"id" doc:"Rule UUID"`
	AccountBookID string `json:"accountBookID" doc:"Owning account book UUID"`
	Keyword       string `json:"keyword" doc:"Case-insensitive keyword matched against descriptions"`
	Category      string `json:"category" doc:"Category assigned on match"`
	SubCategory   string `json:"subCategory" doc:"Sub-category assigned on match"`
}

func fromStorage(row *storagerule.CategoryRule) Rule {
	return Rule{
		ID:            row.ID.String(),
		AccountBookID: row.AccountBookID.String(),
		Keyword:       row.Keyword,
		Category:      row.Category,
		SubCategory:   row.SubCategory,
	}
}
