package accountbook

import (
	"time"

	storagebook "github.com/carson-networks/accountbook-server/internal/storage/accountbook"
)

// AccountBook is the API response model for an account book.
type AccountBook struct {
	ID        string `json:"id" doc:"Account book UUID"`
	Name      string `json:"name" doc:"Account book name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updatedAt" doc:"RFC3339 last update time"`
}

func fromStorage(row *storagebook.AccountBook) AccountBook {
	return AccountBook{
		ID:        row.ID.String(),
		Name:      row.Name,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
		UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
	}
}
