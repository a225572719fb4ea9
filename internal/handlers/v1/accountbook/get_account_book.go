package accountbook

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	storagebook "github.com/carson-networks/accountbook-server/internal/storage/accountbook"
)

// GetAccountBookInput is the Huma input for fetching an account book.
type GetAccountBookInput struct {
	ID string `path:"id" doc:"Account book UUID"`
}

// GetAccountBookOutput is the Huma output for fetching an account book.
type GetAccountBookOutput struct {
	Body AccountBook
}

// accountBookGetter is the interface for fetching account books.
type accountBookGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*storagebook.AccountBook, error)
}

// GetAccountBookHandler handles GET /v1/account-book/{id}.
type GetAccountBookHandler struct {
	AccountBookService accountBookGetter
}

// NewGetAccountBookHandler creates a new GetAccountBookHandler.
func NewGetAccountBookHandler(svc accountBookGetter) *GetAccountBookHandler {
	return &GetAccountBookHandler{AccountBookService: svc}
}

// Register registers the get account book endpoint with the Huma API.
func (h *GetAccountBookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-account-book",
		Method:      http.MethodGet,
		Path:        "/v1/account-book/{id}",
		Summary:     "Get account book",
		Tags:        []string{"AccountBooks"},
	}, h.handle)
}

func (h *GetAccountBookHandler) handle(ctx context.Context, input *GetAccountBookInput) (*GetAccountBookOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book id", err)
	}

	row, err := h.AccountBookService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, huma.NewError(http.StatusNotFound, "account book not found", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get account book", err)
	}

	return &GetAccountBookOutput{Body: fromStorage(row)}, nil
}
