package accountbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// DeleteAccountBookInput is the Huma input for deleting an account book.
type DeleteAccountBookInput struct {
	ID string `path:"id" doc:"Account book UUID"`
}

// DeleteAccountBookOutput is the Huma output for deleting an account book.
type DeleteAccountBookOutput struct {
	Status int
}

// accountBookDeleter is the interface for deleting account books.
type accountBookDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteAccountBookHandler handles DELETE /v1/account-book/{id}.
type DeleteAccountBookHandler struct {
	AccountBookService accountBookDeleter
}

// NewDeleteAccountBookHandler creates a new DeleteAccountBookHandler.
func NewDeleteAccountBookHandler(svc accountBookDeleter) *DeleteAccountBookHandler {
	return &DeleteAccountBookHandler{AccountBookService: svc}
}

// Register registers the delete account book endpoint with the Huma API.
func (h *DeleteAccountBookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account-book",
		Method:      http.MethodDelete,
		Path:        "/v1/account-book/{id}",
		Summary:     "Delete account book",
		Description: "Deletes an account book and everything it owns.",
		Tags:        []string{"AccountBooks"},
	}, h.handle)
}

func (h *DeleteAccountBookHandler) handle(ctx context.Context, input *DeleteAccountBookInput) (*DeleteAccountBookOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book id", err)
	}

	if err := h.AccountBookService.Delete(ctx, id); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete account book", err)
	}

	return &DeleteAccountBookOutput{Status: http.StatusNoContent}, nil
}
