package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Status int
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{id}",
		Summary:     "Delete account",
		Description: "Deletes an account and all of its transactions.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
	}

	if err := h.AccountService.Delete(ctx, id); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete account", err)
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	return &DeleteAccountOutput{Status: http.StatusNoContent}, nil
}
