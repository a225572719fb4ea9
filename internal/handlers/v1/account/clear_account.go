package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// ClearAccountBody is the request body for clearing account data.
type ClearAccountBody struct {
	Scope string `json:"scope" enum:"month,previous-month,all" doc:"Which transactions to delete"`
	Month string `json:"month,omitempty" doc:"Month key YYYY-MM, required when scope is month"`
}

// ClearAccountInput is the Huma input for clearing account data.
type ClearAccountInput struct {
	ID   string `path:"id" format:"uuid" doc:"Account UUID"`
	Body ClearAccountBody
}

// ClearAccountOutput is the Huma output for clearing account data.
type ClearAccountOutput struct {
	Status int
}

// accountClearer is the interface for clearing account transactions.
type accountClearer interface {
	ClearMonth(ctx context.Context, id uuid.UUID, month string) error
	ClearPreviousMonth(ctx context.Context, id uuid.UUID) error
	ClearAll(ctx context.Context, id uuid.UUID) error
}

// ClearAccountHandler handles POST /v1/account/{id}/clear.
type ClearAccountHandler struct {
	AccountService accountClearer
}

// NewClearAccountHandler creates a new ClearAccountHandler.
func NewClearAccountHandler(svc accountClearer) *ClearAccountHandler {
	return &ClearAccountHandler{AccountService: svc}
}

// Register registers the clear account endpoint with the Huma API.
func (h *ClearAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "clear-account",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/clear",
		Summary:     "Clear account transactions",
		Description: "Deletes the selected window of an account's transactions and recomputes its aggregates.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ClearAccountHandler) handle(ctx context.Context, input *ClearAccountInput) (*ClearAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
	}

	switch input.Body.Scope {
	case "month":
		if input.Body.Month == "" {
			return nil, huma.NewError(http.StatusBadRequest, "month is required when scope is month")
		}
		err = h.AccountService.ClearMonth(ctx, id, input.Body.Month)
	case "previous-month":
		err = h.AccountService.ClearPreviousMonth(ctx, id)
	case "all":
		err = h.AccountService.ClearAll(ctx, id)
	default:
		return nil, huma.NewError(http.StatusBadRequest, "unknown scope")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to clear account transactions", err)
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
		logData.AddData("clearScope", input.Body.Scope)
	}

	return &ClearAccountOutput{Status: http.StatusNoContent}, nil
}
