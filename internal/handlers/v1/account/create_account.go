package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/accountbook-server/internal/logging"
	"github.com/carson-networks/accountbook-server/internal/service"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name          string `json:"name" minLength:"1" doc:"Account name"`
	AccountBookID string `json:"accountBookID" format:"uuid" doc:"Owning account book UUID"`
	Balance       string `json:"balance,omitempty" doc:"Opening current-month balance, decimal string"`
	Debits        string `json:"debits,omitempty" doc:"Opening current-month debits, decimal string"`
	Credits       string `json:"credits,omitempty" doc:"Opening current-month credits, decimal string"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Created account UUID"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	Create(ctx context.Context, create service.AccountCreate) (uuid.UUID, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create account",
		Description: "Creates an account inside an account book. Opening totals seed the current month of the balance series.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.Body.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	balance, err := parseOptionalDecimal(input.Body.Balance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}
	debits, err := parseOptionalDecimal(input.Body.Debits)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid debits", err)
	}
	credits, err := parseOptionalDecimal(input.Body.Credits)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid credits", err)
	}

	id, err := h.AccountService.Create(ctx, service.AccountCreate{
		Name:          input.Body.Name,
		AccountBookID: bookID,
		Balance:       balance,
		Debits:        debits,
		Credits:       credits,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account", err)
	}

	if logData != nil {
		logData.AddData("accountID", id.String())
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountResponse{ID: id.String()},
	}, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
