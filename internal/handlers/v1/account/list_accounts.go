package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storageaccount "github.com/carson-networks/accountbook-server/internal/storage/account"
)

// ListAccountsInput is the Huma input for listing accounts of a book.
type ListAccountsInput struct {
	AccountBookID string `query:"accountBookID" format:"uuid" required:"true" doc:"Account book UUID to list accounts for"`
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts []Account `json:"accounts" doc:"Accounts of the account book"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*storageaccount.Account, error)
}

// ListAccountsHandler handles GET /v1/account.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/account",
		Summary:     "List accounts",
		Description: "Lists all accounts of an account book, including their historical balance series.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	rows, err := h.AccountService.ListByBook(ctx, bookID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list accounts", err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(rows))
	}

	resp := ListAccountsResponseBody{Accounts: make([]Account, len(rows))}
	for i, row := range rows {
		resp.Accounts[i] = fromStorage(row)
	}
	return &ListAccountsOutput{Body: resp}, nil
}
