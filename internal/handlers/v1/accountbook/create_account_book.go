package accountbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// CreateAccountBookBody is the request body for creating an account book.
type CreateAccountBookBody struct {
	Name string `json:"name" minLength:"1" doc:"Account book name"`
}

// CreateAccountBookInput is the Huma input for creating an account book.
type CreateAccountBookInput struct {
	Body CreateAccountBookBody
}

// CreateAccountBookResponse is the response body for creating an account book.
type CreateAccountBookResponse struct {
	ID string `json:"id" doc:"Created account book UUID"`
}

// CreateAccountBookOutput is the Huma output for creating an account book.
type CreateAccountBookOutput struct {
	Status int
	Body   CreateAccountBookResponse
}

// accountBookCreator is the interface for creating account books.
type accountBookCreator interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
}

// CreateAccountBookHandler handles POST /v1/account-book.
type CreateAccountBookHandler struct {
	AccountBookService accountBookCreator
}

// NewCreateAccountBookHandler creates a new CreateAccountBookHandler.
func NewCreateAccountBookHandler(svc accountBookCreator) *CreateAccountBookHandler {
	return &CreateAccountBookHandler{AccountBookService: svc}
}

// Register registers the create account book endpoint with the Huma API.
func (h *CreateAccountBookHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account-book",
		Method:      http.MethodPost,
		Path:        "/v1/account-book",
		Summary:     "Create account book",
		Description: "Creates a new account book.",
		Tags:        []string{"AccountBooks"},
	}, h.handle)
}

func (h *CreateAccountBookHandler) handle(ctx context.Context, input *CreateAccountBookInput) (*CreateAccountBookOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := h.AccountBookService.Create(ctx, input.Body.Name)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create account book", err)
	}

	if logData != nil {
		logData.AddData("accountBookID", id.String())
	}

	return &CreateAccountBookOutput{
		Status: http.StatusCreated,
		Body:   CreateAccountBookResponse{ID: id.String()},
	}, nil
}
