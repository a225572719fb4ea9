package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// ListCategoriesInput is the Huma input for listing distinct categories.
type ListCategoriesInput struct {
	AccountBookID string `query:"accountBookID" format:"uuid" required:"true" doc:"Account book UUID"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []string `json:"categories" doc:"Distinct categories in use, sorted"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// categoryLister is the interface for listing distinct categories.
type categoryLister interface {
	DistinctCategories(ctx context.Context, accountBookID uuid.UUID) ([]string, error)
}

// ListCategoriesHandler handles GET /v1/transaction/categories.
type ListCategoriesHandler struct {
	TransactionService categoryLister
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{TransactionService: svc}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transaction-categories",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/categories",
		Summary:     "List categories in use",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	categories, err := h.TransactionService.DistinctCategories(ctx, bookID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}

	if logData != nil {
		logData.AddData("categoryCount", len(categories))
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponseBody{Categories: categories}}, nil
}
