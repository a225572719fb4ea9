package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// UpdateCategoryBody is the request body for bulk category reassignment.
type UpdateCategoryBody struct {
	TransactionIDs []string `json:"transactionIDs" minItems:"1" doc:"Transactions to reassign"`
	Category       string   `json:"category" minLength:"1" doc:"New category"`
	SubCategory    string   `json:"subCategory,omitempty" doc:"New sub-category"`
}

// UpdateCategoryInput is the Huma input for bulk category reassignment.
type UpdateCategoryInput struct {
	Body UpdateCategoryBody
}

// UpdateCategoryResponse is the response body for bulk category reassignment.
type UpdateCategoryResponse struct {
	Updated int `json:"updated" doc:"Number of transactions updated"`
}

// UpdateCategoryOutput is the Huma output for bulk category reassignment.
type UpdateCategoryOutput struct {
	Body UpdateCategoryResponse
}

// categoryUpdater is the interface for bulk category reassignment.
type categoryUpdater interface {
	UpdateCategories(ctx context.Context, ids []uuid.UUID, category, subCategory string) (int, error)
}

// UpdateCategoryHandler handles PATCH /v1/transaction/category.
type UpdateCategoryHandler struct {
	TransactionService categoryUpdater
}

// NewUpdateCategoryHandler creates a new UpdateCategoryHandler.
func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{TransactionService: svc}
}

// Register registers the update category endpoint with the Huma API.
func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction-category",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/category",
		Summary:     "Reassign transaction categories",
		Description: "Sets the category of each listed transaction. Amounts are untouched, so account aggregates do not change.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	ids := make([]uuid.UUID, len(input.Body.TransactionIDs))
	for i, raw := range input.Body.TransactionIDs {
		id, err := uuid.FromString(raw)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid transaction ID", err)
		}
		ids[i] = id
	}

	updated, err := h.TransactionService.UpdateCategories(ctx, ids, input.Body.Category, input.Body.SubCategory)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction categories", err)
	}

	if logData != nil {
		logData.AddData("updatedCount", updated)
	}

	return &UpdateCategoryOutput{Body: UpdateCategoryResponse{Updated: updated}}, nil
}
