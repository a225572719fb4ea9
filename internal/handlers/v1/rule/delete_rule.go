package rule

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// DeleteRuleInput is the Huma input for deleting a category rule.
type DeleteRuleInput struct {
	ID string `path:"id" format:"uuid" doc:"Rule UUID"`
}

// DeleteRuleOutput is the Huma output for deleting a category rule.
type DeleteRuleOutput struct {
	Status int
}

// ruleDeleter is the interface for deleting category rules.
type ruleDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteRuleHandler handles DELETE /v1/rule/{id}.
type DeleteRuleHandler struct {
	RuleService ruleDeleter
}

// NewDeleteRuleHandler creates a new DeleteRuleHandler.
func NewDeleteRuleHandler(svc ruleDeleter) *DeleteRuleHandler {
	return &DeleteRuleHandler{RuleService: svc}
}

// Register registers the delete rule endpoint with the Huma API.
func (h *DeleteRuleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-rule",
		Method:      http.MethodDelete,
		Path:        "/v1/rule/{id}",
		Summary:     "Delete category rule",
		Tags:        []string{"Rules"},
	}, h.handle)
}

func (h *DeleteRuleHandler) handle(ctx context.Context, input *DeleteRuleInput) (*DeleteRuleOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid rule ID", err)
	}

	if err := h.RuleService.Delete(ctx, id); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete rule", err)
	}

	if logData != nil {
		logData.AddData("ruleID", id.String())
	}

	return &DeleteRuleOutput{Status: http.StatusNoContent}, nil
}
