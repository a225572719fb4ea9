package rule

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
)

// ApplyRulesBody is the request body for applying rules to a book.
type ApplyRulesBody struct {
	AccountBookID string `json:"accountBookID" format:"uuid" doc:"Account book UUID"`
}

// ApplyRulesInput is the Huma input for applying rules.
type ApplyRulesInput struct {
	Body ApplyRulesBody
}

// ApplyRulesResponse is the response body for applying rules.
type ApplyRulesResponse struct {
	Updated int `json:"updated" doc:"Number of transactions categorized"`
}

// ApplyRulesOutput is the Huma output for applying rules.
type ApplyRulesOutput struct {
	Body ApplyRulesResponse
}

// ruleApplier is the interface for applying rules to uncategorized transactions.
type ruleApplier interface {
	ApplyToUncategorized(ctx context.Context, accountBookID uuid.UUID) (int, error)
}

// ApplyRulesHandler handles POST /v1/rule/apply.
type ApplyRulesHandler struct {
	RuleService ruleApplier
}

// NewApplyRulesHandler creates a new ApplyRulesHandler.
func NewApplyRulesHandler(svc ruleApplier) *ApplyRulesHandler {
	return &ApplyRulesHandler{RuleService: svc}
}

// Register registers the apply rules endpoint with the Huma API.
func (h *ApplyRulesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "apply-rules",
		Method:      http.MethodPost,
		Path:        "/v1/rule/apply",
		Summary:     "Apply rules to uncategorized transactions",
		Description: "Scans every transaction of the account book and categorizes those still uncategorized using the book's rules.",
		Tags:        []string{"Rules"},
	}, h.handle)
}

func (h *ApplyRulesHandler) handle(ctx context.Context, input *ApplyRulesInput) (*ApplyRulesOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.Body.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	updated, err := h.RuleService.ApplyToUncategorized(ctx, bookID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to apply rules", err)
	}

	if logData != nil {
		logData.AddData("updatedCount", updated)
	}

	return &ApplyRulesOutput{Body: ApplyRulesResponse{Updated: updated}}, nil
}
