package rule

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storagerule "github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
)

// ListRulesInput is the Huma input for listing category rules.
type ListRulesInput struct {
	AccountBookID string `query:"accountBookID" format:"uuid" required:"true" doc:"Account book UUID"`
}

// ListRulesResponseBody is the response body for listing category rules.
type ListRulesResponseBody struct {
	Rules []Rule `json:"rules" doc:"Rules in creation order"`
}

// ListRulesOutput is the Huma output for listing category rules.
type ListRulesOutput struct {
	Body ListRulesResponseBody
}

// ruleLister is the interface for listing category rules.
type ruleLister interface {
	List(ctx context.Context, accountBookID uuid.UUID) ([]*storagerule.CategoryRule, error)
}

// ListRulesHandler handles GET /v1/rule.
type ListRulesHandler struct {
	RuleService ruleLister
}

// NewListRulesHandler creates a new ListRulesHandler.
func NewListRulesHandler(svc ruleLister) *ListRulesHandler {
	return &ListRulesHandler{RuleService: svc}
}

// Register registers the list rules endpoint with the Huma API.
func (h *ListRulesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/v1/rule",
		Summary:     "List category rules",
		Tags:        []string{"Rules"},
	}, h.handle)
}

func (h *ListRulesHandler) handle(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	rows, err := h.RuleService.List(ctx, bookID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list rules", err)
	}

	if logData != nil {
		logData.AddData("ruleCount", len(rows))
	}

	resp := ListRulesResponseBody{Rules: make([]Rule, len(rows))}
	for i, row := range rows {
		resp.Rules[i] = fromStorage(row)
	}
	return &ListRulesOutput{Body: resp}, nil
}
