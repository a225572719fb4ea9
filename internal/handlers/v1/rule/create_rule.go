package rule

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storagerule "github.com/carson-networks/accountbook-server/internal/storage/categoryrule"
)

// CreateRuleBody is the request body for creating a category rule.
type CreateRuleBody struct {
	AccountBookID string `json:"accountBookID" format:"uuid" doc:"Owning account book UUID"`
	Keyword       string `json:"keyword" minLength:"1" doc:"Case-insensitive keyword matched against descriptions"`
	Category      string `json:"category" minLength:"1" doc:"Category assigned on match"`
	SubCategory   string `json:"subCategory,omitempty" doc:"Sub-category assigned on match"`
}

// CreateRuleInput is the Huma input for creating a category rule.
type CreateRuleInput struct {
	Body CreateRuleBody
}

// CreateRuleResponse is the response body for creating a category rule.
type CreateRuleResponse struct {
	ID string `json:"id" doc:"Created rule UUID"`
}

// CreateRuleOutput is the Huma output for creating a category rule.
type CreateRuleOutput struct {
	Status int
	Body   CreateRuleResponse
}

// ruleCreator is the interface for creating category rules.
type ruleCreator interface {
	Create(ctx context.Context, create storagerule.RuleCreate) (uuid.UUID, error)
}

// CreateRuleHandler handles POST /v1/rule.
type CreateRuleHandler struct {
	RuleService ruleCreator
}

// NewCreateRuleHandler creates a new CreateRuleHandler.
func NewCreateRuleHandler(svc ruleCreator) *CreateRuleHandler {
	return &CreateRuleHandler{RuleService: svc}
}

// Register registers the create rule endpoint with the Huma API.
func (h *CreateRuleHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-rule",
		Method:      http.MethodPost,
		Path:        "/v1/rule",
		Summary:     "Create category rule",
		Description: "Creates a keyword rule. Rules apply to uncategorized transactions in creation order, first match wins.",
		Tags:        []string{"Rules"},
	}, h.handle)
}

func (h *CreateRuleHandler) handle(ctx context.Context, input *CreateRuleInput) (*CreateRuleOutput, error) {
	logData := logging.GetLogData(ctx)

	bookID, err := uuid.FromString(input.Body.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	id, err := h.RuleService.Create(ctx, storagerule.RuleCreate{
		AccountBookID: bookID,
		Keyword:       input.Body.Keyword,
		Category:      input.Body.Category,
		SubCategory:   input.Body.SubCategory,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create rule", err)
	}

	if logData != nil {
		logData.AddData("ruleID", id.String())
	}

	return &CreateRuleOutput{
		Status: http.StatusCreated,
		Body:   CreateRuleResponse{ID: id.String()},
	}, nil
}
