package importqif

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
	"github.com/carson-networks/accountbook-server/internal/service"
)

// ImportQIFBody is the request body for importing a QIF file.
type ImportQIFBody struct {
	AccountID     string `json:"accountID" format:"uuid" doc:"Target account UUID"`
	AccountBookID string `json:"accountBookID" format:"uuid" doc:"Target account book UUID"`
	Content       string `json:"content" minLength:"1" doc:"Raw QIF file content"`
}

// ImportQIFInput is the Huma input for importing a QIF file.
type ImportQIFInput struct {
	Body ImportQIFBody
}

// ImportQIFResponse is the response body for importing a QIF file.
type ImportQIFResponse struct {
	Parsed int `json:"parsed" doc:"Transactions parsed from the file"`
	Saved  int `json:"saved" doc:"Transactions persisted"`
}

// ImportQIFOutput is the Huma output for importing a QIF file.
type ImportQIFOutput struct {
	Status int
	Body   ImportQIFResponse
}

// qifImporter is the interface for importing QIF content.
type qifImporter interface {
	ImportQIF(ctx context.Context, r io.Reader, accountID, accountBookID uuid.UUID) (*service.ImportResult, error)
}

// ImportQIFHandler handles POST /v1/import/qif.
type ImportQIFHandler struct {
	ImportService qifImporter
}

// NewImportQIFHandler creates a new ImportQIFHandler.
func NewImportQIFHandler(svc qifImporter) *ImportQIFHandler {
	return &ImportQIFHandler{ImportService: svc}
}

// Register registers the QIF import endpoint with the Huma API.
func (h *ImportQIFHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "import-qif",
		Method:      http.MethodPost,
		Path:        "/v1/import/qif",
		Summary:     "Import QIF file",
		Description: "Parses QIF content, categorizes transactions using the book's rules, persists them into the target account and recomputes its aggregates.",
		Tags:        []string{"Import"},
	}, h.handle)
}

func (h *ImportQIFHandler) handle(ctx context.Context, input *ImportQIFInput) (*ImportQIFOutput, error) {
	logData := logging.GetLogData(ctx)

	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
	}
	bookID, err := uuid.FromString(input.Body.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	result, err := h.ImportService.ImportQIF(ctx, strings.NewReader(input.Body.Content), accountID, bookID)
	if err != nil {
		if errors.Is(err, service.ErrNoTransactions) {
			return nil, huma.NewError(http.StatusUnprocessableEntity, "no transactions found in file", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}

	if logData != nil {
		logData.AddData("parsedCount", result.Parsed)
		logData.AddData("savedCount", result.Saved)
	}

	return &ImportQIFOutput{
		Status: http.StatusCreated,
		Body:   ImportQIFResponse{Parsed: result.Parsed, Saved: result.Saved},
	}, nil
}
