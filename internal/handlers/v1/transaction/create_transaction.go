package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storagetransaction "github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	TransactionDate string `json:"transactionDate" doc:"Transaction date, YYYY-MM-DD"`
	Description     string `json:"description" minLength:"1" doc:"Payee or memo text"`
	Category        string `json:"category,omitempty" doc:"Category, defaults to Uncategorized"`
	SubCategory     string `json:"subCategory,omitempty" doc:"Sub-category"`
	DebitAmount     string `json:"debitAmount,omitempty" doc:"Debit amount, decimal string"`
	CreditAmount    string `json:"creditAmount,omitempty" doc:"Credit amount, decimal string"`
	AccountID       string `json:"accountID" format:"uuid" doc:"Owning account UUID"`
	AccountBookID   string `json:"accountBookID" format:"uuid" doc:"Owning account book UUID"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, create storagetransaction.TransactionCreate) error
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a manually entered transaction and recomputes the account's aggregates. Exactly one of debitAmount and creditAmount may be non-zero.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	date, err := parseTransactionDate(input.Body.TransactionDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction date", err)
	}
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
	}
	bookID, err := uuid.FromString(input.Body.AccountBookID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
	}

	debit := decimal.Zero
	if input.Body.DebitAmount != "" {
		if debit, err = decimal.NewFromString(input.Body.DebitAmount); err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid debit amount", err)
		}
	}
	credit := decimal.Zero
	if input.Body.CreditAmount != "" {
		if credit, err = decimal.NewFromString(input.Body.CreditAmount); err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid credit amount", err)
		}
	}

	category := input.Body.Category
	if category == "" {
		category = "Uncategorized"
	}

	err = h.TransactionService.Create(ctx, storagetransaction.TransactionCreate{
		TransactionDate: date,
		Description:     input.Body.Description,
		Category:        category,
		SubCategory:     input.Body.SubCategory,
		DebitAmount:     debit,
		CreditAmount:    credit,
		AccountID:       accountID,
		AccountBookID:   bookID,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusUnprocessableEntity, "failed to create transaction", err)
	}

	if logData != nil {
		logData.AddData("accountID", accountID.String())
	}

	return &CreateTransactionOutput{Status: http.StatusCreated}, nil
}
