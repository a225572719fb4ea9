package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storagetransaction "github.com/carson-networks/accountbook-server/internal/storage/transaction"
)

// ListTransactionsInput is the Huma input for listing transactions. Exactly
// one of accountID and accountBookID must be set; month is required when
// filtering by account.
type ListTransactionsInput struct {
	AccountID     string `query:"accountID" doc:"Account UUID to list transactions for"`
	AccountBookID string `query:"accountBookID" doc:"Account book UUID to list transactions for"`
	Month         string `query:"month" doc:"Month key YYYY-MM, required with accountID"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions ordered by date ascending"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListByAccountMonth(ctx context.Context, accountID uuid.UUID, month string) ([]*storagetransaction.Transaction, error)
	ListByBook(ctx context.Context, accountBookID uuid.UUID) ([]*storagetransaction.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Lists transactions by account (optionally within one month) or by account book.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var (
		rows []*storagetransaction.Transaction
		err  error
	)
	switch {
	case input.AccountID != "":
		var accountID uuid.UUID
		accountID, err = uuid.FromString(input.AccountID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid account ID", err)
		}
		if input.Month == "" {
			return nil, huma.NewError(http.StatusBadRequest, "month is required when listing by account")
		}
		rows, err = h.TransactionService.ListByAccountMonth(ctx, accountID, input.Month)
	case input.AccountBookID != "":
		var bookID uuid.UUID
		bookID, err = uuid.FromString(input.AccountBookID)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid account book ID", err)
		}
		rows, err = h.TransactionService.ListByBook(ctx, bookID)
	default:
		return nil, huma.NewError(http.StatusBadRequest, "accountID or accountBookID is required")
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rows))
	}

	resp := ListTransactionsResponseBody{Transactions: make([]Transaction, len(rows))}
	for i, row := range rows {
		resp.Transactions[i] = fromStorage(row)
	}
	return &ListTransactionsOutput{Body: resp}, nil
}
