package accountbook

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/accountbook-server/internal/logging"
	storagebook "github.com/carson-networks/accountbook-server/internal/storage/accountbook"
)

// ListAccountBooksInput is the Huma input for listing account books.
type ListAccountBooksInput struct{}

// ListAccountBooksResponseBody is the response body for listing account books.
type ListAccountBooksResponseBody struct {
	AccountBooks []AccountBook `json:"accountBooks" doc:"All account books, most recently updated first"`
}

// ListAccountBooksOutput is the Huma output for listing account books.
type ListAccountBooksOutput struct {
	Body ListAccountBooksResponseBody
}

// accountBookLister is the interface for listing account books.
type accountBookLister interface {
	List(ctx context.Context) ([]*storagebook.AccountBook, error)
}

// ListAccountBooksHandler handles GET /v1/account-book.
type ListAccountBooksHandler struct {
	AccountBookService accountBookLister
}

// NewListAccountBooksHandler creates a new ListAccountBooksHandler.
func NewListAccountBooksHandler(svc accountBookLister) *ListAccountBooksHandler {
	return &ListAccountBooksHandler{AccountBookService: svc}
}

// Register registers the list account books endpoint with the Huma API.
func (h *ListAccountBooksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-books",
		Method:      http.MethodGet,
		Path:        "/v1/account-book",
		Summary:     "List account books",
		Tags:        []string{"AccountBooks"},
	}, h.handle)
}

func (h *ListAccountBooksHandler) handle(ctx context.Context, _ *ListAccountBooksInput) (*ListAccountBooksOutput, error) {
	logData := logging.GetLogData(ctx)

	rows, err := h.AccountBookService.List(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list account books", err)
	}

	if logData != nil {
		logData.AddData("accountBookCount", len(rows))
	}

	resp := ListAccountBooksResponseBody{AccountBooks: make([]AccountBook, len(rows))}
	for i, row := range rows {
		resp.AccountBooks[i] = fromStorage(row)
	}
	return &ListAccountBooksOutput{Body: resp}, nil
}
