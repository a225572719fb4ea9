package importqif

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/accountbook-server/internal/service"
)

// mockImportService is a mock for qifImporter.
type mockImportService struct {
	mock.Mock
}

func (m *mockImportService) ImportQIF(ctx context.Context, r io.Reader, accountID, accountBookID uuid.UUID) (*service.ImportResult, error) {
	args := m.Called(ctx, r, accountID, accountBookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

func newTestAPI(t *testing.T, svc qifImporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewImportQIFHandler(svc).Register(api)
	return api
}

const sampleQIF = "!Type:Bank\nD13/01/2024\nT-42.00\nPGROCERY STORE\n^\n"

func TestHTTP_ImportQIF_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	bookID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockImportService)
	mockSvc.On("ImportQIF", mock.Anything, mock.Anything, accountID, bookID).
		Return(&service.ImportResult{Parsed: 1, Saved: 1}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/import/qif", ImportQIFBody{
		AccountID:     accountID.String(),
		AccountBookID: bookID.String(),
		Content:       sampleQIF,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body ImportQIFResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1, body.Parsed)
	assert.Equal(t, 1, body.Saved)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportQIF_NoTransactions(t *testing.T) {
	mockSvc := new(mockImportService)
	mockSvc.On("ImportQIF", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, service.ErrNoTransactions)

	resp := newTestAPI(t, mockSvc).Post("/v1/import/qif", ImportQIFBody{
		AccountID:     uuid.Must(uuid.NewV4()).String(),
		AccountBookID: uuid.Must(uuid.NewV4()).String(),
		Content:       "!Type:Bank\n",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ImportQIF_InvalidAccountID(t *testing.T) {
	mockSvc := new(mockImportService)

	// Huma's format:"uuid" schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/v1/import/qif", ImportQIFBody{
		AccountID:     "not-a-uuid",
		AccountBookID: uuid.Must(uuid.NewV4()).String(),
		Content:       sampleQIF,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ImportQIF")
}

func TestHTTP_ImportQIF_ServiceError(t *testing.T) {
	mockSvc := new(mockImportService)
	mockSvc.On("ImportQIF", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	resp := newTestAPI(t, mockSvc).Post("/v1/import/qif", ImportQIFBody{
		AccountID:     uuid.Must(uuid.NewV4()).String(),
		AccountBookID: uuid.Must(uuid.NewV4()).String(),
		Content:       sampleQIF,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
