package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/models"
)

type stubApprovalService struct {
	records []dto.TransactionRecord
	listErr error

	updates   []dto.UpdateTransactionStatusRequest
	updateErr error
}

func (s *stubApprovalService) ListTransactions(_ context.Context) ([]dto.TransactionRecord, error) {
	return s.records, s.listErr
}

func (s *stubApprovalService) UpdateStatus(_ context.Context, req dto.UpdateTransactionStatusRequest) error {
	s.updates = append(s.updates, req)
	return s.updateErr
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorCode   string
	writeErrorMsg    string
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, message string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorCode = code
	s.writeErrorMsg = message
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func TestListTransactionsHandler(t *testing.T) {
	svc := &stubApprovalService{records: []dto.TransactionRecord{
		{ID: "doc-1", TransactionID: "tx-1", Status: models.TransactionPending},
	}}
	resp := &stubResponseHandler{}

	h := NewTransactionHandlers(&Deps{
		ResponseHandler: resp,
		ApprovalSvc:     svc,
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions/all", nil)
	rr := httptest.NewRecorder()
	h.ListTransactions(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	records, ok := resp.writeSuccessData.([]dto.TransactionRecord)
	if !ok || len(records) != 1 {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}

func TestListTransactionsHandlerServiceError(t *testing.T) {
	svc := &stubApprovalService{listErr: errors.New("service failure")}
	resp := &stubResponseHandler{}

	h := NewTransactionHandlers(&Deps{
		ResponseHandler: resp,
		ApprovalSvc:     svc,
	})

	rr := httptest.NewRecorder()
	h.ListTransactions(rr, httptest.NewRequest(http.MethodGet, "/transactions/all", nil))

	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called on service failure")
	}
	if resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess must not be called on failure")
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	svc := &stubApprovalService{}
	resp := &stubResponseHandler{}

	h := NewTransactionHandlers(&Deps{
		ResponseHandler: resp,
		ApprovalSvc:     svc,
	})

	body := `{"transactionId":"tx-1","status":"DENIED","reason":"duplicate deposit"}`
	req := httptest.NewRequest(http.MethodPatch, "/transactions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, req)

	if len(svc.updates) != 1 {
		t.Fatalf("UpdateStatus called %d times, want 1", len(svc.updates))
	}
	up := svc.updates[0]
	if up.TransactionID != "tx-1" || up.Status != models.TransactionDenied || up.Reason != "duplicate deposit" {
		t.Fatalf("service received wrong request: %+v", up)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestUpdateStatusHandlerInvalidJSON(t *testing.T) {
	svc := &stubApprovalService{}
	resp := &stubResponseHandler{}

	h := NewTransactionHandlers(&Deps{
		ResponseHandler: resp,
		ApprovalSvc:     svc,
	})

	req := httptest.NewRequest(http.MethodPatch, "/transactions", strings.NewReader("not-json"))
	rr := httptest.NewRecorder()
	h.UpdateStatus(rr, req)

	if len(svc.updates) != 0 {
		t.Fatalf("service must not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called on invalid JSON")
	}
}
