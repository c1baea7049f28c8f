package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/response"
)

type approvalService interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error)
	UpdateStatus(ctx context.Context, req dto.UpdateTransactionStatusRequest) error
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	ApprovalSvc     approvalService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		ApprovalSvc:     deps.ApprovalSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/all", h.ListTransactions)
	r.Patch("/", h.UpdateStatus)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.ApprovalSvc.ListTransactions(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, records)
}

func (h *transactionHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTransactionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if err := h.ApprovalSvc.UpdateStatus(r.Context(), req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
