package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/response"
)

type walletService interface {
	ListDenominations(ctx context.Context) ([]dto.DenominationRecord, error)
	UpdateDenomination(ctx context.Context, req dto.UpdateDenominationRequest) error
	BatchUpdateDenominations(ctx context.Context, req dto.BatchUpdateDenominationsRequest) error
	Upi(ctx context.Context) (string, error)
	SetUpi(ctx context.Context, upiID string) error
}

type walletHandlers struct {
	ResponseHandler response.ResponseHandler
	WalletSvc       walletService
}

func NewWalletHandlers(deps *Deps) *walletHandlers {
	return &walletHandlers{
		ResponseHandler: deps.ResponseHandler,
		WalletSvc:       deps.WalletSvc,
	}
}

func (h *walletHandlers) WalletRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/denominations", h.ListDenominations)
	r.Patch("/denominations", h.UpdateDenomination)
	r.Patch("/denominations/batch", h.BatchUpdateDenominations)
	r.Get("/upi", h.GetUpi)
	r.Post("/upi", h.SetUpi)
	return r
}

func (h *walletHandlers) ListDenominations(w http.ResponseWriter, r *http.Request) {
	records, err := h.WalletSvc.ListDenominations(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, records)
}

func (h *walletHandlers) UpdateDenomination(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDenominationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if err := h.WalletSvc.UpdateDenomination(r.Context(), req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *walletHandlers) BatchUpdateDenominations(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchUpdateDenominationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if err := h.WalletSvc.BatchUpdateDenominations(r.Context(), req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *walletHandlers) GetUpi(w http.ResponseWriter, r *http.Request) {
	upiID, err := h.WalletSvc.Upi(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.UpiResponse{UpiID: upiID})
}

func (h *walletHandlers) SetUpi(w http.ResponseWriter, r *http.Request) {
	var req dto.SetUpiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	if err := h.WalletSvc.SetUpi(r.Context(), req.UpiID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
