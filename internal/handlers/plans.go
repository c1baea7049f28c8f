package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/internal/response"
)

const maxPlanFormSize = 10 << 20 // logo uploads included

type planService interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename, logoContentType string) (*models.Plan, error)
	DeletePlan(ctx context.Context, id string) error
}

type planHandlers struct {
	ResponseHandler response.ResponseHandler
	PlanSvc         planService
}

func NewPlanHandlers(deps *Deps) *planHandlers {
	return &planHandlers{
		ResponseHandler: deps.ResponseHandler,
		PlanSvc:         deps.PlanSvc,
	}
}

func (h *planHandlers) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanSvc.ListPlans(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.PlanList{Plans: plans})
}

func (h *planHandlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPlanFormSize); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid multipart form"))
		return
	}

	req := dto.CreatePlanRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Type:        models.PlanType(r.FormValue("type")),
	}

	var err error
	if req.Price, err = parseFormFloat(r, "price"); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if req.Duration, err = parseFormInt(r, "duration"); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	if req.ReturnPercentage, err = parseFormFloat(r, "returnPercentage"); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	var (
		logo        io.Reader
		filename    string
		contentType string
	)
	file, header, err := r.FormFile("logo")
	switch {
	case err == nil:
		defer file.Close()
		logo = file
		filename = header.Filename
		contentType = header.Header.Get("Content-Type")
	case errors.Is(err, http.ErrMissingFile):
		// logo is optional
	default:
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid logo upload"))
		return
	}

	plan, err := h.PlanSvc.CreatePlan(r.Context(), req, logo, filename, contentType)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, plan)
}

func (h *planHandlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "planId")

	if err := h.PlanSvc.DeletePlan(r.Context(), planID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func parseFormFloat(r *http.Request, field string) (float64, error) {
	v, err := strconv.ParseFloat(r.FormValue(field), 64)
	if err != nil {
		return 0, errs.NewValidationError(field + " must be a number")
	}
	return v, nil
}

func parseFormInt(r *http.Request, field string) (int, error) {
	v, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0, errs.NewValidationError(field + " must be an integer")
	}
	return v, nil
}
