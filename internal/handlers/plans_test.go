package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type stubPlanService struct {
	plans   []models.Plan
	listErr error

	createReq  *dto.CreatePlanRequest
	createLogo string
	createName string
	created    *models.Plan
	createErr  error

	deleted []string
}

func (s *stubPlanService) ListPlans(_ context.Context) ([]models.Plan, error) {
	return s.plans, s.listErr
}

func (s *stubPlanService) CreatePlan(_ context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename, _ string) (*models.Plan, error) {
	s.createReq = &req
	s.createName = logoFilename
	if logo != nil {
		b, _ := io.ReadAll(logo)
		s.createLogo = string(b)
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = &models.Plan{ID: "plan-new", Name: req.Name}
	return s.created, nil
}

func (s *stubPlanService) DeletePlan(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func multipartPlanRequest(t *testing.T, fields map[string]string, logo string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if logo != "" {
		part, err := mw.CreateFormFile("logo", "logo.png")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		part.Write([]byte(logo))
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/plans", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validPlanFields() map[string]string {
	return map[string]string{
		"name":             "Gold",
		"description":      "90 day plan",
		"price":            "5000",
		"duration":         "90",
		"type":             "RUNNING",
		"returnPercentage": "12.5",
	}
}

func TestCreatePlanHandler(t *testing.T) {
	svc := &stubPlanService{}
	resp := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{ResponseHandler: resp, PlanSvc: svc})

	rr := httptest.NewRecorder()
	h.CreatePlan(rr, multipartPlanRequest(t, validPlanFields(), "PNG!"))

	if svc.createReq == nil {
		t.Fatalf("CreatePlan not called on service")
	}
	got := *svc.createReq
	if got.Name != "Gold" || got.Price != 5000 || got.Duration != 90 ||
		got.Type != models.PlanRunning || got.ReturnPercentage != 12.5 {
		t.Fatalf("service received wrong request: %+v", got)
	}
	if svc.createLogo != "PNG!" || svc.createName != "logo.png" {
		t.Fatalf("logo not forwarded: %q %q", svc.createLogo, svc.createName)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("WriteSuccess not called with status 201")
	}
}

func TestCreatePlanHandlerWithoutLogo(t *testing.T) {
	svc := &stubPlanService{}
	resp := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{ResponseHandler: resp, PlanSvc: svc})

	rr := httptest.NewRecorder()
	h.CreatePlan(rr, multipartPlanRequest(t, validPlanFields(), ""))

	if svc.createReq == nil {
		t.Fatalf("CreatePlan not called on service")
	}
	if svc.createLogo != "" {
		t.Fatalf("no logo expected, got %q", svc.createLogo)
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess not called")
	}
}

func TestCreatePlanHandlerBadNumber(t *testing.T) {
	svc := &stubPlanService{}
	resp := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{ResponseHandler: resp, PlanSvc: svc})

	fields := validPlanFields()
	fields["price"] = "not-a-number"

	rr := httptest.NewRecorder()
	h.CreatePlan(rr, multipartPlanRequest(t, fields, ""))

	if svc.createReq != nil {
		t.Fatalf("service must not be called on invalid form")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %T", resp.handleError)
	}
}

func TestListPlansHandler(t *testing.T) {
	svc := &stubPlanService{plans: []models.Plan{{ID: "plan-1", Name: "Silver"}}}
	resp := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{ResponseHandler: resp, PlanSvc: svc})

	rr := httptest.NewRecorder()
	h.ListPlans(rr, httptest.NewRequest(http.MethodGet, "/plans", nil))

	payload, ok := resp.writeSuccessData.(dto.PlanList)
	if !ok || len(payload.Plans) != 1 {
		t.Fatalf("unexpected payload: %+v", resp.writeSuccessData)
	}
}

func TestDeletePlanHandler(t *testing.T) {
	svc := &stubPlanService{}
	resp := &stubResponseHandler{}
	h := NewPlanHandlers(&Deps{ResponseHandler: resp, PlanSvc: svc})

	req := httptest.NewRequest(http.MethodDelete, "/plans/plan-1", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("planId", "plan-1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	h.DeletePlan(rr, req)

	if len(svc.deleted) != 1 || svc.deleted[0] != "plan-1" {
		t.Fatalf("service received wrong id: %v", svc.deleted)
	}
	if !resp.writeSuccessCalled {
		t.Fatalf("WriteSuccess not called")
	}
}
