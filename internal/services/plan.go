package services

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/pkg/logger"
)

type planPSStore interface {
	List(ctx context.Context) ([]models.Plan, error)
	Create(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, id string) (*models.Plan, error)
}

type logoPSStore interface {
	Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, logoURL string) error
}

type planService struct {
	plans planPSStore
	logos logoPSStore
}

func NewPlanService(plans planPSStore, logos logoPSStore) *planService {
	return &planService{
		plans: plans,
		logos: logos,
	}
}

func (s *planService) ListPlans(ctx context.Context) ([]models.Plan, error) {
	return s.plans.List(ctx)
}

// CreatePlan validates the form fields, uploads the logo when one was
// attached, and persists the plan under a fresh uuid.
func (s *planService) CreatePlan(ctx context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename, logoContentType string) (*models.Plan, error) {
	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	if req.Description == "" {
		return nil, errs.NewValidationError("description is required")
	}
	if req.Price <= 0 {
		return nil, errs.NewValidationError("price must be positive")
	}
	if req.Duration < 0 {
		return nil, errs.NewValidationError("duration must not be negative")
	}
	if req.ReturnPercentage < 0 {
		return nil, errs.NewValidationError("returnPercentage must not be negative")
	}
	if !models.ValidPlanType(req.Type) {
		return nil, errs.NewValidationError("type must be RUNNING, UPCOMING or EXPIRED")
	}

	plan := &models.Plan{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Duration:         req.Duration,
		Type:             req.Type,
		ReturnPercentage: req.ReturnPercentage,
	}

	if logo != nil {
		objectName := "plans/" + plan.ID + path.Ext(logoFilename)
		url, err := s.logos.Upload(ctx, objectName, logoContentType, logo)
		if err != nil {
			return nil, err
		}
		plan.LogoURL = url
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("plan created", "plan_id", plan.ID, "name", plan.Name)
	return plan, nil
}

func (s *planService) DeletePlan(ctx context.Context, id string) error {
	if id == "" {
		return errs.NewValidationError("plan id is required")
	}
	plan, err := s.plans.Delete(ctx, id)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	if plan.LogoURL != "" {
		// best effort; the plan itself is already gone
		if err := s.logos.Delete(ctx, plan.LogoURL); err != nil {
			log.Warn("failed to delete plan logo", "plan_id", id, "error", err)
		}
	}

	log.Info("plan deleted", "plan_id", id)
	return nil
}
