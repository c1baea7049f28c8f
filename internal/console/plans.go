package console

import (
	"context"
	"io"
	"sync"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/models"
)

type planAPI interface {
	ListPlans(ctx context.Context) ([]models.Plan, error)
	CreatePlan(ctx context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename string) error
	DeletePlan(ctx context.Context, id string) error
}

// PlanRegistry is the thin client over subscription plans. Mutations are
// followed by a refetch rather than a local patch.
type PlanRegistry struct {
	api planAPI

	mu    sync.RWMutex
	plans []models.Plan
}

func NewPlanRegistry(api planAPI) *PlanRegistry {
	return &PlanRegistry{api: api}
}

func (r *PlanRegistry) Refresh(ctx context.Context) error {
	plans, err := r.api.ListPlans(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.plans = plans
	r.mu.Unlock()
	return nil
}

func (r *PlanRegistry) Plans() []models.Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Plan, len(r.plans))
	copy(out, r.plans)
	return out
}

func (r *PlanRegistry) Create(ctx context.Context, req dto.CreatePlanRequest, logo io.Reader, logoFilename string) error {
	if err := r.api.CreatePlan(ctx, req, logo, logoFilename); err != nil {
		return err
	}
	return r.Refresh(ctx)
}

func (r *PlanRegistry) Delete(ctx context.Context, id string) error {
	if err := r.api.DeletePlan(ctx, id); err != nil {
		return err
	}
	return r.Refresh(ctx)
}
