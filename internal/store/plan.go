package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type planStore struct {
	client *firestore.Client
}

func NewPlanStore(client *firestore.Client) *planStore {
	return &planStore{client: client}
}

func (s *planStore) collection() *firestore.CollectionRef {
	return s.client.Collection("plans")
}

func (s *planStore) List(ctx context.Context) ([]models.Plan, error) {
	docs, err := s.collection().Query.OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list plans", err)
	}

	plans := make([]models.Plan, 0, len(docs))
	for _, doc := range docs {
		var p models.Plan
		if err := doc.DataTo(&p); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse plan data", err)
		}
		p.ID = doc.Ref.ID
		plans = append(plans, p)
	}
	return plans, nil
}

func (s *planStore) Create(ctx context.Context, plan *models.Plan) error {
	now := time.Now()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	_, err := s.collection().Doc(plan.ID).Create(ctx, plan)
	if status.Code(err) == codes.AlreadyExists {
		return errs.NewAlreadyExistsError(fmt.Sprintf("plan %s already exists", plan.ID))
	}
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create plan", err)
	}
	return nil
}

// Delete removes the plan and returns what was stored, so the caller
// can clean up the logo object.
func (s *planStore) Delete(ctx context.Context, id string) (*models.Plan, error) {
	ref := s.collection().Doc(id)

	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError(fmt.Sprintf("plan %s not found", id))
		}
		return nil, errs.NewDatabaseError("read", "failed to read plan", err)
	}

	var p models.Plan
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse plan data", err)
	}
	p.ID = doc.Ref.ID

	if _, err := ref.Delete(ctx); err != nil {
		return nil, errs.NewDatabaseError("delete", "failed to delete plan", err)
	}
	return &p, nil
}
