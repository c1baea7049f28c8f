package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type denominationStore struct {
	client *firestore.Client
}

func NewDenominationStore(client *firestore.Client) *denominationStore {
	return &denominationStore{client: client}
}

func (s *denominationStore) collection() *firestore.CollectionRef {
	return s.client.Collection("denominations")
}

func (s *denominationStore) List(ctx context.Context) ([]models.Denomination, error) {
	docs, err := s.collection().Query.OrderBy("slotIndex", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list denominations", err)
	}

	out := make([]models.Denomination, 0, len(docs))
	for _, doc := range docs {
		var d models.Denomination
		if err := doc.DataTo(&d); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse denomination data", err)
		}
		d.ID = doc.Ref.ID
		out = append(out, d)
	}
	return out, nil
}

func (s *denominationStore) UpdateAmount(ctx context.Context, id string, amount float64) error {
	_, err := s.collection().Doc(id).Update(ctx, []firestore.Update{
		{Path: "amount", Value: amount},
		{Path: "updatedAt", Value: time.Now()},
	})
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError(fmt.Sprintf("denomination %s not found", id))
	}
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update denomination", err)
	}
	return nil
}

// BatchUpdateAmounts applies every update or none. All reads happen
// before the writes, as Firestore transactions require.
func (s *denominationStore) BatchUpdateAmounts(ctx context.Context, updates []dto.UpdateDenominationRequest) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		refs := make([]*firestore.DocumentRef, len(updates))
		for i, u := range updates {
			refs[i] = s.collection().Doc(u.ID)
			if _, err := tx.Get(refs[i]); err != nil {
				if status.Code(err) == codes.NotFound {
					return errs.NewNotFoundError(fmt.Sprintf("denomination %s not found", u.ID))
				}
				return errs.NewDatabaseError("read", "failed to read denomination", err)
			}
		}

		now := time.Now()
		for i, u := range updates {
			err := tx.Update(refs[i], []firestore.Update{
				{Path: "amount", Value: u.Amount},
				{Path: "updatedAt", Value: now},
			})
			if err != nil {
				return errs.NewDatabaseError("update", "failed to update denomination", err)
			}
		}
		return nil
	})
}
