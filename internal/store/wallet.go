package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

// The UPI id lives in a single well-known document.
type walletStore struct {
	client *firestore.Client
}

func NewWalletStore(client *firestore.Client) *walletStore {
	return &walletStore{client: client}
}

func (s *walletStore) upiDoc() *firestore.DocumentRef {
	return s.client.Collection("wallet").Doc("upi")
}

// GetUpi returns the configured UPI record, or an empty record when none
// has been set yet.
func (s *walletStore) GetUpi(ctx context.Context) (*models.UpiRecord, error) {
	doc, err := s.upiDoc().Get(ctx)
	if status.Code(err) == codes.NotFound {
		return &models.UpiRecord{}, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to read UPI record", err)
	}

	var rec models.UpiRecord
	if err := doc.DataTo(&rec); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse UPI record", err)
	}
	return &rec, nil
}

// SetUpi is an upsert: create-or-replace semantics.
func (s *walletStore) SetUpi(ctx context.Context, upiID string) error {
	_, err := s.upiDoc().Set(ctx, map[string]interface{}{
		"upiId":     upiID,
		"updatedAt": time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to set UPI record", err)
	}
	return nil
}
