package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection() *firestore.CollectionRef {
	return s.client.Collection("transactions")
}

func (s *transactionStore) List(ctx context.Context) ([]models.Transaction, error) {
	iter := s.collection().Query.OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var out []models.Transaction
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
		}
		var t models.Transaction
		if err := doc.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		t.ID = doc.Ref.ID
		out = append(out, t)
	}

	return out, nil
}

// ApplyStatus moves a transaction out of PENDING. The read and write run
// in one Firestore transaction so a concurrent operator's update cannot
// be overwritten: whichever commit lands second sees a terminal status
// and gets RejectedTransitionError.
func (s *transactionStore) ApplyStatus(ctx context.Context, transactionID string, status models.TransactionStatus, reason string) error {
	docs, err := s.collection().
		Where("transactionId", "==", transactionID).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return errs.NewDatabaseError("read", "failed to look up transaction", err)
	}
	if len(docs) == 0 {
		return errs.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	ref := docs[0].Ref

	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return errs.NewDatabaseError("read", "failed to read transaction", err)
		}

		var t models.Transaction
		if err := snap.DataTo(&t); err != nil {
			return errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		if t.Status.Terminal() {
			return errs.NewRejectedTransitionError(
				fmt.Sprintf("transaction %s is already %s", transactionID, t.Status))
		}

		updates := []firestore.Update{
			{Path: "status", Value: status},
			{Path: "reason", Value: reason},
			{Path: "updatedAt", Value: time.Now()},
		}
		return tx.Update(ref, updates)
	})
}
