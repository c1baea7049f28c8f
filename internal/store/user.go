package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type userStore struct {
	Client     *firestore.Client
	Collection *firestore.CollectionRef
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{
		Client:     client,
		Collection: client.Collection("users"),
	}
}

func (us *userStore) List(ctx context.Context) ([]models.User, error) {
	iter := us.Collection.Documents(ctx)
	defer iter.Stop()

	var out []models.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to list users", err)
		}
		var u models.User
		if err := doc.DataTo(&u); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse user data", err)
		}
		u.UID = doc.Ref.ID
		out = append(out, u)
	}

	return out, nil
}
