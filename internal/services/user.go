package services

import (
	"context"

	"github.com/planvest/admin-backend/internal/models"
)

type userUSStore interface {
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	Store userUSStore
}

func NewUserService(store userUSStore) *userService {
	return &userService{
		Store: store,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Store.List(ctx)
}
