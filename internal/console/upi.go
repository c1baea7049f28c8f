package console

import (
	"context"
	"sync"
)

type upiAPI interface {
	GetUpi(ctx context.Context) (string, error)
	SetUpi(ctx context.Context, upiID string) error
}

// UpiRegistry mirrors the single configured UPI identifier. Save is an
// upsert with no format validation.
type UpiRegistry struct {
	api upiAPI

	mu    sync.RWMutex
	upiID string
}

func NewUpiRegistry(api upiAPI) *UpiRegistry {
	return &UpiRegistry{api: api}
}

// Fetch loads the current UPI id; empty string when none is set.
func (r *UpiRegistry) Fetch(ctx context.Context) (string, error) {
	upiID, err := r.api.GetUpi(ctx)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.upiID = upiID
	r.mu.Unlock()
	return upiID, nil
}

// Save upserts the UPI id and refetches the confirmed value.
func (r *UpiRegistry) Save(ctx context.Context, upiID string) error {
	if err := r.api.SetUpi(ctx, upiID); err != nil {
		return err
	}
	_, err := r.Fetch(ctx)
	return err
}

// Current returns the last fetched value.
func (r *UpiRegistry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.upiID
}
