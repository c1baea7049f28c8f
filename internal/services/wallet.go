package services

import (
	"context"
	"fmt"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/pkg/helpers"
	"github.com/planvest/admin-backend/pkg/logger"
)

type denominationWSStore interface {
	List(ctx context.Context) ([]models.Denomination, error)
	UpdateAmount(ctx context.Context, id string, amount float64) error
	BatchUpdateAmounts(ctx context.Context, updates []dto.UpdateDenominationRequest) error
}

type upiWSStore interface {
	GetUpi(ctx context.Context) (*models.UpiRecord, error)
	SetUpi(ctx context.Context, upiID string) error
}

type walletService struct {
	denominations denominationWSStore
	upi           upiWSStore
}

func NewWalletService(denominations denominationWSStore, upi upiWSStore) *walletService {
	return &walletService{
		denominations: denominations,
		upi:           upi,
	}
}

func (s *walletService) ListDenominations(ctx context.Context) ([]dto.DenominationRecord, error) {
	denoms, err := s.denominations.List(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]dto.DenominationRecord, 0, len(denoms))
	for _, d := range denoms {
		records = append(records, dto.DenominationRecord{
			ID:        d.ID,
			SlotIndex: helpers.Ptr(d.SlotIndex),
			Amount:    d.Amount,
		})
	}
	return records, nil
}

func (s *walletService) UpdateDenomination(ctx context.Context, req dto.UpdateDenominationRequest) error {
	if err := validateDenominationUpdate(req); err != nil {
		return err
	}
	if err := s.denominations.UpdateAmount(ctx, req.ID, req.Amount); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("denomination updated", "denomination_id", req.ID, "amount", req.Amount)
	return nil
}

// BatchUpdateDenominations applies up to four amount updates as one
// atomic operation, so a partially applied save can never be observed.
func (s *walletService) BatchUpdateDenominations(ctx context.Context, req dto.BatchUpdateDenominationsRequest) error {
	if len(req.Updates) == 0 {
		return errs.NewValidationError("updates must not be empty")
	}
	if len(req.Updates) > models.SlotCount {
		return errs.NewValidationError(fmt.Sprintf("at most %d updates allowed", models.SlotCount))
	}

	seen := make(map[string]bool, len(req.Updates))
	for _, u := range req.Updates {
		if err := validateDenominationUpdate(u); err != nil {
			return err
		}
		if seen[u.ID] {
			return errs.NewValidationError(fmt.Sprintf("duplicate denomination id %s", u.ID))
		}
		seen[u.ID] = true
	}

	if err := s.denominations.BatchUpdateAmounts(ctx, req.Updates); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("denominations batch updated", "count", len(req.Updates))
	return nil
}

func (s *walletService) Upi(ctx context.Context) (string, error) {
	rec, err := s.upi.GetUpi(ctx)
	if err != nil {
		return "", err
	}
	return rec.UpiID, nil
}

// SetUpi performs the upsert. No format validation is applied; the value
// is an operator-facing payment address, empty included.
func (s *walletService) SetUpi(ctx context.Context, upiID string) error {
	if err := s.upi.SetUpi(ctx, upiID); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("upi id updated")
	return nil
}

func validateDenominationUpdate(req dto.UpdateDenominationRequest) error {
	if req.ID == "" {
		return errs.NewValidationError("denomination id is required")
	}
	if req.Amount <= 0 {
		return errs.NewValidationError("amount must be positive")
	}
	return nil
}
