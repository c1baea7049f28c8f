package services

import (
	"context"
	"errors"
	"testing"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/pkg/helpers"
)

type stubDenominationStore struct {
	denoms []models.Denomination

	updated   []dto.UpdateDenominationRequest
	updateErr error

	batches  [][]dto.UpdateDenominationRequest
	batchErr error
}

func (s *stubDenominationStore) List(_ context.Context) ([]models.Denomination, error) {
	return s.denoms, nil
}

func (s *stubDenominationStore) UpdateAmount(_ context.Context, id string, amount float64) error {
	s.updated = append(s.updated, dto.UpdateDenominationRequest{ID: id, Amount: amount})
	return s.updateErr
}

func (s *stubDenominationStore) BatchUpdateAmounts(_ context.Context, updates []dto.UpdateDenominationRequest) error {
	s.batches = append(s.batches, updates)
	return s.batchErr
}

type stubUpiStore struct {
	record *models.UpiRecord
	getErr error
	set    []string
	setErr error
}

func (s *stubUpiStore) GetUpi(_ context.Context) (*models.UpiRecord, error) {
	return s.record, s.getErr
}

func (s *stubUpiStore) SetUpi(_ context.Context, upiID string) error {
	s.set = append(s.set, upiID)
	return s.setErr
}

func TestListDenominationsCarriesSlotIndex(t *testing.T) {
	store := &stubDenominationStore{denoms: []models.Denomination{
		{ID: "d-1", SlotIndex: 2, Amount: 1000},
		{ID: "d-2", SlotIndex: 0, Amount: 100},
	}}
	svc := NewWalletService(store, &stubUpiStore{})

	records, err := svc.ListDenominations(helpers.TestCtx())
	if err != nil {
		t.Fatalf("ListDenominations returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].SlotIndex == nil || *records[0].SlotIndex != 2 {
		t.Fatalf("slotIndex missing on record: %+v", records[0])
	}
}

func TestUpdateDenomination(t *testing.T) {
	store := &stubDenominationStore{}
	svc := NewWalletService(store, &stubUpiStore{})

	err := svc.UpdateDenomination(helpers.TestCtx(), dto.UpdateDenominationRequest{ID: "d-1", Amount: 750})
	if err != nil {
		t.Fatalf("UpdateDenomination returned error: %v", err)
	}
	if len(store.updated) != 1 || store.updated[0].Amount != 750 {
		t.Fatalf("unexpected updates: %+v", store.updated)
	}
}

func TestUpdateDenominationValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateDenominationRequest
	}{
		{"missing id", dto.UpdateDenominationRequest{Amount: 100}},
		{"zero amount", dto.UpdateDenominationRequest{ID: "d-1"}},
		{"negative amount", dto.UpdateDenominationRequest{ID: "d-1", Amount: -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubDenominationStore{}
			svc := NewWalletService(store, &stubUpiStore{})

			err := svc.UpdateDenomination(helpers.TestCtx(), tc.req)

			var validation *errs.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(store.updated) != 0 {
				t.Fatalf("store must not be called on invalid input")
			}
		})
	}
}

func TestBatchUpdateDenominations(t *testing.T) {
	store := &stubDenominationStore{}
	svc := NewWalletService(store, &stubUpiStore{})

	req := dto.BatchUpdateDenominationsRequest{Updates: []dto.UpdateDenominationRequest{
		{ID: "d-1", Amount: 100},
		{ID: "d-2", Amount: 500},
	}}
	if err := svc.BatchUpdateDenominations(helpers.TestCtx(), req); err != nil {
		t.Fatalf("BatchUpdateDenominations returned error: %v", err)
	}

	if len(store.batches) != 1 || len(store.batches[0]) != 2 {
		t.Fatalf("expected one batch with 2 updates: %+v", store.batches)
	}
}

func TestBatchUpdateDenominationsValidation(t *testing.T) {
	tests := []struct {
		name    string
		updates []dto.UpdateDenominationRequest
	}{
		{"empty", nil},
		{"too many", []dto.UpdateDenominationRequest{
			{ID: "a", Amount: 1}, {ID: "b", Amount: 1}, {ID: "c", Amount: 1},
			{ID: "d", Amount: 1}, {ID: "e", Amount: 1},
		}},
		{"duplicate id", []dto.UpdateDenominationRequest{
			{ID: "a", Amount: 1}, {ID: "a", Amount: 2},
		}},
		{"invalid amount", []dto.UpdateDenominationRequest{
			{ID: "a", Amount: 0},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubDenominationStore{}
			svc := NewWalletService(store, &stubUpiStore{})

			err := svc.BatchUpdateDenominations(helpers.TestCtx(), dto.BatchUpdateDenominationsRequest{Updates: tc.updates})

			var validation *errs.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(store.batches) != 0 {
				t.Fatalf("store must not be called on invalid input")
			}
		})
	}
}

func TestUpi(t *testing.T) {
	upiStore := &stubUpiStore{record: &models.UpiRecord{UpiID: "merchant@upi"}}
	svc := NewWalletService(&stubDenominationStore{}, upiStore)

	got, err := svc.Upi(helpers.TestCtx())
	if err != nil {
		t.Fatalf("Upi returned error: %v", err)
	}
	if got != "merchant@upi" {
		t.Fatalf("Upi = %q", got)
	}
}

func TestSetUpiAcceptsAnyValue(t *testing.T) {
	upiStore := &stubUpiStore{record: &models.UpiRecord{}}
	svc := NewWalletService(&stubDenominationStore{}, upiStore)

	// no format validation, empty included
	for _, value := range []string{"merchant@upi", ""} {
		if err := svc.SetUpi(helpers.TestCtx(), value); err != nil {
			t.Fatalf("SetUpi(%q) returned error: %v", value, err)
		}
	}
	if len(upiStore.set) != 2 {
		t.Fatalf("SetUpi called %d times, want 2", len(upiStore.set))
	}
}
