package console

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type denominationAPI interface {
	ListDenominations(ctx context.Context) ([]dto.DenominationRecord, error)
	UpdateDenomination(ctx context.Context, req dto.UpdateDenominationRequest) error
}

// Slot is one of the four fixed display positions. RecordID is empty
// when no backing record exists; such a slot can be edited locally but
// is never persisted.
type Slot struct {
	Index    int
	RecordID string
	Amount   float64
}

// SlotOutcome reports what happened to one slot during Commit.
type SlotOutcome struct {
	Attempted bool
	Err       error
}

// CommitResult surfaces per-slot success/failure instead of collapsing a
// partial failure into a single flag.
type CommitResult struct {
	Slots      [models.SlotCount]SlotOutcome
	RefreshErr error
}

// Failed lists the slot indexes whose update was attempted and failed.
func (r CommitResult) Failed() []int {
	var out []int
	for i, s := range r.Slots {
		if s.Attempted && s.Err != nil {
			out = append(out, i)
		}
	}
	return out
}

// Err summarizes the commit: nil only when every attempted update and
// the trailing refresh succeeded.
func (r CommitResult) Err() error {
	if failed := r.Failed(); len(failed) > 0 {
		return fmt.Errorf("denomination update failed for slots %v", failed)
	}
	return r.RefreshErr
}

// DenominationLedger owns the four-slot view of denomination records.
// The mapping is rebuilt wholesale on every refresh; edits accumulate in
// a local buffer until Commit.
type DenominationLedger struct {
	api denominationAPI

	mu    sync.Mutex
	slots [models.SlotCount]Slot
	dirty [models.SlotCount]bool
}

func NewDenominationLedger(api denominationAPI) *DenominationLedger {
	return &DenominationLedger{api: api}
}

// Refresh rebuilds the slot mapping from the server. Records carrying a
// persisted slotIndex land on that slot; records without one (written
// before slot identities existed) fill the remaining slots in ascending
// amount order. Slots beyond the record count stay empty.
func (l *DenominationLedger) Refresh(ctx context.Context) error {
	records, err := l.api.ListDenominations(ctx)
	if err != nil {
		return err
	}

	var slots [models.SlotCount]Slot
	for i := range slots {
		slots[i].Index = i
	}

	var legacy []dto.DenominationRecord
	for _, rec := range records {
		idx := rec.SlotIndex
		if idx != nil && *idx >= 0 && *idx < models.SlotCount && slots[*idx].RecordID == "" {
			slots[*idx].RecordID = rec.ID
			slots[*idx].Amount = rec.Amount
			continue
		}
		legacy = append(legacy, rec)
	}

	sort.Slice(legacy, func(i, j int) bool { return legacy[i].Amount < legacy[j].Amount })
	li := 0
	for i := range slots {
		if slots[i].RecordID != "" || li >= len(legacy) {
			continue
		}
		slots[i].RecordID = legacy[li].ID
		slots[i].Amount = legacy[li].Amount
		li++
	}

	l.mu.Lock()
	l.slots = slots
	l.dirty = [models.SlotCount]bool{}
	l.mu.Unlock()
	return nil
}

// SetSlotAmount stages an edit in the local buffer. Persisted state is
// untouched until Commit; an edit on a slot without a backing record is
// accepted here and dropped on save.
func (l *DenominationLedger) SetSlotAmount(slotIndex int, amount float64) error {
	if slotIndex < 0 || slotIndex >= models.SlotCount {
		return errs.NewValidationError(fmt.Sprintf("slot index %d out of range", slotIndex))
	}

	l.mu.Lock()
	l.slots[slotIndex].Amount = amount
	l.dirty[slotIndex] = true
	l.mu.Unlock()
	return nil
}

// Slots returns a copy of the current four-slot view.
func (l *DenominationLedger) Slots() [models.SlotCount]Slot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slots
}

// Commit sends one update per edited, record-backed slot. The requests
// run concurrently with no ordering guarantee. Whatever the outcome, the
// ledger refreshes afterwards so the view matches the server again.
func (l *DenominationLedger) Commit(ctx context.Context) CommitResult {
	l.mu.Lock()
	slots := l.slots
	dirty := l.dirty
	l.mu.Unlock()

	var result CommitResult
	var wg sync.WaitGroup
	for i := range slots {
		if !dirty[i] || slots[i].RecordID == "" {
			continue
		}
		result.Slots[i].Attempted = true

		wg.Add(1)
		go func(i int, slot Slot) {
			defer wg.Done()
			result.Slots[i].Err = l.api.UpdateDenomination(ctx, dto.UpdateDenominationRequest{
				ID:     slot.RecordID,
				Amount: slot.Amount,
			})
		}(i, slots[i])
	}
	wg.Wait()

	result.RefreshErr = l.Refresh(ctx)
	return result
}
