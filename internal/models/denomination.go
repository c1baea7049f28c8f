package models

import (
	"time"
)

// Denomination is one of up to four preset deposit amounts. SlotIndex is
// the persisted display position; it never changes when amounts are
// edited, so a record cannot silently migrate to a different slot
// between loads.
type Denomination struct {
	ID        string    `firestore:"-" json:"id"` // Firestore doc ID
	SlotIndex int       `firestore:"slotIndex" json:"slotIndex"`
	Amount    float64   `firestore:"amount" json:"amount"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// SlotCount is the fixed number of denomination slots.
const SlotCount = 4
