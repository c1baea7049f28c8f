package models

import (
	"time"
)

// UpiRecord holds the single configured payment address. One instance
// exists per deployment; POST acts as create-or-replace.
type UpiRecord struct {
	UpiID     string    `firestore:"upiId" json:"upiId"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
