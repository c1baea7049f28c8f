package models

import (
	"time"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionDenied    TransactionStatus = "DENIED"
)

// Terminal reports whether no further status transition is permitted.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionCompleted || s == TransactionDenied
}

type Transaction struct {
	ID            string            `firestore:"-" json:"id"` // Firestore doc ID
	TransactionID string            `firestore:"transactionId" json:"transactionId"`
	UserID        string            `firestore:"userId" json:"userId"`
	Amount        float64           `firestore:"amount" json:"amount"`
	Status        TransactionStatus `firestore:"status" json:"status"`
	Reason        string            `firestore:"reason" json:"reason,omitempty"`
	CreatedAt     time.Time         `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `firestore:"updatedAt" json:"updatedAt"`
}
