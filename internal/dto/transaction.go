package dto

import (
	"time"

	"github.com/planvest/admin-backend/internal/models"
)

// UserRef is the flattened user object embedded in each listed
// transaction; the console derives userEmail from it.
type UserRef struct {
	Email string `json:"email"`
}

type TransactionRecord struct {
	ID            string                   `json:"id"`
	TransactionID string                   `json:"transactionId"`
	Amount        float64                  `json:"amount"`
	Status        models.TransactionStatus `json:"status"`
	Reason        string                   `json:"reason,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	User          UserRef                  `json:"user"`
}

// UpdateTransactionStatusRequest is keyed by the external transactionId,
// not the document ID.
type UpdateTransactionStatusRequest struct {
	TransactionID string                   `json:"transactionId"`
	Status        models.TransactionStatus `json:"status"`
	Reason        string                   `json:"reason,omitempty"`
}
