package services

import (
	"context"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/pkg/logger"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

type transactionASStore interface {
	List(ctx context.Context) ([]models.Transaction, error)
	ApplyStatus(ctx context.Context, transactionID string, status models.TransactionStatus, reason string) error
}

type userASStore interface {
	List(ctx context.Context) ([]models.User, error)
}

type approvalService struct {
	txs   transactionASStore
	users userASStore
}

func NewApprovalService(txs transactionASStore, users userASStore) *approvalService {
	return &approvalService{
		txs:   txs,
		users: users,
	}
}

// ListTransactions returns every transaction with its owner's email
// embedded, which is the shape the console flattens from.
func (s *approvalService) ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error) {
	txs, err := s.txs.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	emailByUID := make(map[string]string, len(users))
	for _, u := range users {
		emailByUID[u.UID] = u.Email
	}

	records := make([]dto.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		records = append(records, dto.TransactionRecord{
			ID:            t.ID,
			TransactionID: t.TransactionID,
			Amount:        t.Amount,
			Status:        t.Status,
			Reason:        t.Reason,
			CreatedAt:     t.CreatedAt,
			User:          dto.UserRef{Email: emailByUID[t.UserID]},
		})
	}
	return records, nil
}

// UpdateStatus validates and applies an accept/deny decision. The store
// enforces the terminal-state invariant atomically; a denial reason is
// kept only for DENIED. An empty reason is accepted.
func (s *approvalService) UpdateStatus(ctx context.Context, req dto.UpdateTransactionStatusRequest) error {
	if req.TransactionID == "" {
		return errs.NewValidationError("transactionId is required")
	}

	switch req.Status {
	case models.TransactionCompleted, models.TransactionDenied:
	default:
		return errs.NewValidationError("status must be COMPLETED or DENIED")
	}

	reason := req.Reason
	if req.Status == models.TransactionCompleted {
		reason = ""
	}

	if err := s.txs.ApplyStatus(ctx, req.TransactionID, req.Status, reason); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction status updated", "transaction_id", req.TransactionID, "status", req.Status)
	return nil
}
