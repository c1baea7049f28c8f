package console

import (
	"context"
	"fmt"
	"sync"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
)

type statusUpdater interface {
	UpdateTransactionStatus(ctx context.Context, req dto.UpdateTransactionStatusRequest) error
}

type approvalStore interface {
	Refresh(ctx context.Context) error
	Get(transactionID string) (Transaction, bool)
}

// PendingDenial is the open "denial in progress" context: the targeted
// transaction plus whatever reason the operator has typed so far.
type PendingDenial struct {
	Transaction Transaction
	Reason      string
}

// ApprovalController drives the accept/deny state machine. The local
// PENDING check is advisory (it keeps doomed requests off the wire);
// the server independently rejects transitions out of a terminal status,
// since another operator may have acted first.
type ApprovalController struct {
	api   statusUpdater
	store approvalStore

	mu      sync.Mutex
	pending *PendingDenial
}

func NewApprovalController(api statusUpdater, store approvalStore) *ApprovalController {
	return &ApprovalController{
		api:   api,
		store: store,
	}
}

// Accept completes a PENDING transaction. The update is keyed by the
// external transactionId and followed by a full refresh, so the caller
// sees server-confirmed state rather than an optimistic local mutation.
// No request is issued when the transaction is already terminal.
func (c *ApprovalController) Accept(ctx context.Context, transactionID string) error {
	tx, ok := c.store.Get(transactionID)
	if !ok {
		return errs.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	if tx.Status.Terminal() {
		return errs.NewRejectedTransitionError(
			fmt.Sprintf("transaction %s is already %s", transactionID, tx.Status))
	}

	err := c.api.UpdateTransactionStatus(ctx, dto.UpdateTransactionStatusRequest{
		TransactionID: transactionID,
		Status:        models.TransactionCompleted,
	})
	if err != nil {
		// status unchanged; the operator reissues the action
		return err
	}

	return c.store.Refresh(ctx)
}

// Deny opens a denial context for a PENDING transaction. Nothing is sent
// until SubmitDenial; a terminal transaction never opens one.
func (c *ApprovalController) Deny(transactionID string) error {
	tx, ok := c.store.Get(transactionID)
	if !ok {
		return errs.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	if tx.Status.Terminal() {
		return errs.NewRejectedTransitionError(
			fmt.Sprintf("transaction %s is already %s", transactionID, tx.Status))
	}

	c.mu.Lock()
	c.pending = &PendingDenial{Transaction: tx}
	c.mu.Unlock()
	return nil
}

// SubmitDenial sends the denial with the operator's reason. The reason
// may be empty; no validation is applied. On success the store is
// refreshed and the context cleared; on failure the context stays open
// so the operator can retry.
func (c *ApprovalController) SubmitDenial(ctx context.Context, reason string) error {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return errs.NewValidationError("no denial in progress")
	}
	c.pending.Reason = reason
	target := c.pending.Transaction
	c.mu.Unlock()

	err := c.api.UpdateTransactionStatus(ctx, dto.UpdateTransactionStatusRequest{
		TransactionID: target.TransactionID,
		Status:        models.TransactionDenied,
		Reason:        reason,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()

	return c.store.Refresh(ctx)
}

// CancelDenial discards the open denial context, if any.
func (c *ApprovalController) CancelDenial() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
}

// Pending returns a copy of the open denial context.
func (c *ApprovalController) Pending() (PendingDenial, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return PendingDenial{}, false
	}
	return *c.pending, true
}
