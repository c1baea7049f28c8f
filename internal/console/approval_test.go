package console

import (
	"errors"
	"testing"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/errs"
	"github.com/planvest/admin-backend/internal/models"
	"github.com/planvest/admin-backend/pkg/helpers"
)

func newApprovalFixture(t *testing.T, records ...dto.TransactionRecord) (*fakePlatform, *TransactionStore, *ApprovalController) {
	t.Helper()

	api := &fakePlatform{records: records}
	store := NewTransactionStore(api)
	if err := store.Refresh(helpers.TestCtx()); err != nil {
		t.Fatalf("initial refresh failed: %v", err)
	}
	return api, store, NewApprovalController(api, store)
}

func TestAcceptPendingTransaction(t *testing.T) {
	api, store, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionPending, 500))

	if err := ctrl.Accept(helpers.TestCtx(), "tx-1"); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}

	if len(api.updates) != 1 {
		t.Fatalf("expected 1 status update, got %d", len(api.updates))
	}
	up := api.updates[0]
	if up.TransactionID != "tx-1" || up.Status != models.TransactionCompleted {
		t.Fatalf("unexpected update: %+v", up)
	}

	// the controller refetches rather than patching locally
	if api.listCalls != 2 {
		t.Fatalf("expected refresh after accept, listCalls=%d", api.listCalls)
	}
	tx, _ := store.Get("tx-1")
	if tx.Status != models.TransactionCompleted {
		t.Fatalf("store status after accept: %s", tx.Status)
	}
}

func TestAcceptTerminalTransactionSendsNothing(t *testing.T) {
	api, _, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionCompleted, 500))

	err := ctrl.Accept(helpers.TestCtx(), "tx-1")

	var rejected *errs.RejectedTransitionError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedTransitionError, got %v", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("terminal transaction must not produce a request, got %d", len(api.updates))
	}
}

func TestAcceptUnknownTransaction(t *testing.T) {
	api, _, ctrl := newApprovalFixture(t)

	err := ctrl.Accept(helpers.TestCtx(), "missing")

	var notFound *errs.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(api.updates) != 0 {
		t.Fatalf("unknown transaction must not produce a request")
	}
}

func TestAcceptFailureLeavesStatusUnchanged(t *testing.T) {
	api, store, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionPending, 500))
	api.updateErr = errors.New("server unavailable")

	if err := ctrl.Accept(helpers.TestCtx(), "tx-1"); err == nil {
		t.Fatalf("expected error from failed accept")
	}

	tx, _ := store.Get("tx-1")
	if tx.Status != models.TransactionPending {
		t.Fatalf("status must stay PENDING after failed accept, got %s", tx.Status)
	}
}

func TestDenyWithEmptyReason(t *testing.T) {
	api, store, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionPending, 500))

	if err := ctrl.Deny("tx-1"); err != nil {
		t.Fatalf("Deny returned error: %v", err)
	}
	if _, ok := ctrl.Pending(); !ok {
		t.Fatalf("Deny should open a denial context")
	}
	if len(api.updates) != 0 {
		t.Fatalf("Deny alone must not produce a request")
	}

	// an empty reason is accepted as-is
	if err := ctrl.SubmitDenial(helpers.TestCtx(), ""); err != nil {
		t.Fatalf("SubmitDenial returned error: %v", err)
	}

	if len(api.updates) != 1 {
		t.Fatalf("expected 1 status update, got %d", len(api.updates))
	}
	up := api.updates[0]
	if up.Status != models.TransactionDenied || up.Reason != "" {
		t.Fatalf("unexpected update: %+v", up)
	}

	if _, ok := ctrl.Pending(); ok {
		t.Fatalf("denial context should clear after successful submit")
	}
	tx, _ := store.Get("tx-1")
	if tx.Status != models.TransactionDenied {
		t.Fatalf("store status after deny: %s", tx.Status)
	}
}

func TestDenyTerminalTransaction(t *testing.T) {
	_, _, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionDenied, 500))

	err := ctrl.Deny("tx-1")

	var rejected *errs.RejectedTransitionError
	if !errors.As(err, &rejected) {
		t.Fatalf("expected RejectedTransitionError, got %v", err)
	}
	if _, ok := ctrl.Pending(); ok {
		t.Fatalf("terminal transaction must not open a denial context")
	}
}

func TestSubmitDenialFailureKeepsContext(t *testing.T) {
	api, _, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionPending, 500))

	if err := ctrl.Deny("tx-1"); err != nil {
		t.Fatalf("Deny returned error: %v", err)
	}

	api.updateErr = errors.New("server unavailable")
	if err := ctrl.SubmitDenial(helpers.TestCtx(), "duplicate deposit"); err == nil {
		t.Fatalf("expected error from failed submit")
	}

	pending, ok := ctrl.Pending()
	if !ok {
		t.Fatalf("denial context should survive a failed submit")
	}
	if pending.Transaction.TransactionID != "tx-1" || pending.Reason != "duplicate deposit" {
		t.Fatalf("unexpected pending context: %+v", pending)
	}

	// retry succeeds once the server recovers
	api.updateErr = nil
	if err := ctrl.SubmitDenial(helpers.TestCtx(), "duplicate deposit"); err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if _, ok := ctrl.Pending(); ok {
		t.Fatalf("denial context should clear after retry succeeds")
	}
}

func TestSubmitDenialWithoutContext(t *testing.T) {
	_, _, ctrl := newApprovalFixture(t)

	err := ctrl.SubmitDenial(helpers.TestCtx(), "reason")

	var validation *errs.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCancelDenial(t *testing.T) {
	_, _, ctrl := newApprovalFixture(t, record("tx-1", models.TransactionPending, 500))

	if err := ctrl.Deny("tx-1"); err != nil {
		t.Fatalf("Deny returned error: %v", err)
	}
	ctrl.CancelDenial()

	if _, ok := ctrl.Pending(); ok {
		t.Fatalf("CancelDenial should discard the context")
	}
}
