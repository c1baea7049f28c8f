// Package console holds the operator-facing state machines of the admin
// console: the transaction collection, the approval flow, the
// denomination ledger and the UPI/plan registries. Each component owns
// its in-memory state exclusively and replaces it wholesale on refresh;
// the server stays the consistency authority.
package console

import (
	"context"
	"sync"
	"time"

	"github.com/planvest/admin-backend/internal/dto"
	"github.com/planvest/admin-backend/internal/models"
)

// Transaction is the flattened view the console works with: the embedded
// user object collapses to UserEmail.
type Transaction struct {
	ID            string
	TransactionID string
	UserEmail     string
	Amount        float64
	Status        models.TransactionStatus
	Reason        string
	CreatedAt     time.Time
}

type transactionLister interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionRecord, error)
}

// TransactionStore is the single owner of the in-memory transaction
// collection. Readers never observe a partially replaced list, and a
// failed refresh keeps the last-known-good collection.
type TransactionStore struct {
	api transactionLister

	mu      sync.RWMutex
	txs     []Transaction
	byRef   map[string]int // transactionId -> index into txs
	lastErr error
}

func NewTransactionStore(api transactionLister) *TransactionStore {
	return &TransactionStore{
		api:   api,
		byRef: make(map[string]int),
	}
}

// Refresh fetches all transactions and swaps the collection atomically.
// On failure the previous collection stays in place and the error is
// retained for LastErr.
func (s *TransactionStore) Refresh(ctx context.Context) error {
	records, err := s.api.ListTransactions(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	txs := make([]Transaction, 0, len(records))
	byRef := make(map[string]int, len(records))
	for _, rec := range records {
		byRef[rec.TransactionID] = len(txs)
		txs = append(txs, Transaction{
			ID:            rec.ID,
			TransactionID: rec.TransactionID,
			UserEmail:     rec.User.Email,
			Amount:        rec.Amount,
			Status:        rec.Status,
			Reason:        rec.Reason,
			CreatedAt:     rec.CreatedAt,
		})
	}

	s.mu.Lock()
	s.txs = txs
	s.byRef = byRef
	s.lastErr = nil
	s.mu.Unlock()
	return nil
}

// Get returns the current in-memory record keyed by the external
// transactionId.
func (s *TransactionStore) Get(transactionID string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byRef[transactionID]
	if !ok {
		return Transaction{}, false
	}
	return s.txs[i], true
}

// List returns a copy of the collection in fetch order.
func (s *TransactionStore) List() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// LastErr reports the error of the most recent failed refresh, or nil
// after a successful one.
func (s *TransactionStore) LastErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
