package services

import (
	"sync"

	"lunargrid/internal/models"

	"github.com/google/uuid"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// pendingOp is one optimistic mutation awaiting its authoritative fetch.
type pendingOp struct {
	kind          string
	transaction   models.Transaction
	transactionID uuid.UUID
}

type viewKey struct {
	userID uuid.UUID
	year   int
	month  int
}

type viewState struct {
	base    []models.Transaction
	overlay []pendingOp
}

// WorkingSet holds, per (user, year, month) view, the authoritative base
// transaction list plus an overlay of pending optimistic operations.
// Snapshot applies the overlay over the base; Reconcile replaces the base
// with a fresh authoritative fetch and drops the overlay entirely, so a
// mutation that failed server-side is visible locally only until the next
// refetch.
type WorkingSet struct {
	mu      sync.RWMutex
	views   map[viewKey]*viewState
	metrics MetricsRecorderInterface
}

// NewWorkingSet creates an empty working set
func NewWorkingSet(metrics MetricsRecorderInterface) *WorkingSet {
	return &WorkingSet{
		views:   make(map[viewKey]*viewState),
		metrics: metrics,
	}
}

// Reconcile installs an authoritative base list for the view and discards
// any pending overlay.
func (w *WorkingSet) Reconcile(userID uuid.UUID, year, month int, base []models.Transaction) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.views[viewKey{userID, year, month}] = &viewState{
		base: append([]models.Transaction(nil), base...),
	}
	w.recordPending()
}

// Snapshot returns the view's transactions with pending operations applied
// in order. The returned slice is owned by the caller.
func (w *WorkingSet) Snapshot(userID uuid.UUID, year, month int) []models.Transaction {
	w.mu.RLock()
	defer w.mu.RUnlock()

	view, ok := w.views[viewKey{userID, year, month}]
	if !ok {
		return nil
	}

	transactions := append([]models.Transaction(nil), view.base...)
	for _, op := range view.overlay {
		switch op.kind {
		case opCreate:
			transactions = append(transactions, op.transaction)
		case opUpdate:
			for i := range transactions {
				if transactions[i].ID == op.transaction.ID {
					transactions[i] = op.transaction
					break
				}
			}
		case opDelete:
			for i := range transactions {
				if transactions[i].ID == op.transactionID {
					transactions = append(transactions[:i], transactions[i+1:]...)
					break
				}
			}
		}
	}
	return transactions
}

// Find returns the transaction with the given id as currently visible in
// the view, pending operations included.
func (w *WorkingSet) Find(userID uuid.UUID, year, month int, id uuid.UUID) (*models.Transaction, bool) {
	for _, tx := range w.Snapshot(userID, year, month) {
		if tx.ID == id {
			found := tx
			return &found, true
		}
	}
	return nil, false
}

// ApplyCreate records an optimistic create; the view is keyed off the
// transaction's own user and date.
func (w *WorkingSet) ApplyCreate(tx models.Transaction) {
	w.apply(keyForTransaction(tx), pendingOp{kind: opCreate, transaction: tx})
}

// ApplyUpdate records an optimistic update.
func (w *WorkingSet) ApplyUpdate(tx models.Transaction) {
	w.apply(keyForTransaction(tx), pendingOp{kind: opUpdate, transaction: tx})
}

// ApplyDelete records an optimistic delete.
func (w *WorkingSet) ApplyDelete(userID uuid.UUID, year, month int, id uuid.UUID) {
	w.apply(viewKey{userID, year, month}, pendingOp{kind: opDelete, transactionID: id})
}

// PendingCount returns the number of unreconciled operations for the view.
func (w *WorkingSet) PendingCount(userID uuid.UUID, year, month int) int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if view, ok := w.views[viewKey{userID, year, month}]; ok {
		return len(view.overlay)
	}
	return 0
}

func (w *WorkingSet) apply(key viewKey, op pendingOp) {
	w.mu.Lock()
	defer w.mu.Unlock()

	view, ok := w.views[key]
	if !ok {
		view = &viewState{}
		w.views[key] = view
	}
	view.overlay = append(view.overlay, op)
	w.recordPending()
}

// recordPending must be called with the lock held.
func (w *WorkingSet) recordPending() {
	total := 0
	for _, view := range w.views {
		total += len(view.overlay)
	}
	w.metrics.RecordWorkingSetPending(total)
}

func keyForTransaction(tx models.Transaction) viewKey {
	return viewKey{
		userID: tx.UserID,
		year:   tx.Date.Year(),
		month:  int(tx.Date.Month()),
	}
}
