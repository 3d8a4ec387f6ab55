package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcjojos/money-transfers/internal/core/domain"
)

// AccountStore is what the engine needs from storage. Satisfied by
// storage.AccountStore.
type AccountStore interface {
	Create(account domain.Account) int64
	Get(id int64) (domain.Account, bool)
	Exists(id int64) bool
	Update(id int64, account domain.Account) bool
	Count() int
}

// Engine executes transfers between accounts and is the only component
// allowed to mutate two accounts in relation to each other.
//
// It enforces a single-writer, multiple-reader discipline over the whole
// account space with one RWMutex: Transfer and CreateAccount hold the write
// lock for the full protocol, GetAccount holds the read lock. Any number of
// reads proceed together, but never while a transfer is in flight. Coarse,
// but it makes conservation of the total balance trivial to guarantee.
type Engine struct {
	mu    sync.RWMutex
	store AccountStore
	log   *slog.Logger
}

func NewEngine(store AccountStore, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: store, log: log}
}

// Transfer atomically moves transfer.Amount from one account to the other.
// No concurrent caller can ever observe the source debited without the
// destination credited. On failure the store is left untouched.
//
// Negative transfer amounts are rejected; a transfer is single-direction.
// Resulting balances may go negative, there is no overdraft floor.
func (e *Engine) Transfer(transfer domain.Transfer) (domain.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.store.Exists(transfer.FromAccountID) || !e.store.Exists(transfer.ToAccountID) {
		e.log.Warn("aborting transfer, at least one account does not exist",
			"from_id", transfer.FromAccountID, "to_id", transfer.ToAccountID)
		return domain.Receipt{}, domain.ErrAccountNotFound
	}

	amount, err := decimal.NewFromString(transfer.Amount)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, transfer.Amount)
	}
	if amount.Sign() <= 0 {
		return domain.Receipt{}, fmt.Errorf("%w: %s is not positive", domain.ErrInvalidAmount, amount)
	}

	from, _ := e.store.Get(transfer.FromAccountID)
	to, _ := e.store.Get(transfer.ToAccountID)

	if from.Currency != to.Currency {
		return domain.Receipt{}, fmt.Errorf("%w: %s vs %s",
			domain.ErrCurrencyMismatch, from.Currency, to.Currency)
	}

	newFrom := domain.NewAccount(from.Balance.Sub(amount), from.Currency)
	newTo := domain.NewAccount(to.Balance.Add(amount), to.Currency)

	fromUpdated := e.store.Update(transfer.FromAccountID, newFrom)
	toUpdated := e.store.Update(transfer.ToAccountID, newTo)
	if !fromUpdated || !toUpdated {
		// Existence was confirmed above, under this same lock. Getting here
		// means a broken invariant in the store, not a user error.
		e.log.Error("account update failed after existence check",
			"from_updated", fromUpdated, "to_updated", toUpdated,
			"from_id", transfer.FromAccountID, "to_id", transfer.ToAccountID)
		return domain.Receipt{}, domain.ErrInconsistentState
	}

	return domain.Receipt{
		TransferID:    uuid.New(),
		FromAccountID: transfer.FromAccountID,
		ToAccountID:   transfer.ToAccountID,
		Amount:        amount,
		CompletedAt:   time.Now().UTC(),
	}, nil
}

// CreateAccount stores a new account and returns its id. Creation shares
// the write lock with Transfer, so a create never races a transfer.
func (e *Engine) CreateAccount(account domain.Account) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Create(account)
}

// GetAccount returns the account stored under id, or ErrAccountNotFound.
func (e *Engine) GetAccount(id int64) (domain.Account, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	account, ok := e.store.Get(id)
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// AccountCount reports how many accounts exist. Diagnostic use.
func (e *Engine) AccountCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Count()
}
