package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is a request to move money between two accounts. The amount
// travels as a decimal string so no precision is lost before it reaches the
// engine. Transfers are not stored; they live for the duration of the call.
type Transfer struct {
	FromAccountID int64  `json:"from_account_id"`
	ToAccountID   int64  `json:"to_account_id"`
	Amount        string `json:"amount"`
}

func (t Transfer) String() string {
	return fmt.Sprintf("Transfer{from=%d, to=%d, amount=%s}", t.FromAccountID, t.ToAccountID, t.Amount)
}

// Receipt describes a completed transfer.
type Receipt struct {
	TransferID    uuid.UUID       `json:"transfer_id"`
	FromAccountID int64           `json:"from_account_id"`
	ToAccountID   int64           `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	CompletedAt   time.Time       `json:"completed_at"`
}
