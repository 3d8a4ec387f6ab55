package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is an immutable balance-plus-currency value. Balance changes
// never mutate an Account; they construct a replacement value.
//
// The balance is an arbitrary-precision decimal to avoid the accuracy
// problems inherent to floats, and it is always stored at the scale of its
// currency. NewAccount enforces that, so callers never have to round.
type Account struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency Currency        `json:"currency"`
}

// NewAccount builds an account with the balance rounded half-up to the
// currency's decimal places.
func NewAccount(balance decimal.Decimal, currency Currency) Account {
	return Account{
		Balance:  balance.Round(currency.DecimalPlaces),
		Currency: currency,
	}
}

// Equal reports whether two accounts hold the same currency and numerically
// equal balances. 99.0 and 99.00 compare equal.
func (a Account) Equal(other Account) bool {
	return a.Currency == other.Currency && a.Balance.Equal(other.Balance)
}

func (a Account) String() string {
	return fmt.Sprintf("Account{balance=%s, currency=%s}", a.Balance, a.Currency)
}
