package seed

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/mcjojos/money-transfers/internal/core/domain"
)

// Helpers to produce accounts for testing and demos.

const (
	randomBalanceMin = 100_000
	randomBalanceMax = 900_000
)

// EuroAccounts builds one EUR account per amount string.
func EuroAccounts(amounts []string) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0, len(amounts))
	for _, amount := range amounts {
		balance, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, amount)
		}
		accounts = append(accounts, domain.NewAccount(balance, domain.EUR))
	}
	return accounts, nil
}

// RandomAccounts builds n EUR accounts with balances uniformly distributed
// in [100000, 900000).
func RandomAccounts(n int) []domain.Account {
	accounts := make([]domain.Account, 0, n)
	for i := 0; i < n; i++ {
		balance := decimal.NewFromFloat(rand.Float64()*(randomBalanceMax-randomBalanceMin) + randomBalanceMin)
		accounts = append(accounts, domain.NewAccount(balance, domain.EUR))
	}
	return accounts
}
