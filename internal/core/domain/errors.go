package domain

import "errors"

var (
	// ErrAccountNotFound means a referenced account id has no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount means a transfer amount is not a parseable decimal
	// or is not strictly positive.
	ErrInvalidAmount = errors.New("invalid transfer amount")

	// ErrCurrencyMismatch means the two accounts of a transfer hold
	// different currencies. Cross-currency transfers are not supported.
	ErrCurrencyMismatch = errors.New("accounts hold different currencies")

	// ErrUnknownCurrency means an ISO code does not name a supported currency.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrInconsistentState means an account update failed after its
	// existence was confirmed under the engine's lock. This never happens
	// unless an invariant is broken; treat it as a defect, not user error.
	ErrInconsistentState = errors.New("account store in inconsistent state")
)
