package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Currency identifies a monetary unit by its ISO code and carries the
// number of decimal places its amounts are rounded to.
type Currency struct {
	Code          string
	DecimalPlaces int32
}

var EUR = Currency{Code: "EUR", DecimalPlaces: 2}

// Supported currencies, keyed by upper-case ISO code.
// Adding a currency means adding a line here, nothing else.
var currencies = map[string]Currency{
	EUR.Code: EUR,
}

// CurrencyFor resolves an ISO code (case-insensitive) to a supported currency.
func CurrencyFor(code string) (Currency, error) {
	currency, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return currency, nil
}

// On the wire a currency is just its ISO code, e.g. "EUR".
func (c Currency) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Code)
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	currency, err := CurrencyFor(code)
	if err != nil {
		return err
	}
	*c = currency
	return nil
}

func (c Currency) String() string {
	return c.Code
}
