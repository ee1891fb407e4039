// Package currency renders prices for display.
package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Code is an ISO 4217 currency code.
type Code string

const (
	EUR Code = "EUR"
	USD Code = "USD"
	GBP Code = "GBP"
)

// Default is used when no code is configured.
const Default = EUR

var printer = message.NewPrinter(language.English)

// Parse validates an ISO 4217 code.
func Parse(code string) (Code, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return "", fmt.Errorf("currency: %q: %w", code, err)
	}
	return Code(unit.String()), nil
}

// Format renders amount with the symbol for code, e.g. "€ 12.50". An unknown
// code falls back to Default.
func Format(amount float64, code Code) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		unit, _ = currency.ParseISO(string(Default))
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount)))
}
