// Package money formats prices and quantities for display. All arithmetic in
// the storefront stays in decimal form; rounding happens here and nowhere else.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders currency amounts with the store's locale conventions.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for the given BCP 47 locale and currency
// symbol. Unparseable locales fall back to pt-BR, the store's display locale.
func NewFormatter(locale, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	if symbol == "" {
		symbol = "R$"
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Price renders a currency amount, e.g. "R$ 1.234,56" under pt-BR.
func (f *Formatter) Price(value decimal.Decimal) string {
	amount, _ := value.Round(2).Float64()
	return f.printer.Sprintf("%s %v", f.symbol,
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Quantity renders a quantity: whole numbers without a decimal point,
// fractional quantities with fixed two-decimal precision.
func (f *Formatter) Quantity(value decimal.Decimal) string {
	if value.IsInteger() {
		return value.Truncate(0).String()
	}
	return value.StringFixed(2)
}
