// Package currency renders whole-unit amounts as locale-specific currency
// strings with no fractional digits.
package currency

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Defaults match the studio's home market.
const (
	DefaultLocale   = "en-IN"
	DefaultCurrency = "INR"
)

// Formatter formats amounts for one locale and currency.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for a BCP-47 locale and an ISO-4217 code.
func New(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("currency: parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency: parse code %q: %w", code, err)
	}

	p := message.NewPrinter(tag)
	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// Default returns the en-IN / INR formatter.
func Default() *Formatter {
	f, err := New(DefaultLocale, DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate reports whether locale and code can build a Formatter.
func Validate(locale, code string) error {
	_, err := New(locale, code)
	return err
}

// Format renders amount with the currency symbol and locale digit grouping.
func (f *Formatter) Format(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	return sign + f.symbol + digits
}

// FormatSigned renders amount with an explicit leading "+" for positive values.
func (f *Formatter) FormatSigned(amount int64) string {
	if amount > 0 {
		return "+" + f.Format(amount)
	}
	return f.Format(amount)
}

// Code returns the ISO-4217 code.
func (f *Formatter) Code() string {
	return f.unit.String()
}

// Locale returns the BCP-47 locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Symbol returns the narrow currency symbol for the locale.
func (f *Formatter) Symbol() string {
	return f.symbol
}
