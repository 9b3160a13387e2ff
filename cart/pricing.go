package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount in cents.
type Money int64

// UnitPrice applies to every product. There is no per-product pricing.
const UnitPrice Money = 2500

var printer = message.NewPrinter(language.AmericanEnglish)

// LineTotal is the price of quantity units.
func LineTotal(quantity int) Money {
	return UnitPrice * Money(quantity)
}

// Dollars returns the amount in whole currency units.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// String formats the amount as "$1,234.50".
func (m Money) String() string {
	return "$" + printer.Sprintf("%.2f", m.Dollars())
}
