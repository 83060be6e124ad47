// Package money formatea valores monetarios en reales (pt-BR).
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devuelve "R$ 1.500,00"; negativos como "-R$ 1.200,00".
func FormatBRL(v decimal.Decimal) string {
	sign := ""
	if v.IsNegative() {
		sign = "-"
		v = v.Abs()
	}
	return sign + "R$ " + printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// FormatPercent devuelve "52,5%" con un decimal.
func FormatPercent(v decimal.Decimal) string {
	return printer.Sprintf("%.1f", v.Round(1).InexactFloat64()) + "%"
}
