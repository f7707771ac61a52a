package service

import (
	"fmt"
	"strings"
)

// FormatCurrency renders an amount for display. BRL gets pt-BR formatting
// ("R$ 1.234,56"); any other code falls back to "<code> <amount>".
func FormatCurrency(amount float64, currency string) string {
	if currency != defaultCurrency {
		return fmt.Sprintf("%s %.2f", currency, amount)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	whole, cents := s[:len(s)-3], s[len(s)-2:]
	return fmt.Sprintf("%sR$ %s,%s", sign, groupThousands(whole), cents)
}

// groupThousands inserts a dot every three digits, pt-BR style.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
