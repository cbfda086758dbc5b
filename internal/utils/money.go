package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatAmount renders an amount with thousand separators and two decimals,
// e.g. 1234567.5 -> "1,234,567.50".
func FormatAmount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := FormatMoney(amount)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + formatThousand(whole) + "." + frac
}

func formatThousand(digits string) string {
	if _, err := strconv.ParseInt(digits, 10, 64); err != nil || len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
