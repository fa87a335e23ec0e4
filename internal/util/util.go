package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount with two decimals, prefixed by the currency symbol when one is set
// (e.g., "S/ 52.00").
func FormatPrice(amount decimal.Decimal, currency string) string {
	fixed := amount.StringFixed(2)

	currency = strings.TrimSpace(currency)
	if currency == "" {
		return fixed
	}

	return currency + " " + fixed
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
