package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders a price as USD with two decimals and thousands separators.
func FormatCurrency(value float64) string {
	return "$" + humanize.FormatFloat("#,###.##", value)
}

// FormatSignedCurrency keeps the sign in front of the dollar amount, e.g. +$4.50.
func FormatSignedCurrency(value float64) string {
	if value < 0 {
		return "-" + FormatCurrency(-value)
	}
	return "+" + FormatCurrency(value)
}

// FormatPercentage renders a signed percentage with two decimals.
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%+.2f%%", value)
}

// FormatDate renders a timestamp as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ToPointer[T any](value T) *T {
	return &value
}

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[Panic Recovered] %v", r)
			}
		}()
		fn()
	}()
}
