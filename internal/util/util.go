// Package util contains small helpers shared across layers.
package util

import (
	"fmt"
	"time"
)

// FormatRentalSpan formats the elapsed time of a rental for display. Spans
// under a day are shown in hours; longer spans in whole days, counting a
// started day as a full one.
func FormatRentalSpan(rentDate, returnDate time.Time) string {
	span := returnDate.Sub(rentDate)
	if span < 0 {
		span = 0
	}

	if span < 24*time.Hour {
		return fmt.Sprintf("%dh", int(span.Round(time.Hour).Hours()))
	}

	days := int(span.Hours()) / 24
	if span%(24*time.Hour) != 0 {
		days++
	}

	return fmt.Sprintf("%dd", days)
}
