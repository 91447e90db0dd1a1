package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRentalSpan(t *testing.T) {
	base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		returnAt time.Time
		expected string
	}{
		{"same moment", base, "0h"},
		{"a few hours", base.Add(5 * time.Hour), "5h"},
		{"exactly one day", base.Add(24 * time.Hour), "1d"},
		{"a started second day counts", base.Add(30 * time.Hour), "2d"},
		{"a week", base.Add(7 * 24 * time.Hour), "7d"},
		{"return before rent clamps to zero", base.Add(-2 * time.Hour), "0h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRentalSpan(base, tt.returnAt))
		})
	}
}
