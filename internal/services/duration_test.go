package services

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		expected string
	}{
		{name: "should format whole and half hours", hours: 1.5, expected: "01:30"},
		{name: "should format zero", hours: 0, expected: "00:00"},
		{name: "should format a quarter hour", hours: 0.25, expected: "00:15"},
		{name: "should truncate instead of rounding", hours: 0.999, expected: "00:59"},
		{name: "should not lose a minute to binary rounding", hours: 1.15, expected: "01:09"},
		{name: "should format eight hours", hours: 8, expected: "08:00"},
		{name: "should widen hours beyond two digits", hours: 100, expected: "100:00"},
		{name: "should clamp negative hours", hours: -1.5, expected: "00:00"},
		{name: "should treat NaN as zero", hours: math.NaN(), expected: "00:00"},
		{name: "should treat infinity as zero", hours: math.Inf(1), expected: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.hours))
		})
	}
}

func TestFormatClockDecimal(t *testing.T) {
	assert.Equal(t, "02:19", FormatClockDecimal(decimal.RequireFromString("2.3333333")))
	assert.Equal(t, "02:20", FormatClockDecimal(decimal.RequireFromString("2.3333334")))
	assert.Equal(t, "00:00", FormatClockDecimal(decimal.Zero))
	assert.Equal(t, "00:00", FormatClockDecimal(decimal.NewFromInt(-3)))
}
