package services

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var minutesPerHour = decimal.NewFromInt(60)

// FormatClock renders fractional hours as a zero-padded "HH:MM" string.
// Minutes are truncated, never rounded: 0.999h is "00:59". Negative, NaN
// and infinite inputs render as "00:00"; hours beyond 99 widen the HH part.
func FormatClock(hours float64) string {
	return FormatClockDecimal(hoursToDecimal(hours))
}

// FormatClockDecimal is FormatClock for an exact decimal hour count.
func FormatClockDecimal(hours decimal.Decimal) string {
	if hours.Sign() <= 0 {
		return "00:00"
	}
	totalMinutes := hours.Mul(minutesPerHour).Floor().IntPart()
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// hoursToDecimal converts a stored hour value. NaN and infinities have no
// decimal form and count as zero.
func hoursToDecimal(hours float64) decimal.Decimal {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(hours)
}
