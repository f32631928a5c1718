package catalog

import (
	"fmt"
	"math"
)

// maxPlausibleMinutes is the longest craft duration we accept as minutes.
// Anything above it almost certainly came from a source that reported
// seconds, so we treat it as a unit error.
const maxPlausibleMinutes = 1000

// Profit is the per-operation margin: sell price minus material cost.
func (c Craft) Profit() int {
	return c.SellPrice - c.MaterialCost
}

// ProfitPerHour normalizes profit to a per-60-minutes rate.
// The second return is false when CraftTime is not positive; callers must
// exclude such crafts from rate-based rankings instead of dividing.
func (c Craft) ProfitPerHour() (float64, bool) {
	if c.CraftTime <= 0 {
		return 0, false
	}
	return float64(c.Profit()) / float64(c.CraftTime) * 60, true
}

// NormalizeDuration corrects a duration that was likely stored in seconds:
// values above maxPlausibleMinutes are divided by 60 and rounded. Already
// plausible values pass through unchanged, so the correction never fires
// twice on the same record.
func NormalizeDuration(minutes int) int {
	if minutes > maxPlausibleMinutes {
		return int(math.Round(float64(minutes) / 60))
	}
	return minutes
}

// FormatDuration renders minutes as "45min", "1h 30min" or "2h".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dmin", h, m)
}
