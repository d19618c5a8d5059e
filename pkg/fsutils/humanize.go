package fsutils

import (
	"strconv"
	"time"
)

// GetSizeShortText returns a human readable size string.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	// Rounding to nearest
	val := (size + div/2) / div
	// If rounding up pushes it to the next unit
	if val >= unit && exp < 3 { // TB is our last unit
		val /= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return strconv.FormatInt(val, 10) + units[exp]
}

// GetAgeShortText formats an elapsed duration as "N <unit> ago" using the
// largest unit that fits: weeks, days, hours, minutes, seconds.
func GetAgeShortText(age time.Duration) string {
	const (
		day  = 24 * time.Hour
		week = 7 * day
	)
	switch {
	case age >= week:
		return strconv.FormatInt(int64(age/week), 10) + " weeks ago"
	case age >= day:
		return strconv.FormatInt(int64(age/day), 10) + " days ago"
	case age >= time.Hour:
		return strconv.FormatInt(int64(age/time.Hour), 10) + " hours ago"
	case age >= time.Minute:
		return strconv.FormatInt(int64(age/time.Minute), 10) + " minutes ago"
	default:
		return strconv.FormatInt(int64(age/time.Second), 10) + " seconds ago"
	}
}
