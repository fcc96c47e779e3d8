package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the wire format for trip dates.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// TripDurationDays is the ceiling of the span in days, never less than 1.
func TripDurationDays(start, end time.Time) int {
	d := int(math.Ceil(end.Sub(start).Hours() / 24))
	if d < 1 {
		return 1
	}
	return d
}

// LocalTimestamp renders a date plus wall-clock time without a zone,
// e.g. "2025-06-01T09:30:00". Flight schedules are local-time strings.
func LocalTimestamp(date string, hour, minute int) string {
	return fmt.Sprintf("%sT%02d:%02d:00", date, hour, minute)
}
