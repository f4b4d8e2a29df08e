package billing

import (
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ToMinutes converts an "HH:MM" wall-clock value into minutes since
// midnight. Empty or malformed input counts as 0 rather than failing:
// the form feeds free-typed values straight through.
func ToMinutes(t string) int {
	if t == "" {
		return 0
	}

	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

// ElapsedHours returns the hours worked between two wall-clock values.
// A time-out earlier than the time-in means the shift crossed midnight,
// so one full day is added. No upper bound is applied here; shifts
// longer than 16 hours are priced by the line-item calculator.
func ElapsedHours(timeIn, timeOut string) float64 {
	diff := ToMinutes(timeOut) - ToMinutes(timeIn)
	if diff < 0 {
		diff += minutesPerDay
	}
	return float64(diff) / 60
}
