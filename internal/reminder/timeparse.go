package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseClockTime parses a 12-hour wall-clock string like "1:30 PM" into a
// 24-hour (hour, minute) pair. 12 AM maps to hour 0, 12 PM stays 12, and the
// other PM hours add 12.
func ParseClockTime(clock string) (hour, minute int, err error) {
	fields := strings.Fields(strings.TrimSpace(clock))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want \"H:MM AM\" or \"H:MM PM\"", clock)
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: missing minutes", clock)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minutes in %q", clock)
	}

	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("invalid AM/PM designator in %q", clock)
	}

	return hour, minute, nil
}

// AppointmentTime combines a YYYY-MM-DD date and a 12-hour clock string into
// the appointment instant in the given location.
func AppointmentTime(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	hour, minute, err := ParseClockTime(clock)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}
