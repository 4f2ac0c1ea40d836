package schedule

import (
	"fmt"
	"time"
)

// BusinessHours is the daily booking window. Slots are whole UTC
// hours in [OpenHour, CloseHour).
type BusinessHours struct {
	OpenHour  int
	CloseHour int
}

// AvailableSlots enumerates the open slots of a day as zero-padded
// "HH:00" strings, ascending. A slot is open when its hour is inside
// the business window, the hour is not already booked, and its start
// instant is strictly after now. Pure function; date is truncated to
// its UTC day.
func AvailableSlots(
	date time.Time,
	hours BusinessHours,
	booked map[int]bool,
	now time.Time,
) []string {

	day := time.Date(
		date.UTC().Year(), date.UTC().Month(), date.UTC().Day(),
		0, 0, 0, 0,
		time.UTC,
	)

	slots := []string{}
	for hour := hours.OpenHour; hour < hours.CloseHour; hour++ {
		if booked[hour] {
			continue
		}
		if !day.Add(time.Duration(hour) * time.Hour).After(now) {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return slots
}

// BookedHours extracts the UTC hour component of each start instant.
// Callers feed it the day's appointment start times.
func BookedHours(starts []time.Time) map[int]bool {
	booked := make(map[int]bool, len(starts))
	for _, s := range starts {
		booked[s.UTC().Hour()] = true
	}
	return booked
}

// DayRange returns the UTC [00:00, 24:00) bounds of the date's day,
// for querying that day's appointments.
func DayRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(
		date.UTC().Year(), date.UTC().Month(), date.UTC().Day(),
		0, 0, 0, 0,
		time.UTC,
	)
	return start, start.Add(24 * time.Hour)
}
