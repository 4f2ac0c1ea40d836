package handlers

import "time"

// --------------------------------------------------
// All scheduling runs in UTC on whole hours.
// --------------------------------------------------

func parseUTCDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, time.UTC)
}

func parseStartTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
