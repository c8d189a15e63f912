package usecase

import (
	"fmt"
	"time"
)

// TripDateLayout is the DD/MM/YYYY format embedded in trip strings.
const TripDateLayout = "02/01/2006"

// FormDateLayout is the format of date fields posted by the form.
const FormDateLayout = "2006-01-02"

// FormatTrip builds the human-readable trip string stored on a booking:
// "origin → destination (DD/MM/YYYY)", with "(dep - ret)" for round
// trips. ret is nil for one-way trips.
func FormatTrip(origin, destination string, depart time.Time, ret *time.Time) string {
	dates := depart.Format(TripDateLayout)
	if ret != nil {
		dates = fmt.Sprintf("%s - %s", dates, ret.Format(TripDateLayout))
	}
	return fmt.Sprintf("%s → %s (%s)", origin, destination, dates)
}
