package domain

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID           uuid.UUID      `db:"id" json:"bookingId"`
	TravelBandID uuid.UUID      `db:"travel_band_id" json:"travelBandId"`
	Activity     BookedActivity `db:"activity" json:"activity"`
	Start        time.Time      `db:"start_at" json:"start"`
	End          time.Time      `db:"end_at" json:"end"`
}

// BookedActivity is the activity snapshot taken when the booking was made.
type BookedActivity struct {
	ActivityID uuid.UUID  `json:"activityId"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Pictures   StringList `json:"pictures,omitempty"`
	Location   *Location  `json:"location,omitempty"`
}

func (a BookedActivity) Value() (driver.Value, error) { return jsonColumnValue(a) }

func (a *BookedActivity) Scan(value any) error {
	if value == nil {
		*a = BookedActivity{}
		return nil
	}
	return scanJSONColumn(value, a)
}

type Bookings []Booking

func (b Bookings) Value() (driver.Value, error) {
	if b == nil {
		return jsonColumnValue([]Booking{})
	}
	return jsonColumnValue([]Booking(b))
}

func (b *Bookings) Scan(value any) error {
	if value == nil {
		*b = Bookings{}
		return nil
	}
	return scanJSONColumn(value, (*[]Booking)(b))
}
