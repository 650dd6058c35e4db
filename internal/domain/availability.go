package domain

import (
	"time"

	"github.com/google/uuid"
)

type Availability struct {
	ID         uuid.UUID `db:"id" json:"availabilityId"`
	ActivityID uuid.UUID `db:"activity_id" json:"activityId"`
	Start      time.Time `db:"start_at" json:"start"`
	End        time.Time `db:"end_at" json:"end"`
	Capacity   int       `db:"capacity" json:"capacity"`
}

// AvailabilityRequest is sent to an activity's office on behalf of a spotter.
type AvailabilityRequest struct {
	Activity Activity
	Spotter  Spotter
	Date     time.Time
}
