package domain

import (
	"time"

	"github.com/google/uuid"
)

type TravelBand struct {
	ID            uuid.UUID   `db:"id" json:"travelBandId"`
	Name          string      `db:"name" json:"name"`
	Description   string      `db:"description" json:"description,omitempty"`
	ThumbnailURL  string      `db:"thumbnail_url" json:"thumbnailUrl"`
	Spotters      SpotterRefs `db:"spotters" json:"spotters"`
	Folders       Folders     `db:"folders" json:"folders"`
	Bookings      Bookings    `db:"bookings" json:"bookings"`
	ActivityCount int         `db:"activity_count" json:"activityCount"`
	CreatedAt     time.Time   `db:"created_at" json:"createdAt"`
}

func (b TravelBand) HasSpotter(spotterID uuid.UUID) bool {
	for _, ref := range b.Spotters {
		if ref.SpotterID == spotterID {
			return true
		}
	}
	return false
}

// TravelBandInput carries the user-editable fields of a band.
type TravelBandInput struct {
	Name        string `json:"name" validate:"required,min=3,max=20"`
	Description string `json:"description" validate:"max=120"`
}

// FolderInput carries the user-editable fields of a folder.
type FolderInput struct {
	Name        string `json:"name" validate:"required,min=3,max=20"`
	Description string `json:"description" validate:"max=120"`
}
