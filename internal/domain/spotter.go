package domain

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

type Spotter struct {
	ID           uuid.UUID `db:"id" json:"spotterId"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnailUrl"`
	TravelBands  []string  `db:"-" json:"travelBands"`
}

// IsMemberOf reports whether travelBandID is in the spotter's own band list.
func (s Spotter) IsMemberOf(travelBandID uuid.UUID) bool {
	id := travelBandID.String()
	for _, band := range s.TravelBands {
		if band == id {
			return true
		}
	}
	return false
}

func (s Spotter) Ref() SpotterRef {
	return SpotterRef{
		SpotterID:    s.ID,
		Username:     s.Username,
		Email:        s.Email,
		ThumbnailURL: s.ThumbnailURL,
	}
}

func (s Spotter) Reaction(like bool) Reaction {
	return Reaction{
		SpotterID:    s.ID,
		Username:     s.Username,
		Email:        s.Email,
		ThumbnailURL: s.ThumbnailURL,
		Like:         like,
	}
}

// SpotterRef is the copy of a spotter stored inside a travel band.
type SpotterRef struct {
	SpotterID    uuid.UUID `json:"spotterId"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl"`
}

type SpotterRefs []SpotterRef

func (s SpotterRefs) Value() (driver.Value, error) {
	if s == nil {
		return jsonColumnValue([]SpotterRef{})
	}
	return jsonColumnValue([]SpotterRef(s))
}

func (s *SpotterRefs) Scan(value any) error {
	if value == nil {
		*s = SpotterRefs{}
		return nil
	}
	return scanJSONColumn(value, (*[]SpotterRef)(s))
}
