package domain

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// SharedActivity is a snapshot of an Activity placed in a folder of a travel
// band. A (travel band, folder, activity) triple identifies at most one record.
type SharedActivity struct {
	TravelBandID uuid.UUID  `db:"travel_band_id" json:"travelBandId"`
	FolderID     uuid.UUID  `db:"folder_id" json:"folderId"`
	ActivityID   uuid.UUID  `db:"activity_id" json:"activityId"`
	Name         string     `db:"name" json:"name"`
	Pictures     StringList `db:"pictures" json:"pictures"`
	Price        float64    `db:"price" json:"price"`
	Mark         float64    `db:"mark" json:"mark"`
	NbVotes      int        `db:"nb_votes" json:"nbVotes"`
	Location     *Location  `db:"location" json:"location,omitempty"`
	Reactions    Reactions  `db:"reactions" json:"reactions"`
	SharedAt     time.Time  `db:"shared_at" json:"sharedAt"`
}

// NewSharedActivity snapshots the catalog fields of activity with no reactions.
func NewSharedActivity(activity Activity, travelBandID, folderID uuid.UUID, sharedAt time.Time) SharedActivity {
	pictures := make(StringList, len(activity.Pictures))
	copy(pictures, activity.Pictures)

	var location *Location
	if activity.Location != nil {
		loc := *activity.Location
		location = &loc
	}

	return SharedActivity{
		TravelBandID: travelBandID,
		FolderID:     folderID,
		ActivityID:   activity.ID,
		Name:         activity.Name,
		Pictures:     pictures,
		Price:        activity.Price,
		Mark:         activity.Mark,
		NbVotes:      activity.NbVotes,
		Location:     location,
		Reactions:    Reactions{},
		SharedAt:     sharedAt,
	}
}

type Reaction struct {
	SpotterID    uuid.UUID `json:"spotterId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Like         bool      `json:"like"`
}

type Reactions []Reaction

func (r Reactions) Value() (driver.Value, error) {
	if r == nil {
		return jsonColumnValue([]Reaction{})
	}
	return jsonColumnValue([]Reaction(r))
}

func (r *Reactions) Scan(value any) error {
	if value == nil {
		*r = Reactions{}
		return nil
	}
	return scanJSONColumn(value, (*[]Reaction)(r))
}

// Find returns the reaction left by spotterID.
func (r Reactions) Find(spotterID uuid.UUID) (Reaction, bool) {
	for _, reaction := range r {
		if reaction.SpotterID == spotterID {
			return reaction, true
		}
	}
	return Reaction{}, false
}

// Without returns a copy of r minus every reaction by spotterID.
func (r Reactions) Without(spotterID uuid.UUID) Reactions {
	out := make(Reactions, 0, len(r))
	for _, reaction := range r {
		if reaction.SpotterID != spotterID {
			out = append(out, reaction)
		}
	}
	return out
}

// Upsert replaces the reaction of the same spotter, appending it last.
func (r Reactions) Upsert(reaction Reaction) Reactions {
	return append(r.Without(reaction.SpotterID), reaction)
}
