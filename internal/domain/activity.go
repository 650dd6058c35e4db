package domain

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

type Activity struct {
	ID             uuid.UUID      `db:"id" json:"activityId"`
	Name           string         `db:"name" json:"name"`
	Description    string         `db:"description" json:"description"`
	Pictures       StringList     `db:"pictures" json:"pictures"`
	Duration       int            `db:"duration" json:"duration"`
	Languages      StringList     `db:"languages" json:"languages"`
	Category       *CategoryRef   `db:"category" json:"category,omitempty"`
	Price          float64        `db:"price" json:"price"`
	Mark           float64        `db:"mark" json:"mark"`
	NbVotes        int            `db:"nb_votes" json:"nbVotes"`
	Location       *Location      `db:"location" json:"location,omitempty"`
	Office         *Office        `db:"office" json:"office,omitempty"`
	Highlighted    bool           `db:"highlighted" json:"highlighted"`
	Availabilities []Availability `db:"-" json:"availabilities,omitempty"`
}

type CategoryRef struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Name       string    `json:"name"`
}

func (c CategoryRef) Value() (driver.Value, error) { return jsonColumnValue(c) }

func (c *CategoryRef) Scan(value any) error {
	if value == nil {
		*c = CategoryRef{}
		return nil
	}
	return scanJSONColumn(value, c)
}

type Location struct {
	Street     string   `json:"street,omitempty"`
	City       string   `json:"city,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

func (l Location) Value() (driver.Value, error) { return jsonColumnValue(l) }

func (l *Location) Scan(value any) error {
	if value == nil {
		*l = Location{}
		return nil
	}
	return scanJSONColumn(value, l)
}

// Office is the agency that runs an activity and receives availability requests.
type Office struct {
	OfficeID uuid.UUID `json:"officeId"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
}

func (o Office) Value() (driver.Value, error) { return jsonColumnValue(o) }

func (o *Office) Scan(value any) error {
	if value == nil {
		*o = Office{}
		return nil
	}
	return scanJSONColumn(value, o)
}

const (
	DefaultItemsPerPage = 20
	MaxItemsPerPage     = 100
)

// ActivityListFilter narrows a catalog page. Zero values leave a criterion unset.
type ActivityListFilter struct {
	LastEvaluatedID *uuid.UUID
	ItemsPerPage    int
	PriceMin        float64
	PriceMax        float64
	Category        string
	Query           string
}

// ActivityPage holds one page of the catalog. LastEvaluatedID is empty when
// no further page exists.
type ActivityPage struct {
	Activities      []Activity `json:"activities"`
	LastEvaluatedID string     `json:"lastEvaluatedId"`
}
