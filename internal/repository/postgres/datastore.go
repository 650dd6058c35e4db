package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type Datastore struct {
	activities       *ActivityRepository
	sharedActivities *SharedActivityRepository
	travelBands      *TravelBandRepository
	folders          *FolderRepository
	spotters         *SpotterRepository
	bookings         *BookingRepository
	categories       *CategoryRepository
	availabilities   *AvailabilityRepository
}

func NewDatastore(db *sqlx.DB) *Datastore {
	return &Datastore{
		activities:       NewActivityRepo(db),
		sharedActivities: NewSharedActivityRepo(db),
		travelBands:      NewTravelBandRepo(db),
		folders:          NewFolderRepo(db),
		spotters:         NewSpotterRepo(db),
		bookings:         NewBookingRepo(db),
		categories:       NewCategoryRepo(db),
		availabilities:   NewAvailabilityRepo(db),
	}
}

func (d *Datastore) Activities() ports.ActivityRepository             { return d.activities }
func (d *Datastore) SharedActivities() ports.SharedActivityRepository { return d.sharedActivities }
func (d *Datastore) TravelBands() ports.TravelBandRepository          { return d.travelBands }
func (d *Datastore) Folders() ports.FolderRepository                  { return d.folders }
func (d *Datastore) Spotters() ports.SpotterRepository                { return d.spotters }
func (d *Datastore) Bookings() ports.BookingRepository                { return d.bookings }
func (d *Datastore) Categories() ports.CategoryRepository             { return d.categories }
func (d *Datastore) Availabilities() ports.AvailabilityRepository     { return d.availabilities }

var _ ports.Datastore = (*Datastore)(nil)
