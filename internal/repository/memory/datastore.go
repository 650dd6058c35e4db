// Package memory is a process-local datastore driver for tests and local
// development. All state sits behind one mutex, so every operation (the
// transactional ones included) is applied atomically.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

type sharedKey struct {
	travelBandID uuid.UUID
	folderID     uuid.UUID
	activityID   uuid.UUID
}

type Datastore struct {
	mu sync.RWMutex

	activities     map[uuid.UUID]domain.Activity
	travelBands    map[uuid.UUID]domain.TravelBand
	spotters       map[uuid.UUID]domain.Spotter
	shared         map[sharedKey]domain.SharedActivity
	bookings       []domain.Booking
	categories     []domain.Category
	availabilities []domain.Availability

	// FailWith, when set, is returned by every call. Tests use it to simulate
	// an unavailable store.
	FailWith error
}

func New() *Datastore {
	return &Datastore{
		activities:  make(map[uuid.UUID]domain.Activity),
		travelBands: make(map[uuid.UUID]domain.TravelBand),
		spotters:    make(map[uuid.UUID]domain.Spotter),
		shared:      make(map[sharedKey]domain.SharedActivity),
	}
}

func (d *Datastore) Activities() ports.ActivityRepository             { return activityRepo{d} }
func (d *Datastore) SharedActivities() ports.SharedActivityRepository { return sharedActivityRepo{d} }
func (d *Datastore) TravelBands() ports.TravelBandRepository          { return travelBandRepo{d} }
func (d *Datastore) Folders() ports.FolderRepository                  { return folderRepo{d} }
func (d *Datastore) Spotters() ports.SpotterRepository                { return spotterRepo{d} }
func (d *Datastore) Bookings() ports.BookingRepository                { return bookingRepo{d} }
func (d *Datastore) Categories() ports.CategoryRepository             { return catalogRepo{d} }
func (d *Datastore) Availabilities() ports.AvailabilityRepository     { return catalogRepo{d} }

// Seeding helpers. They overwrite any record with the same key.

func (d *Datastore) PutActivity(activity domain.Activity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activities[activity.ID] = cloneActivity(activity)
}

func (d *Datastore) PutTravelBand(band domain.TravelBand) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.travelBands[band.ID] = cloneTravelBand(band)
}

func (d *Datastore) PutSpotter(spotter domain.Spotter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spotters[spotter.ID] = cloneSpotter(spotter)
}

func (d *Datastore) PutSharedActivity(shared domain.SharedActivity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shared[keyOf(shared)] = cloneShared(shared)
}

func (d *Datastore) PutBooking(booking domain.Booking) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bookings = append(d.bookings, booking)
}

func (d *Datastore) PutCategory(category domain.Category) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.categories = append(d.categories, category)
}

func (d *Datastore) PutAvailability(availability domain.Availability) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.availabilities = append(d.availabilities, availability)
}

// Snapshots for assertions.

func (d *Datastore) TravelBand(id uuid.UUID) (domain.TravelBand, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	band, ok := d.travelBands[id]
	return cloneTravelBand(band), ok
}

func (d *Datastore) Spotter(id uuid.UUID) (domain.Spotter, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	spotter, ok := d.spotters[id]
	return cloneSpotter(spotter), ok
}

func (d *Datastore) SharedCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.shared)
}

func keyOf(shared domain.SharedActivity) sharedKey {
	return sharedKey{travelBandID: shared.TravelBandID, folderID: shared.FolderID, activityID: shared.ActivityID}
}

func (d *Datastore) sortedShared(match func(domain.SharedActivity) bool) []domain.SharedActivity {
	items := make([]domain.SharedActivity, 0)
	for _, shared := range d.shared {
		if match(shared) {
			items = append(items, cloneShared(shared))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].SharedAt.Equal(items[j].SharedAt) {
			return items[i].SharedAt.Before(items[j].SharedAt)
		}
		if items[i].FolderID != items[j].FolderID {
			return strings.Compare(items[i].FolderID.String(), items[j].FolderID.String()) < 0
		}
		return strings.Compare(items[i].ActivityID.String(), items[j].ActivityID.String()) < 0
	})
	return items
}

var _ ports.Datastore = (*Datastore)(nil)
