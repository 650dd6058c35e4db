package ports

// Datastore groups every persistence operation behind one handle. A single
// driver implements it; services receive the narrower interfaces they need.
type Datastore interface {
	Activities() ActivityRepository
	SharedActivities() SharedActivityRepository
	TravelBands() TravelBandRepository
	Folders() FolderRepository
	Spotters() SpotterRepository
	Bookings() BookingRepository
	Categories() CategoryRepository
	Availabilities() AvailabilityRepository
}
