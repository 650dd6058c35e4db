package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/memory"
)

// fixture is a store holding one band with its default folder, one member
// spotter and one catalog activity.
type fixture struct {
	store         *memory.Datastore
	band          domain.TravelBand
	defaultFolder domain.Folder
	member        domain.Spotter
	outsider      domain.Spotter
	activity      domain.Activity
}

func newFixture() *fixture {
	store := memory.New()

	defaultFolder := domain.Folder{ID: uuid.New(), Name: domain.DefaultFolderName, IsDefault: true}
	band := domain.TravelBand{
		ID:        uuid.New(),
		Name:      "Lisbon trip",
		Folders:   domain.Folders{defaultFolder},
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	member := domain.Spotter{
		ID:           uuid.New(),
		Username:     "ana",
		Email:        "ana@example.com",
		ThumbnailURL: "https://cdn.example.com/ana.png",
		TravelBands:  []string{band.ID.String()},
	}
	band.Spotters = domain.SpotterRefs{member.Ref()}
	outsider := domain.Spotter{
		ID:       uuid.New(),
		Username: "bruno",
		Email:    "bruno@example.com",
	}
	activity := domain.Activity{
		ID:          uuid.New(),
		Name:        "Tram 28 tour",
		Description: "Ride through Alfama",
		Pictures:    domain.StringList{"https://cdn.example.com/tram.jpg"},
		Price:       25,
		Mark:        4.5,
		NbVotes:     12,
		Location:    &domain.Location{City: "Lisbon", Country: "Portugal"},
		Office:      &domain.Office{OfficeID: uuid.New(), Name: "Lisboa Tours", Email: "office@lisboa.example.com"},
	}

	store.PutTravelBand(band)
	store.PutSpotter(member)
	store.PutSpotter(outsider)
	store.PutActivity(activity)

	return &fixture{
		store:         store,
		band:          band,
		defaultFolder: defaultFolder,
		member:        member,
		outsider:      outsider,
		activity:      activity,
	}
}

// addFolder stores an extra, non-default folder on the fixture band.
func (f *fixture) addFolder(name string) domain.Folder {
	folder := domain.Folder{ID: uuid.New(), Name: name}
	f.band.Folders = append(f.band.Folders, folder)
	band, _ := f.store.TravelBand(f.band.ID)
	band.Folders = append(band.Folders, folder)
	f.store.PutTravelBand(band)
	return folder
}
