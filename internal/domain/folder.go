package domain

import (
	"database/sql/driver"

	"github.com/google/uuid"
)

const DefaultFolderName = "Default"

type Folder struct {
	ID           uuid.UUID `json:"folderId"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	IsDefault    bool      `json:"isDefault,omitempty"`
	// NbActivities is computed on read and never persisted.
	NbActivities *int `json:"nbActivities,omitempty"`
}

type Folders []Folder

func (f Folders) Value() (driver.Value, error) {
	stored := make([]Folder, len(f))
	for i, folder := range f {
		folder.NbActivities = nil
		stored[i] = folder
	}
	return jsonColumnValue(stored)
}

func (f *Folders) Scan(value any) error {
	if value == nil {
		*f = Folders{}
		return nil
	}
	return scanJSONColumn(value, (*[]Folder)(f))
}

func (f Folders) Default() (Folder, bool) {
	for _, folder := range f {
		if folder.IsDefault {
			return folder, true
		}
	}
	return Folder{}, false
}

func (f Folders) ByID(id uuid.UUID) (Folder, bool) {
	for _, folder := range f {
		if folder.ID == id {
			return folder, true
		}
	}
	return Folder{}, false
}

// HasName matches names exactly, case included.
func (f Folders) HasName(name string) bool {
	for _, folder := range f {
		if folder.Name == name {
			return true
		}
	}
	return false
}
