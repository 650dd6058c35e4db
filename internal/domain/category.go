package domain

import "github.com/google/uuid"

type Category struct {
	ID           uuid.UUID `db:"id" json:"categoryId"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnailUrl"`
	Icon         string    `db:"icon" json:"icon"`
}
