package domain

import (
	"time"

	"github.com/google/uuid"
)

type ActivityImportRowStatus string

const (
	ActivityImportRowStatusImported ActivityImportRowStatus = "imported"
	ActivityImportRowStatusSkipped  ActivityImportRowStatus = "skipped"
	ActivityImportRowStatusFailed   ActivityImportRowStatus = "failed"
)

type ActivityImportReport struct {
	ID          uuid.UUID           `json:"id"`
	FileKey     string              `json:"fileKey,omitempty"`
	DryRun      bool                `json:"dryRun"`
	TotalRows   int                 `json:"totalRows"`
	Imported    int                 `json:"imported"`
	RowsFailed  int                 `json:"rowsFailed"`
	SubmittedAt time.Time           `json:"submittedAt"`
	CompletedAt time.Time           `json:"completedAt"`
	Rows        []ActivityImportRow `json:"rows"`
}

type ActivityImportRow struct {
	RowNumber    int                     `json:"rowNumber"`
	Status       ActivityImportRowStatus `json:"status"`
	ActivityID   *uuid.UUID              `json:"activityId,omitempty"`
	ErrorMessage *string                 `json:"error,omitempty"`
}
