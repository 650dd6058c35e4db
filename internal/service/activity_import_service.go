package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

var (
	ErrImportEmptyFile        = errors.New("csv file is empty")
	ErrImportTooLarge         = errors.New("csv file exceeds maximum size")
	ErrImportInvalidHeaders   = errors.New("csv headers missing required columns")
	ErrImportRowLimitExceeded = errors.New("csv exceeds maximum allowed rows")
)

// listSeparator splits multi-valued cells such as pictures and languages.
const listSeparator = "|"

type ActivityImportServiceConfig struct {
	// Bucket receives a copy of every imported file when storage is set.
	Bucket       string
	MaxRows      int
	MaxFileBytes int64
}

// ActivityImportService seeds the activity catalog from a CSV file. Each valid
// row is upserted by activity ID; invalid rows are reported and skipped.
type ActivityImportService struct {
	activities   ports.ActivityRepository
	storage      ports.ObjectStorage
	bucket       string
	maxRows      int
	maxFileBytes int64
	now          func() time.Time
}

func NewActivityImportService(activities ports.ActivityRepository, storage ports.ObjectStorage, cfg ActivityImportServiceConfig) *ActivityImportService {
	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = 5000
	}
	maxFile := cfg.MaxFileBytes
	if maxFile <= 0 {
		maxFile = 10 * 1024 * 1024
	}
	return &ActivityImportService{
		activities:   activities,
		storage:      storage,
		bucket:       cfg.Bucket,
		maxRows:      maxRows,
		maxFileBytes: maxFile,
		now:          time.Now,
	}
}

func (s *ActivityImportService) Import(ctx context.Context, filename string, contents []byte, dryRun bool) (*domain.ActivityImportReport, error) {
	if len(contents) == 0 {
		return nil, ErrImportEmptyFile
	}
	if int64(len(contents)) > s.maxFileBytes {
		return nil, ErrImportTooLarge
	}

	header, records, err := parseCSV(contents)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrImportEmptyFile
	}
	if len(records) > s.maxRows {
		return nil, ErrImportRowLimitExceeded
	}
	if missing := missingColumns(header, []string{"name", "price", "city", "country"}); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrImportInvalidHeaders, strings.Join(missing, ", "))
	}

	report := &domain.ActivityImportReport{
		ID:          uuid.New(),
		DryRun:      dryRun,
		TotalRows:   len(records),
		SubmittedAt: s.now(),
		Rows:        make([]domain.ActivityImportRow, 0, len(records)),
	}

	if s.storage != nil && s.bucket != "" && !dryRun {
		objectName := buildImportObjectName(report.ID, filename)
		if _, err := s.storage.Upload(ctx, s.bucket, objectName, "text/csv", bytes.NewReader(contents), int64(len(contents))); err != nil {
			return nil, err
		}
		report.FileKey = objectName
	}

	seen := make(map[uuid.UUID]int)
	for idx, record := range records {
		rowNumber := idx + 2 // header is line 1
		activity, rowErrors := buildActivity(rowToMap(header, record))

		if activity.ID != uuid.Nil {
			if prev, ok := seen[activity.ID]; ok {
				rowErrors = append(rowErrors, fmt.Sprintf("activity_id duplicates row %d", prev))
			} else {
				seen[activity.ID] = rowNumber
			}
		}

		row := domain.ActivityImportRow{RowNumber: rowNumber}
		if len(rowErrors) == 0 && !dryRun {
			if err := s.activities.Upsert(ctx, &activity); err != nil {
				rowErrors = append(rowErrors, err.Error())
			}
		}

		switch {
		case len(rowErrors) > 0:
			message := strings.Join(rowErrors, "; ")
			row.Status = domain.ActivityImportRowStatusFailed
			row.ErrorMessage = &message
			report.RowsFailed++
		case dryRun:
			row.Status = domain.ActivityImportRowStatusSkipped
			row.ActivityID = &activity.ID
		default:
			row.Status = domain.ActivityImportRowStatusImported
			row.ActivityID = &activity.ID
			report.Imported++
		}
		report.Rows = append(report.Rows, row)
	}

	report.CompletedAt = s.now()
	return report, nil
}

func buildActivity(values map[string]string) (domain.Activity, []string) {
	var errs []string
	activity := domain.Activity{
		Name:        values["name"],
		Description: values["description"],
		Pictures:    splitList(values["pictures"]),
		Languages:   splitList(values["languages"]),
		Highlighted: strings.EqualFold(values["highlighted"], "true"),
	}

	if raw := values["activity_id"]; raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, "activity_id must be a valid UUID")
		}
		activity.ID = id
	} else {
		activity.ID = uuid.New()
	}
	if activity.Name == "" {
		errs = append(errs, "name is required")
	}

	parseNumber := func(key string, dst *float64) {
		if raw := values[key]; raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid %s: %s", key, err.Error()))
				return
			}
			*dst = v
		}
	}
	parseInt := func(key string, dst *int) {
		if raw := values[key]; raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				errs = append(errs, fmt.Sprintf("%s must be a non-negative integer", key))
				return
			}
			*dst = v
		}
	}

	if values["price"] == "" {
		errs = append(errs, "price is required")
	}
	parseNumber("price", &activity.Price)
	if activity.Price < 0 {
		errs = append(errs, "price must not be negative")
	}
	parseNumber("mark", &activity.Mark)
	parseInt("nb_votes", &activity.NbVotes)
	parseInt("duration", &activity.Duration)

	location := &domain.Location{
		Street:     values["street"],
		City:       values["city"],
		PostalCode: values["postal_code"],
		Country:    values["country"],
	}
	if location.City == "" || location.Country == "" {
		errs = append(errs, "city and country are required")
	}
	if raw := values["latitude"]; raw != "" {
		var lat float64
		parseNumber("latitude", &lat)
		location.Latitude = &lat
	}
	if raw := values["longitude"]; raw != "" {
		var lng float64
		parseNumber("longitude", &lng)
		location.Longitude = &lng
	}
	activity.Location = location

	if raw := values["category_id"]; raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs = append(errs, "category_id must be a valid UUID")
		} else {
			activity.Category = &domain.CategoryRef{CategoryID: id, Name: values["category_name"]}
		}
	}

	if name := values["office_name"]; name != "" {
		office := &domain.Office{Name: name, Email: values["office_email"]}
		if raw := values["office_id"]; raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				errs = append(errs, "office_id must be a valid UUID")
			}
			office.OfficeID = id
		}
		activity.Office = office
	}

	return activity, errs
}

func splitList(raw string) domain.StringList {
	out := domain.StringList{}
	for _, part := range strings.Split(raw, listSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseCSV(contents []byte) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(contents))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrImportEmptyFile
		}
		return nil, nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.ToLower(h))
	}

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if isRecordEmpty(record) {
			continue
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

func missingColumns(header []string, required []string) []string {
	set := make(map[string]struct{}, len(header))
	for _, h := range header {
		set[h] = struct{}{}
	}
	var missing []string
	for _, req := range required {
		if _, ok := set[req]; !ok {
			missing = append(missing, req)
		}
	}
	return missing
}

func rowToMap(header []string, record []string) map[string]string {
	out := make(map[string]string, len(header))
	for idx, key := range header {
		val := ""
		if idx < len(record) {
			val = strings.TrimSpace(record[idx])
		}
		out[key] = val
	}
	return out
}

func isRecordEmpty(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func buildImportObjectName(reportID uuid.UUID, filename string) string {
	name := strings.TrimSpace(filename)
	if name == "" {
		name = "activities.csv"
	}
	name = strings.ReplaceAll(filepath.Base(name), " ", "_")
	return fmt.Sprintf("activities/imports/%s/%s", reportID, name)
}
