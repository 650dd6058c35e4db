package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/memory"
)

const importCSV = `activity_id,name,description,price,city,country,pictures,languages,mark,nb_votes,highlighted
7d9b3c1e-8f53-4a55-9d35-0e1d8a6c2f10,Fado night,Dinner and music,45,Lisbon,Portugal,https://cdn.example.com/a.jpg|https://cdn.example.com/b.jpg,pt|en,4.8,120,true
,Douro cruise,,80,Porto,Portugal,,,,,
,Broken row,,abc,Porto,Portugal,,,,,
`

func TestActivityImportUpsertsValidRows(t *testing.T) {
	store := memory.New()
	storage := newMemoryStorage()
	svc := NewActivityImportService(store.Activities(), storage, ActivityImportServiceConfig{Bucket: "imports"})

	report, err := svc.Import(context.Background(), "catalog 2024.csv", []byte(importCSV), false)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if report.TotalRows != 3 || report.Imported != 2 || report.RowsFailed != 1 {
		t.Fatalf("unexpected report counts %+v", report)
	}
	if report.Rows[2].Status != domain.ActivityImportRowStatusFailed || report.Rows[2].RowNumber != 4 {
		t.Fatalf("expected row 4 to fail, got %+v", report.Rows[2])
	}
	if !strings.HasSuffix(report.FileKey, "/catalog_2024.csv") {
		t.Fatalf("unexpected file key %q", report.FileKey)
	}
	if len(storage.objects) != 1 {
		t.Fatalf("expected the csv to be archived")
	}

	fado, err := store.Activities().Get(context.Background(), uuid.MustParse("7d9b3c1e-8f53-4a55-9d35-0e1d8a6c2f10"))
	if err != nil {
		t.Fatalf("expected imported activity, got %v", err)
	}
	if len(fado.Pictures) != 2 || len(fado.Languages) != 2 || !fado.Highlighted {
		t.Fatalf("unexpected imported activity %+v", fado)
	}
	if fado.Location == nil || fado.Location.City != "Lisbon" {
		t.Fatalf("expected location to be imported, got %+v", fado.Location)
	}
}

func TestActivityImportDryRun(t *testing.T) {
	store := memory.New()
	storage := newMemoryStorage()
	svc := NewActivityImportService(store.Activities(), storage, ActivityImportServiceConfig{Bucket: "imports"})

	report, err := svc.Import(context.Background(), "catalog.csv", []byte(importCSV), true)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if report.Imported != 0 || report.Rows[0].Status != domain.ActivityImportRowStatusSkipped {
		t.Fatalf("expected dry run to skip rows, got %+v", report)
	}
	if len(storage.objects) != 0 {
		t.Fatalf("expected dry run not to archive the file")
	}
	page, _ := store.Activities().List(context.Background(), domain.ActivityListFilter{})
	if len(page.Activities) != 0 {
		t.Fatalf("expected dry run not to write activities")
	}
}

func TestActivityImportRejectsBadFiles(t *testing.T) {
	svc := NewActivityImportService(memory.New().Activities(), nil, ActivityImportServiceConfig{MaxRows: 1})
	ctx := context.Background()

	if _, err := svc.Import(ctx, "x.csv", nil, false); !errors.Is(err, ErrImportEmptyFile) {
		t.Fatalf("expected ErrImportEmptyFile, got %v", err)
	}
	if _, err := svc.Import(ctx, "x.csv", []byte("name,price\nA,1\n"), false); !errors.Is(err, ErrImportInvalidHeaders) {
		t.Fatalf("expected ErrImportInvalidHeaders, got %v", err)
	}
	if _, err := svc.Import(ctx, "x.csv", []byte(importCSV), false); !errors.Is(err, ErrImportRowLimitExceeded) {
		t.Fatalf("expected ErrImportRowLimitExceeded, got %v", err)
	}
}

func TestActivityImportDuplicateIDs(t *testing.T) {
	csv := "activity_id,name,price,city,country\n" +
		"7d9b3c1e-8f53-4a55-9d35-0e1d8a6c2f10,A,1,Lisbon,Portugal\n" +
		"7d9b3c1e-8f53-4a55-9d35-0e1d8a6c2f10,B,2,Lisbon,Portugal\n"
	svc := NewActivityImportService(memory.New().Activities(), nil, ActivityImportServiceConfig{})

	report, err := svc.Import(context.Background(), "dup.csv", []byte(csv), false)
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if report.Imported != 1 || report.RowsFailed != 1 {
		t.Fatalf("expected the duplicate row to fail, got %+v", report)
	}
	if msg := report.Rows[1].ErrorMessage; msg == nil || !strings.Contains(*msg, "duplicates row 2") {
		t.Fatalf("unexpected error message %v", msg)
	}
}
