package service

import (
	"strings"
	"testing"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/apperr"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

func TestInputValidatorCollectsEveryViolation(t *testing.T) {
	v := newInputValidator()

	err := v.Check("travel band is invalid", domain.TravelBandInput{
		Name:        "ab",
		Description: strings.Repeat("x", 121),
	})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(appErr.Errors) != 2 {
		t.Fatalf("expected 2 violations, got %v", appErr.Errors)
	}
	if appErr.Errors[0] != "name must be at least 3 characters" {
		t.Fatalf("unexpected first violation %q", appErr.Errors[0])
	}
	if appErr.Errors[1] != "description must be at most 120 characters" {
		t.Fatalf("unexpected second violation %q", appErr.Errors[1])
	}
}

func TestInputValidatorBoundaries(t *testing.T) {
	v := newInputValidator()

	cases := []struct {
		name  string
		input domain.FolderInput
		valid bool
	}{
		{"empty name", domain.FolderInput{}, false},
		{"three runes", domain.FolderInput{Name: "abc"}, true},
		{"twenty runes", domain.FolderInput{Name: strings.Repeat("a", 20)}, true},
		{"twenty one runes", domain.FolderInput{Name: strings.Repeat("a", 21)}, false},
		{"multibyte name", domain.FolderInput{Name: "été"}, true},
		{"max description", domain.FolderInput{Name: "abc", Description: strings.Repeat("d", 120)}, true},
	}
	for _, tc := range cases {
		err := v.Check("folder is invalid", tc.input)
		if tc.valid && err != nil {
			t.Fatalf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}

func TestInputValidatorRequiredMessage(t *testing.T) {
	err := newInputValidator().Check("folder is invalid", domain.FolderInput{})
	appErr, _ := apperr.As(err)
	if appErr == nil || len(appErr.Errors) != 1 || appErr.Errors[0] != "name is required" {
		t.Fatalf("expected a single required violation, got %v", err)
	}
}
