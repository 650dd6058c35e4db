package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
)

func TestBuildActivityListQueryWithoutFilters(t *testing.T) {
	query, params := buildActivityListQuery(domain.ActivityListFilter{}, 20)

	if strings.Contains(query, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %q", query)
	}
	if len(params) != 1 || params[0] != 21 {
		t.Fatalf("expected a single limit param of 21, got %v", params)
	}
	if !strings.Contains(query, "ORDER BY id") {
		t.Fatalf("expected ordering by cursor key, got %q", query)
	}
}

func TestBuildActivityListQueryCombinesFilters(t *testing.T) {
	cursor := uuid.New()
	filter := domain.ActivityListFilter{
		LastEvaluatedID: &cursor,
		PriceMin:        10,
		PriceMax:        50,
		Category:        "c-1",
		Query:           "Paris",
	}

	query, params := buildActivityListQuery(filter, 5)

	for _, fragment := range []string{
		"id > $1",
		"price > $2",
		"price < $3",
		"category->>'categoryId' = $4",
		"strpos(name, $5) > 0",
		"strpos(COALESCE(office->>'name', ''), $5) > 0",
		"LIMIT $6",
	} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("expected query to contain %q, got %q", fragment, query)
		}
	}
	if got := strings.Count(query, "\n\tAND "); got != 4 {
		t.Fatalf("expected 5 clauses joined by AND, got %d joins", got)
	}
	if len(params) != 6 {
		t.Fatalf("expected 6 params, got %d", len(params))
	}
	if params[0] != cursor || params[4] != "Paris" || params[5] != 6 {
		t.Fatalf("unexpected params %v", params)
	}
}

func TestBuildActivityListQuerySinglePriceBound(t *testing.T) {
	query, params := buildActivityListQuery(domain.ActivityListFilter{PriceMax: 30}, 10)

	if strings.Contains(query, "price >") {
		t.Fatalf("expected no lower bound, got %q", query)
	}
	if !strings.Contains(query, "price < $1") {
		t.Fatalf("expected upper bound, got %q", query)
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
}
