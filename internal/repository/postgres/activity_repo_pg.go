package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/domain"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
)

const activityColumns = `
	id,
	name,
	description,
	pictures,
	duration,
	languages,
	category,
	price,
	mark,
	nb_votes,
	location,
	office,
	highlighted
`

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepo(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activity WHERE id = $1`

	var activity domain.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		return nil, translate(err, domain.ErrActivityNotFound)
	}
	return &activity, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityListFilter) (*domain.ActivityPage, error) {
	limit := filter.ItemsPerPage
	if limit <= 0 {
		limit = domain.DefaultItemsPerPage
	}
	query, params := buildActivityListQuery(filter, limit)

	rows, err := r.db.QueryxContext(ctx, query, params...)
	if err != nil {
		return nil, translate(err, nil)
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0, limit)
	for rows.Next() {
		var activity domain.Activity
		if err := rows.StructScan(&activity); err != nil {
			return nil, translate(err, nil)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err, nil)
	}

	page := &domain.ActivityPage{Activities: activities}
	// One extra row was requested to learn whether another page exists.
	if len(activities) > limit {
		page.Activities = activities[:limit]
		page.LastEvaluatedID = page.Activities[limit-1].ID.String()
	}
	return page, nil
}

// buildActivityListQuery combines every set filter with AND and orders by id,
// which is the cursor key.
func buildActivityListQuery(filter domain.ActivityListFilter, limit int) (string, []any) {
	params := make([]any, 0, 6)
	clauses := make([]string, 0, 5)
	placeholder := func(value any) string {
		params = append(params, value)
		return fmt.Sprintf("$%d", len(params))
	}

	if filter.LastEvaluatedID != nil {
		clauses = append(clauses, "id > "+placeholder(*filter.LastEvaluatedID))
	}
	if filter.PriceMin > 0 {
		clauses = append(clauses, "price > "+placeholder(filter.PriceMin))
	}
	if filter.PriceMax > 0 {
		clauses = append(clauses, "price < "+placeholder(filter.PriceMax))
	}
	if filter.Category != "" {
		clauses = append(clauses, "category->>'categoryId' = "+placeholder(filter.Category))
	}
	if filter.Query != "" {
		p := placeholder(filter.Query)
		clauses = append(clauses, `(
			strpos(COALESCE(location->>'city', ''), `+p+`) > 0
			OR strpos(COALESCE(location->>'street', ''), `+p+`) > 0
			OR strpos(COALESCE(location->>'country', ''), `+p+`) > 0
			OR strpos(name, `+p+`) > 0
			OR strpos(description, `+p+`) > 0
			OR strpos(COALESCE(office->>'name', ''), `+p+`) > 0
		)`)
	}

	var builder strings.Builder
	builder.WriteString(`SELECT ` + activityColumns + ` FROM activity`)
	if len(clauses) > 0 {
		builder.WriteString("\nWHERE ")
		builder.WriteString(strings.Join(clauses, "\n\tAND "))
	}
	builder.WriteString("\nORDER BY id\nLIMIT " + placeholder(limit+1))
	return builder.String(), params
}

func (r *ActivityRepository) ListHighlighted(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `SELECT ` + activityColumns + `
		FROM activity
		WHERE highlighted
		ORDER BY mark DESC, nb_votes DESC
		LIMIT $1`

	activities := make([]domain.Activity, 0, limit)
	if err := r.db.SelectContext(ctx, &activities, query, limit); err != nil {
		return nil, translate(err, nil)
	}
	return activities, nil
}

func (r *ActivityRepository) Upsert(ctx context.Context, activity *domain.Activity) error {
	const query = `
		INSERT INTO activity (
			id, name, description, pictures, duration, languages, category,
			price, mark, nb_votes, location, office, highlighted
		)
		VALUES (
			:id, :name, :description, :pictures, :duration, :languages, :category,
			:price, :mark, :nb_votes, :location, :office, :highlighted
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			pictures = EXCLUDED.pictures,
			duration = EXCLUDED.duration,
			languages = EXCLUDED.languages,
			category = EXCLUDED.category,
			price = EXCLUDED.price,
			mark = EXCLUDED.mark,
			nb_votes = EXCLUDED.nb_votes,
			location = EXCLUDED.location,
			office = EXCLUDED.office,
			highlighted = EXCLUDED.highlighted
	`
	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return translate(err, nil)
	}
	return nil
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)
