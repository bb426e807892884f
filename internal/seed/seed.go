package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData creates a starter set of departments on an empty
// database so a fresh install has something to browse. Existing data is
// never touched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int("departments", count).Msg("Departments already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default departments...")

	defaults := []struct {
		name     string
		building string
	}{
		{"Computer Science", "Turing Hall"},
		{"Mathematics", "Gauss Building"},
		{"Physics", "Curie Building"},
	}

	for _, d := range defaults {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO departments (department_name, building) VALUES ($1, $2)
			 ON CONFLICT (department_name) DO NOTHING`,
			d.name, d.building)
		if err != nil {
			lgr.Error().Err(err).Str("department", d.name).Msg("Error seeding department")
			return err
		}
	}

	lgr.Info().Int("count", len(defaults)).Msg("Default departments created")
	return nil
}
