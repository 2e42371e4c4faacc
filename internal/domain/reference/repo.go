package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists the ingredient hydration reference table
// (ingredient_database). The table is small and read whole.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// List returns all entries ordered by name.
func (r *Repo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, hydration FROM ingredient_database ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list ingredient database: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Hydration); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Table returns the name → hydration% map the conversion core consumes.
func (r *Repo) Table(ctx context.Context) (map[string]float64, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	t := make(map[string]float64, len(entries))
	for _, e := range entries {
		t[e.Name] = e.Hydration
	}
	return t, nil
}

// Upsert creates the named entry or updates its hydration in place.
func (r *Repo) Upsert(ctx context.Context, name string, hydration float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO ingredient_database (name, hydration) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET hydration = EXCLUDED.hydration
	`, name, hydration)
	if err != nil {
		return fmt.Errorf("upsert ingredient %q: %w", name, err)
	}
	return nil
}

// Delete removes the named entry and reports whether it existed.
func (r *Repo) Delete(ctx context.Context, name string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ingredient_database WHERE name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("delete ingredient %q: %w", name, err)
	}
	return tag.RowsAffected(), nil
}
