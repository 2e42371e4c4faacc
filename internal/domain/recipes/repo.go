package recipes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists recipes in the denormalized recipes table: one row per
// ingredient, the recipe-level columns repeated on every row. Aggregates
// are reassembled on read, grouped by title in row order.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

const insertRow = `
	INSERT INTO recipes (title, group_name, ingredient, weight, percent, description, steps, timestamp,
	                     top_heat, bottom_heat, bake_time, convection, steam)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
`

// Save inserts a new recipe, one row per ingredient, under a single
// transaction so a partially written recipe never becomes visible.
func (r *Repo) Save(ctx context.Context, rec Recipe) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save recipe: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, ing := range rec.Ingredients {
		if _, err := tx.Exec(ctx, insertRow,
			rec.Title, ing.Group, ing.Name, ing.Weight, ing.Percent, ing.Description,
			rec.Steps, ts,
			rec.Baking.TopHeat, rec.Baking.BottomHeat, rec.Baking.Time,
			rec.Baking.Convection, rec.Baking.Steam,
		); err != nil {
			return fmt.Errorf("insert ingredient row %q: %w", ing.Name, err)
		}
	}
	return tx.Commit(ctx)
}

// Update replaces the recipe stored under oldTitle with rec (which may
// carry a new title). Delete-then-insert in one transaction, mirroring
// how the table has always been rewritten. Returns the number of rows
// the old recipe occupied.
func (r *Repo) Update(ctx context.Context, oldTitle string, rec Recipe) (int64, error) {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin update recipe: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM recipes WHERE title = $1`, oldTitle)
	if err != nil {
		return 0, fmt.Errorf("delete old recipe %q: %w", oldTitle, err)
	}
	for _, ing := range rec.Ingredients {
		if _, err := tx.Exec(ctx, insertRow,
			rec.Title, ing.Group, ing.Name, ing.Weight, ing.Percent, ing.Description,
			rec.Steps, ts,
			rec.Baking.TopHeat, rec.Baking.BottomHeat, rec.Baking.Time,
			rec.Baking.Convection, rec.Baking.Steam,
		); err != nil {
			return 0, fmt.Errorf("insert ingredient row %q: %w", ing.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes every row of the titled recipe and reports how many
// rows went away (0 when the title is unknown).
func (r *Repo) Delete(ctx context.Context, title string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE title = $1`, title)
	if err != nil {
		return 0, fmt.Errorf("delete recipe %q: %w", title, err)
	}
	return tag.RowsAffected(), nil
}

// ClearAll wipes the recipes table.
func (r *Repo) ClearAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM recipes`)
	return err
}

const selectRows = `
	SELECT id, title, COALESCE(group_name,''), COALESCE(ingredient,''), COALESCE(weight,0), percent,
	       COALESCE(description,''), COALESCE(steps,''), timestamp,
	       COALESCE(top_heat,200), COALESCE(bottom_heat,200), COALESCE(bake_time,30),
	       COALESCE(convection,FALSE), COALESCE(steam,FALSE)
	FROM recipes
`

// List returns every recipe, newest first, ingredients in insertion order.
func (r *Repo) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.pool.Query(ctx, selectRows+` ORDER BY timestamp DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	return assemble(rows)
}

// GetByTitle returns the titled recipe, or nil when it does not exist.
func (r *Repo) GetByTitle(ctx context.Context, title string) (*Recipe, error) {
	rows, err := r.pool.Query(ctx, selectRows+` WHERE title = $1 ORDER BY id ASC`, title)
	if err != nil {
		return nil, fmt.Errorf("get recipe %q: %w", title, err)
	}
	defer rows.Close()

	recs, err := assemble(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

// Rows returns raw ingredient rows, oldest first. limit 0 means all;
// the diagnostics endpoint asks for a handful, the Excel export for
// everything.
func (r *Repo) Rows(ctx context.Context, limit int) ([]Row, error) {
	q := selectRows + ` ORDER BY timestamp ASC, id ASC`
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx, q+` LIMIT $1`, limit)
	} else {
		rows, err = r.pool.Query(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func assemble(rows pgx.Rows) ([]Recipe, error) {
	var order []string
	byTitle := map[string]*Recipe{}
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		rec, ok := byTitle[row.Title]
		if !ok {
			rec = &Recipe{
				Title:     row.Title,
				Steps:     row.Steps,
				Timestamp: row.Timestamp,
				Baking: Baking{
					TopHeat:    row.TopHeat,
					BottomHeat: row.BottomHeat,
					Time:       row.BakeTime,
					Convection: row.Convection,
					Steam:      row.Steam,
				},
			}
			byTitle[row.Title] = rec
			order = append(order, row.Title)
		}
		rec.Ingredients = append(rec.Ingredients, Ingredient{
			Group:       row.GroupName,
			Name:        row.Ingredient,
			Weight:      row.Weight,
			Percent:     row.Percent,
			Description: row.Description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]Recipe, 0, len(order))
	for _, title := range order {
		out = append(out, *byTitle[title])
	}
	return out, nil
}

func scanRow(rows pgx.Rows) (Row, error) {
	var (
		row Row
		pct sql.NullFloat64
		ts  sql.NullTime
	)
	if err := rows.Scan(
		&row.ID, &row.Title, &row.GroupName, &row.Ingredient, &row.Weight, &pct,
		&row.Description, &row.Steps, &ts,
		&row.TopHeat, &row.BottomHeat, &row.BakeTime, &row.Convection, &row.Steam,
	); err != nil {
		return Row{}, fmt.Errorf("scan recipe row: %w", err)
	}
	if pct.Valid {
		v := pct.Float64
		row.Percent = &v
	}
	if ts.Valid {
		row.Timestamp = ts.Time
	}
	return row, nil
}
