package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"travel_reco/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.CatalogRepository = (*Repo)(nil)

// ReplaceCatalog swaps the stored catalog for c in one transaction.
func (r *Repo) ReplaceCatalog(ctx context.Context, c domain.Catalog) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteCountriesSQL); err != nil {
		return fmt.Errorf("delete countries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deletePlacesSQL); err != nil {
		return fmt.Errorf("delete places: %w", err)
	}
	if err := insertCountries(ctx, tx, c.Countries); err != nil {
		return err
	}
	if err := insertPlaces(ctx, tx, domain.CategoryBeaches, c.Beaches); err != nil {
		return err
	}
	if err := insertPlaces(ctx, tx, domain.CategoryTemples, c.Temples); err != nil {
		return err
	}
	return tx.Commit()
}

func insertCountries(ctx context.Context, tx *sql.Tx, cs []domain.Country) error {
	if len(cs) == 0 {
		return nil
	}
	values := make([]string, 0, len(cs))
	args := make([]any, 0, len(cs)*2)
	var cityValues []string
	var cityArgs []any
	for i, c := range cs {
		values = append(values, "(?,?)")
		args = append(args, i, c.Name)
		for j, city := range c.Cities {
			cityValues = append(cityValues, "(?,?,?,?,?)")
			cityArgs = append(cityArgs, i, j, city.Name, city.Description, valStr(city.ImageURL))
		}
	}
	if _, err := tx.ExecContext(ctx, insertCountriesPrefix+strings.Join(values, ","), args...); err != nil {
		return fmt.Errorf("insert countries: %w", err)
	}
	if len(cityValues) == 0 {
		return nil
	}
	if _, err := tx.ExecContext(ctx, insertCitiesPrefix+strings.Join(cityValues, ","), cityArgs...); err != nil {
		return fmt.Errorf("insert cities: %w", err)
	}
	return nil
}

func insertPlaces(ctx context.Context, tx *sql.Tx, cat domain.Category, ps []domain.Place) error {
	if len(ps) == 0 {
		return nil
	}
	values := make([]string, 0, len(ps))
	args := make([]any, 0, len(ps)*5) // 5 params per row
	for i, p := range ps {
		values = append(values, "(?,?,?,?,?)")
		args = append(args, string(cat), i, p.Name, p.Description, valStr(p.ImageURL))
	}
	if _, err := tx.ExecContext(ctx, insertPlacesPrefix+strings.Join(values, ","), args...); err != nil {
		return fmt.Errorf("insert %s: %w", cat, err)
	}
	return nil
}

// FetchCatalog reads the three categories concurrently.
func (r *Repo) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	var out domain.Catalog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cs, err := r.listCountries(gctx)
		out.Countries = cs
		return err
	})
	g.Go(func() error {
		ps, err := r.listPlaces(gctx, domain.CategoryBeaches)
		out.Beaches = ps
		return err
	})
	g.Go(func() error {
		ps, err := r.listPlaces(gctx, domain.CategoryTemples)
		out.Temples = ps
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Catalog{}, err
	}
	return out, nil
}

func (r *Repo) listCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.db.QueryContext(ctx, listCountriesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Country{}
	lastPos := -1
	for rows.Next() {
		var (
			pos                int
			name               string
			cityName, cityDesc sql.NullString
			cityImage          sql.NullString
		)
		if err := rows.Scan(&pos, &name, &cityName, &cityDesc, &cityImage); err != nil {
			return nil, err
		}
		if pos != lastPos {
			out = append(out, domain.Country{Name: name})
			lastPos = pos
		}
		if cityName.Valid {
			cur := &out[len(out)-1]
			cur.Cities = append(cur.Cities, domain.City{
				Name:        cityName.String,
				Description: cityDesc.String,
				ImageURL:    strPtr(cityImage),
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) listPlaces(ctx context.Context, cat domain.Category) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, listPlacesSQL, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Place{}
	for rows.Next() {
		var p domain.Place
		var image sql.NullString
		if err := rows.Scan(&p.Name, &p.Description, &image); err != nil {
			return nil, err
		}
		p.ImageURL = strPtr(image)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
