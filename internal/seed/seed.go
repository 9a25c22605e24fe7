// Package seed loads a JSON catalog file and upserts it into the product
// store. Seeding is the only writer of products and variants.
package seed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

const (
	defaultDescription = "Bulk Wholesale Case Pack"
	defaultBrand       = "Other"
	defaultStock       = 10
)

type VariantEntry struct {
	Size    string  `json:"size"`
	Price   float64 `json:"price"`
	CaseQty int     `json:"caseQty"`
}

type CatalogEntry struct {
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Brand       string         `json:"brand"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	IsFeatured  bool           `json:"isFeatured"`
	IsNew       bool           `json:"isNew"`
	Stock       int            `json:"stock"`
	Variants    []VariantEntry `json:"variants"`
}

// LoadCatalog reads and validates the catalog file, filling in the same
// defaults the storefront has always used for sparse entries.
func LoadCatalog(path string) ([]CatalogEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var entries []CatalogEntry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}

	for i := range entries {
		if entries[i].SKU == "" || entries[i].Name == "" {
			return nil, fmt.Errorf("catalog entry %d: sku and name are required", i)
		}
		entries[i].applyDefaults()
	}

	return entries, nil
}

func (e *CatalogEntry) applyDefaults() {
	if e.Brand == "" {
		e.Brand = defaultBrand
	}
	if e.Description == "" {
		e.Description = defaultDescription
	}
	if e.Stock <= 0 {
		e.Stock = defaultStock
	}
	if len(e.Variants) == 0 {
		// Every product is purchasable: a single case variant stands in
		// when the catalog file lists none.
		e.Variants = []VariantEntry{{Size: e.Description, Price: 15.99, CaseQty: 1}}
	}
	for i := range e.Variants {
		if e.Variants[i].CaseQty <= 0 {
			e.Variants[i].CaseQty = 1
		}
	}
}

type Seeder struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewSeeder(db *sql.DB, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Seed upserts every entry keyed by SKU. Existing products get their name,
// brand, and image refreshed; new products are inserted together with their
// variants. Variants of existing products are left alone, matching the
// original seeding behaviour. Returns the number of newly created products.
func (s *Seeder) Seed(ctx context.Context, entries []CatalogEntry) (int, error) {
	var created int

	for _, entry := range entries {
		isNew, err := s.seedOne(ctx, entry)
		if err != nil {
			return created, fmt.Errorf("seed %s: %w", entry.SKU, err)
		}
		if isNew {
			created++
		}
		s.logger.Info("synced product", "sku", entry.SKU, "name", entry.Name, "created", isNew)
	}

	return created, nil
}

func (s *Seeder) seedOne(ctx context.Context, entry CatalogEntry) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	var productID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM products WHERE sku = $1
	`, entry.SKU).Scan(&productID)

	switch {
	case err == sql.ErrNoRows:
		productID = uuid.New().String()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products (id, sku, name, brand, category, description, image, is_featured, is_new, stock, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, productID, entry.SKU, entry.Name, entry.Brand, entry.Category, entry.Description,
			nullable(entry.Image), entry.IsFeatured, entry.IsNew, entry.Stock, time.Now().UTC())
		if err != nil {
			return false, err
		}

		for _, v := range entry.Variants {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO variants (id, product_id, size, price, case_qty)
				VALUES ($1, $2, $3, $4, $5)
			`, uuid.New().String(), productID, v.Size, v.Price, v.CaseQty)
			if err != nil {
				return false, err
			}
		}

		return true, tx.Commit()

	case err != nil:
		return false, err

	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE products SET name = $2, brand = $3, image = $4
			WHERE id = $1
		`, productID, entry.Name, entry.Brand, nullable(entry.Image))
		if err != nil {
			return false, err
		}

		return false, tx.Commit()
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
