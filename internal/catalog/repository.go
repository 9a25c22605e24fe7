package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/joao-fontenele/salmo-storefront/internal/domain"
)

// highlightLimit caps the featured / new arrivals sections.
const highlightLimit = 4

type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const productColumns = `id, sku, name, brand, category, description, image, is_featured, is_new, stock, created_at`

// ListAll returns every product with its variants. No rows is an empty
// slice, never an error.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY brand, name
	`)
}

// ListFeatured returns at most four featured products.
func (r *CatalogRepository) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_featured
		ORDER BY created_at DESC
		LIMIT $1
	`, highlightLimit)
}

// ListNew returns at most four new arrivals.
func (r *CatalogRepository) ListNew(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_new
		ORDER BY created_at DESC
		LIMIT $1
	`, highlightLimit)
}

// GetByID returns nil when the product does not exist.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.list(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

func (r *CatalogRepository) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	productMap := make(map[string]*domain.Product)
	var productIDs []string

	for rows.Next() {
		var p domain.Product
		var description, image sql.NullString
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Brand, &p.Category, &description, &image,
			&p.IsFeatured, &p.IsNew, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Description = description.String
		p.Image = image.String
		p.Variants = []domain.Variant{}
		productMap[p.ID] = &p
		productIDs = append(productIDs, p.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}

	variantRows, err := r.db.QueryContext(ctx, `
		SELECT product_id, id, size, price, case_qty
		FROM variants
		WHERE product_id = ANY($1::uuid[])
		ORDER BY price
	`, pq.Array(productIDs))
	if err != nil {
		return nil, err
	}
	defer func() { _ = variantRows.Close() }()

	for variantRows.Next() {
		var productID string
		var v domain.Variant
		if err := variantRows.Scan(&productID, &v.ID, &v.Size, &v.Price, &v.CaseQty); err != nil {
			return nil, err
		}
		product := productMap[productID]
		product.Variants = append(product.Variants, v)
	}

	if err := variantRows.Err(); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(productIDs))
	for _, id := range productIDs {
		products = append(products, *productMap[id])
	}

	return products, nil
}
