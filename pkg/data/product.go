package data

import (
	"database/sql"
	"log/slog"
	"strings"

	"github.com/mchmarny/leadcalc/pkg/catalog"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/pkg/errors"
)

const (
	productColumns = `id, name, category, lead_ppm, lead_ppm_min, lead_ppm_max,
		serving_grams, route, description, pathway, details, effective_dose`

	upsertProductSQL = `INSERT INTO product (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			lead_ppm = excluded.lead_ppm,
			lead_ppm_min = excluded.lead_ppm_min,
			lead_ppm_max = excluded.lead_ppm_max,
			serving_grams = excluded.serving_grams,
			route = excluded.route,
			description = excluded.description,
			pathway = excluded.pathway,
			details = excluded.details,
			effective_dose = excluded.effective_dose,
			updated_at = CURRENT_TIMESTAMP
	`

	selectProductSQL = `SELECT ` + productColumns + ` FROM product WHERE id = ?`

	listProductsSQL = `SELECT ` + productColumns + ` FROM product ORDER BY name, id`

	searchProductsSQL = `SELECT ` + productColumns + ` FROM product
		WHERE LOWER(id) LIKE ? OR LOWER(name) LIKE ? OR LOWER(description) LIKE ?
		ORDER BY name, id
		LIMIT ?
	`

	deleteProductSQL = `DELETE FROM product WHERE id = ?`

	productCountSQL = `SELECT COUNT(*) FROM product`
)

var (
	// ErrProductNotFound is returned when an ID matches neither the built-in
	// catalog nor the local store.
	ErrProductNotFound = errors.New("product not found")
)

// SaveProduct inserts or replaces a custom product. Built-in IDs are reserved.
func SaveProduct(db *sql.DB, p *model.Product) error {
	if db == nil {
		return errDBNotInitialized
	}

	if err := p.Validate(); err != nil {
		return errors.Wrap(err, "invalid product")
	}

	if catalog.Exists(p.ID) {
		return errors.Errorf("product id %q is reserved by the built-in catalog", p.ID)
	}

	stmt, err := db.Prepare(upsertProductSQL)
	if err != nil {
		return errors.Wrap(err, "failed to prepare product insert statement")
	}
	defer stmt.Close()

	if _, err := stmt.Exec(productArgs(p)...); err != nil {
		return errors.Wrapf(err, "failed to save product: %s", p.ID)
	}

	return nil
}

// SaveProducts stores the list in a single transaction.
func SaveProducts(db *sql.DB, list []model.Product) (int, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}

	for i := range list {
		if err := list[i].Validate(); err != nil {
			return 0, errors.Wrap(err, "invalid product")
		}
		if catalog.Exists(list[i].ID) {
			return 0, errors.Errorf("product id %q is reserved by the built-in catalog", list[i].ID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, errors.Wrap(err, "failed to begin transaction")
	}

	stmt, err := tx.Prepare(upsertProductSQL)
	if err != nil {
		rollbackTransaction(tx)
		return 0, errors.Wrap(err, "failed to prepare product insert statement")
	}
	defer stmt.Close()

	for i := range list {
		if _, err := stmt.Exec(productArgs(&list[i])...); err != nil {
			rollbackTransaction(tx)
			return 0, errors.Wrapf(err, "failed to save product: %s", list[i].ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "failed to commit transaction")
	}

	return len(list), nil
}

// GetProduct returns a custom product by ID.
func GetProduct(db *sql.DB, id string) (*model.Product, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	stmt, err := db.Prepare(selectProductSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare product select statement")
	}
	defer stmt.Close()

	p, err := scanProduct(stmt.QueryRow(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(ErrProductNotFound, "id: %s", id)
		}
		return nil, errors.Wrapf(err, "failed to scan product: %s", id)
	}

	return p, nil
}

// ListProducts returns all custom products ordered by name.
func ListProducts(db *sql.DB) ([]*model.Product, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	rows, err := db.Query(listProductsSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute product list query")
	}
	defer rows.Close()

	return scanProducts(rows)
}

// SearchProducts matches query against custom product ID, name and description.
func SearchProducts(db *sql.DB, query string, limit int) ([]*model.Product, error) {
	if db == nil {
		return nil, errDBNotInitialized
	}

	if limit <= 0 {
		limit = -1
	}

	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := db.Query(searchProductsSQL, q, q, q, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search products: %s", query)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// DeleteProduct removes a custom product.
func DeleteProduct(db *sql.DB, id string) error {
	if db == nil {
		return errDBNotInitialized
	}

	if catalog.Exists(id) {
		return errors.Errorf("built-in product %q cannot be deleted", id)
	}

	res, err := db.Exec(deleteProductSQL, id)
	if err != nil {
		return errors.Wrapf(err, "failed to delete product: %s", id)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get rows affected")
	}
	if n == 0 {
		return errors.Wrapf(ErrProductNotFound, "id: %s", id)
	}

	return nil
}

// CountProducts returns the number of custom products.
func CountProducts(db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errDBNotInitialized
	}

	var n int64
	if err := db.QueryRow(productCountSQL).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}
	return n, nil
}

// FindProduct resolves id against the built-in catalog first and the local
// store second. A nil db limits the lookup to the catalog.
func FindProduct(db *sql.DB, id string) (*model.Product, error) {
	if p, ok := catalog.Find(id); ok {
		return p, nil
	}
	if db == nil {
		return nil, errors.Wrapf(ErrProductNotFound, "id: %s", id)
	}
	return GetProduct(db, id)
}

// ProductLookup returns a FindProduct closure bound to db.
func ProductLookup(db *sql.DB) func(id string) (*model.Product, error) {
	return func(id string) (*model.Product, error) {
		return FindProduct(db, id)
	}
}

func rollbackTransaction(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Error("error rolling back transaction", "error", err)
	}
}

func productArgs(p *model.Product) []any {
	var lo, hi sql.NullFloat64
	if r := p.LeadContentRange; r != nil {
		lo = sql.NullFloat64{Float64: r.Min, Valid: true}
		hi = sql.NullFloat64{Float64: r.Max, Valid: true}
	}

	var pathway, details, dose sql.NullString
	if e := p.Explanation; e != nil {
		pathway = sql.NullString{String: e.Pathway, Valid: true}
		details = sql.NullString{String: e.Details, Valid: true}
		dose = sql.NullString{String: e.EffectiveDose, Valid: e.EffectiveDose != ""}
	}

	name := p.Name
	if name == "" {
		name = p.ID
	}

	return []any{
		p.ID, name, string(p.Category), p.LeadContentPpm, lo, hi,
		p.DefaultServingGrams, string(p.ExposureRoute), p.Description,
		pathway, details, dose,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*model.Product, error) {
	var (
		p                      model.Product
		category, route        string
		lo, hi                 sql.NullFloat64
		pathway, details, dose sql.NullString
	)

	if err := row.Scan(&p.ID, &p.Name, &category, &p.LeadContentPpm, &lo, &hi,
		&p.DefaultServingGrams, &route, &p.Description, &pathway, &details, &dose); err != nil {
		return nil, err
	}

	p.Category = model.ProductCategory(category)
	p.ExposureRoute = model.ExposureRoute(route)
	if lo.Valid && hi.Valid {
		p.LeadContentRange = &model.LeadRange{Min: lo.Float64, Max: hi.Float64}
	}
	if pathway.Valid {
		p.Explanation = &model.ExposureExplanation{
			Pathway:       pathway.String,
			Details:       details.String,
			EffectiveDose: dose.String,
		}
	}

	return &p, nil
}

func scanProducts(rows *sql.Rows) ([]*model.Product, error) {
	list := make([]*model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan product row")
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate product rows")
	}
	return list, nil
}
