package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/guardline/price-sentry/pkg/models/store"
	"github.com/guardline/price-sentry/pkg/store/duckdb"
)

// Store persists the product catalog and package definitions backing price
// audits. Writes participate in a transaction when one is carried in the
// context.
type Store interface {
	AddProducts(ctx context.Context, products []store.Product) error
	AddPackage(ctx context.Context, pkg store.Package, components []store.PackageComponent) error
	ListPackages(ctx context.Context) ([]store.Package, error)
	ListComponents(ctx context.Context) ([]store.PackageComponent, error)
	GetUnitPrices(ctx context.Context, refs []string) (map[string]int64, error)
}

type catalogStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{db: db}, nil
}

func (c *catalogStore) AddProducts(ctx context.Context, products []store.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := `
		INSERT INTO products (
			sku, name, unit_price, currency
		) VALUES (
			?, ?, ?, ?
		)`

	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, product := range products {
		_, err = stmt.ExecContext(ctx,
			product.SKU,
			product.Name,
			product.UnitPrice,
			product.Currency,
		)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", product.SKU, err)
		}
	}

	return nil
}

func (c *catalogStore) AddPackage(ctx context.Context, pkg store.Package, components []store.PackageComponent) error {
	pkgQuery := `
		INSERT INTO packages (
			id, name, listed_price
		) VALUES (
			?, ?, ?
		)`

	stmt, err := c.prepare(ctx, pkgQuery)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(ctx, pkg.ID, pkg.Name, pkg.ListedPrice); err != nil {
		return fmt.Errorf("insert package %s: %w", pkg.ID, err)
	}

	if len(components) == 0 {
		return nil
	}

	componentQuery := `
		INSERT INTO package_components (
			package_id, category, quantity, unit_ref
		) VALUES (
			?, ?, ?, ?
		)`

	componentStmt, err := c.prepare(ctx, componentQuery)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer componentStmt.Close()

	for _, component := range components {
		var unitRef sql.NullString
		if component.UnitRef != "" {
			unitRef = sql.NullString{String: component.UnitRef, Valid: true}
		}

		_, err = componentStmt.ExecContext(ctx,
			pkg.ID,
			component.Category,
			component.Quantity,
			unitRef,
		)
		if err != nil {
			return fmt.Errorf("insert component %s/%s: %w", pkg.ID, component.Category, err)
		}
	}

	return nil
}

func (c *catalogStore) ListPackages(ctx context.Context) ([]store.Package, error) {
	query := `
		SELECT id, name, listed_price
		FROM packages
		ORDER BY id
	`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	packages := make([]store.Package, 0)
	for rows.Next() {
		var pkg store.Package
		if err := rows.Scan(&pkg.ID, &pkg.Name, &pkg.ListedPrice); err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, rows.Err()
}

func (c *catalogStore) ListComponents(ctx context.Context) ([]store.PackageComponent, error) {
	query := `
		SELECT package_id, category, quantity, unit_ref
		FROM package_components
		ORDER BY package_id, category
	`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query package components: %w", err)
	}
	defer rows.Close()

	components := make([]store.PackageComponent, 0)
	for rows.Next() {
		var (
			component store.PackageComponent
			unitRef   sql.NullString
		)
		if err := rows.Scan(&component.PackageID, &component.Category, &component.Quantity, &unitRef); err != nil {
			return nil, err
		}
		if unitRef.Valid {
			component.UnitRef = unitRef.String
		}
		components = append(components, component)
	}
	return components, rows.Err()
}

func (c *catalogStore) GetUnitPrices(ctx context.Context, refs []string) (map[string]int64, error) {
	prices := make(map[string]int64, len(refs))
	if len(refs) == 0 {
		return prices, nil
	}

	placeholders := make([]string, len(refs))
	args := make([]interface{}, len(refs))
	for i, ref := range refs {
		placeholders[i] = "?"
		args[i] = ref
	}

	query := fmt.Sprintf(`
		SELECT sku, unit_price
		FROM products
		WHERE sku IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query unit prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sku       string
			unitPrice int64
		)
		if err := rows.Scan(&sku, &unitPrice); err != nil {
			return nil, err
		}
		prices[sku] = unitPrice
	}
	return prices, rows.Err()
}

func (c *catalogStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return c.db.PrepareContext(ctx, query)
}
