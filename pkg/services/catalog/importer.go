package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/guardline/price-sentry/pkg/adapters"
	"github.com/guardline/price-sentry/pkg/models/domain"
	"github.com/guardline/price-sentry/pkg/models/store"
	"github.com/guardline/price-sentry/pkg/store/duckdb"
	catalogstore "github.com/guardline/price-sentry/pkg/store/duckdb/catalog"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the declarative seed format for products and packages.
type CatalogFile struct {
	Products []ProductSpec `yaml:"products"`
	Packages []PackageSpec `yaml:"packages"`
}

type ProductSpec struct {
	SKU       string `yaml:"sku"`
	Name      string `yaml:"name"`
	UnitPrice int64  `yaml:"unit_price"`
	Currency  string `yaml:"currency"`
}

type PackageSpec struct {
	ID          string                   `yaml:"id"`
	Name        string                   `yaml:"name"`
	ListedPrice int64                    `yaml:"listed_price"`
	Components  map[string]ComponentSpec `yaml:"components"`
}

type ComponentSpec struct {
	Quantity int    `yaml:"quantity"`
	UnitRef  string `yaml:"unit_ref"`
}

// ParseCatalog decodes and validates a catalog file. Validation here is
// structural; pricing anomalies are the audit engine's job.
func ParseCatalog(data []byte) (*CatalogFile, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	for _, product := range file.Products {
		if product.SKU == "" {
			return nil, fmt.Errorf("product %q is missing a sku", product.Name)
		}
		if product.UnitPrice < 0 {
			return nil, fmt.Errorf("product %s has a negative unit price", product.SKU)
		}
	}

	seen := make(map[string]struct{}, len(file.Packages))
	for _, pkg := range file.Packages {
		if pkg.ID == "" {
			return nil, fmt.Errorf("package %q is missing an id", pkg.Name)
		}
		if _, dup := seen[pkg.ID]; dup {
			return nil, fmt.Errorf("duplicate package id %s", pkg.ID)
		}
		seen[pkg.ID] = struct{}{}

		if pkg.ListedPrice < 0 {
			return nil, fmt.Errorf("package %s has a negative listed price", pkg.ID)
		}
		for category, component := range pkg.Components {
			if !domain.KnownCategory(domain.Category(category)) {
				return nil, fmt.Errorf("package %s has unknown component category %q", pkg.ID, category)
			}
			if component.Quantity < 0 {
				return nil, fmt.Errorf("package %s has a negative quantity for %s", pkg.ID, category)
			}
		}
	}

	return &file, nil
}

func (f *CatalogFile) domainProducts() []domain.Product {
	products := make([]domain.Product, 0, len(f.Products))
	for _, product := range f.Products {
		products = append(products, domain.Product{
			SKU:       product.SKU,
			Name:      product.Name,
			UnitPrice: product.UnitPrice,
			Currency:  product.Currency,
		})
	}
	return products
}

func (f *CatalogFile) domainPackages() []domain.PackageDefinition {
	defs := make([]domain.PackageDefinition, 0, len(f.Packages))
	for _, pkg := range f.Packages {
		components := make(map[domain.Category]domain.BOMEntry, len(pkg.Components))
		for category, component := range pkg.Components {
			components[domain.Category(category)] = domain.BOMEntry{
				Quantity: component.Quantity,
				UnitRef:  component.UnitRef,
			}
		}
		defs = append(defs, domain.PackageDefinition{
			ID:          pkg.ID,
			Name:        pkg.Name,
			ListedPrice: pkg.ListedPrice,
			Components:  components,
		})
	}
	return defs
}

type ImportStats struct {
	Products int
	Packages int
}

// Importer loads a catalog file into the store. Each import is applied in a
// single transaction, so a failing row leaves the catalog untouched.
type Importer struct {
	db    *sql.DB
	store catalogstore.Store
}

func NewImporter(db *sql.DB, catalogStore catalogstore.Store) *Importer {
	return &Importer{db: db, store: catalogStore}
}

func (i *Importer) ImportFile(ctx context.Context, path string) (*ImportStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return i.Import(ctx, data)
}

func (i *Importer) Import(ctx context.Context, data []byte) (*ImportStats, error) {
	file, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	products := file.domainProducts()
	defs := file.domainPackages()

	err = duckdb.RunInTransaction(ctx, i.db, func(txCtx context.Context) error {
		rows := make([]store.Product, 0, len(products))
		for _, product := range products {
			rows = append(rows, adapters.MapDomainProductToStore(product))
		}
		if err := i.store.AddProducts(txCtx, rows); err != nil {
			return fmt.Errorf("store products: %w", err)
		}

		for _, def := range defs {
			pkg, components := adapters.MapDomainPackageToStore(def)
			if err := i.store.AddPackage(txCtx, pkg, components); err != nil {
				return fmt.Errorf("store package %s: %w", pkg.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportStats{
		Products: len(products),
		Packages: len(defs),
	}, nil
}
