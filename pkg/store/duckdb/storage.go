package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ProductsSchema = `
	CREATE TABLE IF NOT EXISTS products (
		sku VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		unit_price BIGINT NOT NULL,
		currency VARCHAR
	);
`

const PackagesSchema = `
	CREATE TABLE IF NOT EXISTS packages (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		listed_price BIGINT NOT NULL
	);
`

const PackageComponentsSchema = `
	CREATE TABLE IF NOT EXISTS package_components (
		package_id VARCHAR NOT NULL,
		category VARCHAR NOT NULL,
		quantity INTEGER NOT NULL,
		unit_ref VARCHAR NULL,
		PRIMARY KEY (package_id, category)
	);
`

var bootQueries = []string{
	ProductsSchema,
	PackagesSchema,
	PackageComponentsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
