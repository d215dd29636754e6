package commands

import (
	"database/sql"
	"fmt"

	"github.com/guardline/price-sentry/pkg/services/catalog"
	"github.com/guardline/price-sentry/pkg/store/duckdb"
	catalogstore "github.com/guardline/price-sentry/pkg/store/duckdb/catalog"
)

func openStore(dbPath string) (*sql.DB, catalogstore.Store, func(), error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open catalog database: %w", err)
	}

	store, err := catalogstore.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return db, store, func() { _ = db.Close() }, nil
}

func openExplorer(dbPath string) (catalog.Explorer, func(), error) {
	_, store, closeDB, err := openStore(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewExplorer(store), closeDB, nil
}
