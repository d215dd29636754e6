package catalog

import (
	"context"
	"fmt"

	"github.com/guardline/price-sentry/pkg/adapters"
	"github.com/guardline/price-sentry/pkg/models/domain"
	"github.com/guardline/price-sentry/pkg/models/store"
	"github.com/guardline/price-sentry/pkg/services/audit"
	catalogstore "github.com/guardline/price-sentry/pkg/store/duckdb/catalog"
)

// Explorer exposes package definitions and catalog prices to audit callers.
type Explorer interface {
	ListPackages(ctx context.Context) ([]domain.PackageDefinition, error)
	GetPackage(ctx context.Context, id string) (domain.PackageDefinition, bool, error)
	// Lookup prefetches every unit price the given definitions reference and
	// returns an in-memory lookup, so the audit itself performs no I/O.
	Lookup(ctx context.Context, defs []domain.PackageDefinition) (audit.CatalogLookup, error)
}

type explorer struct {
	store catalogstore.Store
}

func NewExplorer(catalogStore catalogstore.Store) Explorer {
	return &explorer{store: catalogStore}
}

func (e *explorer) ListPackages(ctx context.Context) ([]domain.PackageDefinition, error) {
	packages, err := e.store.ListPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	components, err := e.store.ListComponents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list package components: %w", err)
	}

	byPackage := make(map[string][]store.PackageComponent)
	for _, component := range components {
		byPackage[component.PackageID] = append(byPackage[component.PackageID], component)
	}

	defs := make([]domain.PackageDefinition, 0, len(packages))
	for _, pkg := range packages {
		defs = append(defs, adapters.MapStorePackageToDomain(pkg, byPackage[pkg.ID]))
	}
	return defs, nil
}

func (e *explorer) GetPackage(ctx context.Context, id string) (domain.PackageDefinition, bool, error) {
	defs, err := e.ListPackages(ctx)
	if err != nil {
		return domain.PackageDefinition{}, false, err
	}
	for _, def := range defs {
		if def.ID == id {
			return def, true, nil
		}
	}
	return domain.PackageDefinition{}, false, nil
}

func (e *explorer) Lookup(ctx context.Context, defs []domain.PackageDefinition) (audit.CatalogLookup, error) {
	seen := make(map[string]struct{})
	refs := make([]string, 0)
	for _, def := range defs {
		for _, category := range domain.Categories {
			entry, ok := def.Components[category]
			if !ok || entry.UnitRef == "" {
				continue
			}
			if _, dup := seen[entry.UnitRef]; dup {
				continue
			}
			seen[entry.UnitRef] = struct{}{}
			refs = append(refs, entry.UnitRef)
		}
	}

	prices, err := e.store.GetUnitPrices(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("prefetch unit prices: %w", err)
	}

	return func(unitRef string) (domain.UnitPrice, bool) {
		amount, ok := prices[unitRef]
		return domain.UnitPrice{Amount: amount}, ok
	}, nil
}
