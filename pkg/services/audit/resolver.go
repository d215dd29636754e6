package audit

import (
	"fmt"

	"github.com/guardline/price-sentry/pkg/models/domain"
)

// CatalogLookup resolves a catalog reference to a unit price. The second
// return value is false when the catalog has no price for the reference.
// Callers back this with an in-memory map prefetched from the catalog store
// so resolution stays free of I/O.
type CatalogLookup func(unitRef string) (domain.UnitPrice, bool)

// ResolveCosts turns a package's bill of materials into per-category line
// costs. Output follows the canonical category order regardless of map
// iteration; categories absent from the definition are omitted, not
// zero-filled. Unresolvable references are reported via Resolved=false,
// never as an error.
func ResolveCosts(def domain.PackageDefinition, lookup CatalogLookup) ([]domain.ComponentCost, error) {
	for category, entry := range def.Components {
		if !domain.KnownCategory(category) {
			return nil, &InvalidDefinitionError{
				PackageID: def.ID,
				Reason:    fmt.Sprintf("unknown component category %q", category),
			}
		}
		if entry.Quantity < 0 {
			return nil, &InvalidDefinitionError{
				PackageID: def.ID,
				Reason:    fmt.Sprintf("negative quantity %d for %s", entry.Quantity, category),
			}
		}
	}

	costs := make([]domain.ComponentCost, 0, len(def.Components))
	for _, category := range domain.Categories {
		entry, ok := def.Components[category]
		if !ok {
			continue
		}

		// Empty reference means the component is explicitly free.
		if entry.UnitRef == "" {
			costs = append(costs, domain.ComponentCost{
				Category: category,
				Amount:   0,
				Resolved: true,
			})
			continue
		}

		price, ok := lookup(entry.UnitRef)
		if !ok {
			costs = append(costs, domain.ComponentCost{
				Category: category,
				Amount:   0,
				Resolved: false,
			})
			continue
		}

		costs = append(costs, domain.ComponentCost{
			Category: category,
			Amount:   price.Amount * int64(entry.Quantity),
			Resolved: true,
		})
	}

	return costs, nil
}
