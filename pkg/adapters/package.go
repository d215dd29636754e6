package adapters

import (
	"github.com/guardline/price-sentry/pkg/models/api"
	"github.com/guardline/price-sentry/pkg/models/domain"
	"github.com/guardline/price-sentry/pkg/models/store"
)

func MapStorePackageToDomain(pkg store.Package, components []store.PackageComponent) domain.PackageDefinition {
	def := domain.PackageDefinition{
		ID:          pkg.ID,
		Name:        pkg.Name,
		ListedPrice: pkg.ListedPrice,
		Components:  make(map[domain.Category]domain.BOMEntry, len(components)),
	}
	for _, component := range components {
		def.Components[domain.Category(component.Category)] = domain.BOMEntry{
			Quantity: component.Quantity,
			UnitRef:  component.UnitRef,
		}
	}
	return def
}

func MapDomainPackageToStore(def domain.PackageDefinition) (store.Package, []store.PackageComponent) {
	pkg := store.Package{
		ID:          def.ID,
		Name:        def.Name,
		ListedPrice: def.ListedPrice,
	}
	components := make([]store.PackageComponent, 0, len(def.Components))
	for _, category := range domain.Categories {
		entry, ok := def.Components[category]
		if !ok {
			continue
		}
		components = append(components, store.PackageComponent{
			PackageID: def.ID,
			Category:  string(category),
			Quantity:  entry.Quantity,
			UnitRef:   entry.UnitRef,
		})
	}
	return pkg, components
}

func MapDomainProductToStore(product domain.Product) store.Product {
	return store.Product{
		SKU:       product.SKU,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Currency:  product.Currency,
	}
}

func MapPackageDefinitionDomainToApi(def domain.PackageDefinition) api.Package {
	result := api.Package{
		ID:          def.ID,
		Name:        def.Name,
		ListedPrice: def.ListedPrice,
		Components:  make(map[string]api.BOMEntry, len(def.Components)),
	}
	for category, entry := range def.Components {
		result.Components[string(category)] = api.BOMEntry{
			Quantity: entry.Quantity,
			UnitRef:  entry.UnitRef,
		}
	}
	return result
}
