package domain

// Category is one of the fixed cost buckets a package can include.
type Category string

const (
	CategoryCameras      Category = "cameras"
	CategoryNVR          Category = "nvr"
	CategoryStorage      Category = "storage"
	CategoryUPS          Category = "ups"
	CategoryInstallation Category = "installation"
	CategoryMaintenance  Category = "maintenance"
	CategoryAccessories  Category = "accessories"
)

// Categories is the canonical display order for component breakdowns.
var Categories = []Category{
	CategoryCameras,
	CategoryNVR,
	CategoryStorage,
	CategoryUPS,
	CategoryInstallation,
	CategoryMaintenance,
	CategoryAccessories,
}

func KnownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// BOMEntry is a bill-of-materials line. An empty UnitRef means the component
// ships with the package at no cost, as opposed to a reference the catalog
// cannot price.
type BOMEntry struct {
	Quantity int
	UnitRef  string
}

// PackageDefinition describes a bundled product. All prices are integer
// minor currency units.
type PackageDefinition struct {
	ID          string
	Name        string
	ListedPrice int64
	Components  map[Category]BOMEntry
}

type Product struct {
	SKU       string
	Name      string
	UnitPrice int64
	Currency  string
}

type UnitPrice struct {
	Amount int64
}
