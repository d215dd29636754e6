package store

type Product struct {
	SKU       string
	Name      string
	UnitPrice int64
	Currency  string
}

type Package struct {
	ID          string
	Name        string
	ListedPrice int64
}

// PackageComponent is one bill-of-materials row. UnitRef is empty when the
// component carries no catalog reference (stored as SQL NULL).
type PackageComponent struct {
	PackageID string
	Category  string
	Quantity  int
	UnitRef   string
}
