package domain

type Status string

const (
	StatusOK          Status = "ok"
	StatusTooLow      Status = "too-low"
	StatusTooHigh     Status = "too-high"
	StatusMissingData Status = "missing-data"
)

// ComponentCost is a resolved bill-of-materials line. Resolved is false when
// the referenced unit price could not be found, which is distinct from a
// legitimately free component.
type ComponentCost struct {
	Category Category
	Amount   int64
	Resolved bool
}

type AuditResult struct {
	PackageID         string
	PackageName       string
	CurrentPrice      int64
	CalculatedPrice   int64
	Components        []ComponentCost
	Difference        int64
	DifferencePercent float64
	Status            Status
	Issues            []string
}

type AuditSummary struct {
	Total       int
	OK          int
	TooLow      int
	TooHigh     int
	MissingData int
}

type AuditReport struct {
	Results []AuditResult
	Summary AuditSummary
}
