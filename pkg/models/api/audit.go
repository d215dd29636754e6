package api

type Status string

const (
	StatusOK          Status = "ok"
	StatusTooLow      Status = "too-low"
	StatusTooHigh     Status = "too-high"
	StatusMissingData Status = "missing-data"
)

type ComponentCost struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
	Resolved bool   `json:"resolved"`
}

type AuditResult struct {
	PackageID         string          `json:"package_id"`
	PackageName       string          `json:"package_name"`
	CurrentPrice      int64           `json:"current_price"`
	CalculatedPrice   int64           `json:"calculated_price"`
	Components        []ComponentCost `json:"components"`
	Difference        int64           `json:"difference"`
	DifferencePercent float64         `json:"difference_percent"`
	Status            Status          `json:"status"`
	Issues            []string        `json:"issues"`
}

type AuditSummary struct {
	Total       int `json:"total"`
	OK          int `json:"ok"`
	TooLow      int `json:"too_low"`
	TooHigh     int `json:"too_high"`
	MissingData int `json:"missing_data"`
}

type AuditReport struct {
	Results []AuditResult `json:"results"`
	Summary AuditSummary  `json:"summary"`
}
