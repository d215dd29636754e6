package audit

import (
	"fmt"

	"github.com/guardline/price-sentry/pkg/models/domain"
)

// Tolerance contains the configurable deviation thresholds for price audits.
type Tolerance struct {
	// LowPercent flags packages listed more than this percentage below the
	// calculated price (default: 10).
	LowPercent float64 `mapstructure:"low_percent"`
	// HighPercent flags packages listed more than this percentage above the
	// calculated price (default: 15).
	HighPercent float64 `mapstructure:"high_percent"`
}

// DefaultTolerance returns the default thresholds for price audits.
func DefaultTolerance() Tolerance {
	return Tolerance{
		LowPercent:  10,
		HighPercent: 15,
	}
}

// Evaluate classifies a package's pricing health from its resolved component
// costs. Any unresolved component wins over the percentage thresholds.
//
// When the calculated price is zero the deviation percent is defined as zero,
// so an all-zero-cost package with a positive listed price still classifies
// as ok. The "no cost data available" issue keeps the condition visible.
func Evaluate(def domain.PackageDefinition, costs []domain.ComponentCost, tolerance Tolerance) domain.AuditResult {
	var calculated int64
	for _, c := range costs {
		calculated += c.Amount
	}

	difference := def.ListedPrice - calculated

	var differencePercent float64
	if calculated != 0 {
		differencePercent = float64(difference) / float64(calculated) * 100
	}

	var issues []string
	missing := false
	for _, c := range costs {
		if !c.Resolved {
			missing = true
			issues = append(issues, fmt.Sprintf("missing price data for %s", c.Category))
		}
	}
	if calculated == 0 {
		issues = append(issues, "no cost data available")
	}
	if def.ListedPrice < 0 {
		issues = append(issues, "negative listed price")
	}

	status := domain.StatusOK
	switch {
	case missing:
		status = domain.StatusMissingData
	case differencePercent <= -tolerance.LowPercent:
		status = domain.StatusTooLow
	case differencePercent >= tolerance.HighPercent:
		status = domain.StatusTooHigh
	}

	return domain.AuditResult{
		PackageID:         def.ID,
		PackageName:       def.Name,
		CurrentPrice:      def.ListedPrice,
		CalculatedPrice:   calculated,
		Components:        costs,
		Difference:        difference,
		DifferencePercent: differencePercent,
		Status:            status,
		Issues:            issues,
	}
}
