package audit

import (
	"github.com/guardline/price-sentry/pkg/models/domain"
)

// GenerateReport audits a batch of package definitions and aggregates the
// results. Output order matches input order. A definition that fails
// validation becomes a missing-data result carrying the validation message,
// so one malformed package never hides the rest of the batch.
func GenerateReport(defs []domain.PackageDefinition, lookup CatalogLookup, tolerance Tolerance) domain.AuditReport {
	results := make([]domain.AuditResult, 0, len(defs))

	for _, def := range defs {
		costs, err := ResolveCosts(def, lookup)
		if err != nil {
			results = append(results, domain.AuditResult{
				PackageID:    def.ID,
				PackageName:  def.Name,
				CurrentPrice: def.ListedPrice,
				Status:       domain.StatusMissingData,
				Issues:       []string{err.Error()},
			})
			continue
		}
		results = append(results, Evaluate(def, costs, tolerance))
	}

	return domain.AuditReport{
		Results: results,
		Summary: summarize(results),
	}
}

func summarize(results []domain.AuditResult) domain.AuditSummary {
	summary := domain.AuditSummary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case domain.StatusOK:
			summary.OK++
		case domain.StatusTooLow:
			summary.TooLow++
		case domain.StatusTooHigh:
			summary.TooHigh++
		case domain.StatusMissingData:
			summary.MissingData++
		}
	}
	return summary
}
