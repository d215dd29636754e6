package adapters

import (
	"github.com/guardline/price-sentry/pkg/models/api"
	"github.com/guardline/price-sentry/pkg/models/domain"
)

func MapStatusDomainToApi(s domain.Status) api.Status {
	switch s {
	case domain.StatusTooLow:
		return api.StatusTooLow
	case domain.StatusTooHigh:
		return api.StatusTooHigh
	case domain.StatusMissingData:
		return api.StatusMissingData
	default:
		return api.StatusOK
	}
}

func MapComponentCostDomainToApi(c domain.ComponentCost) api.ComponentCost {
	return api.ComponentCost{
		Category: string(c.Category),
		Amount:   c.Amount,
		Resolved: c.Resolved,
	}
}

func MapAuditResultDomainToApi(r domain.AuditResult) api.AuditResult {
	result := api.AuditResult{
		PackageID:         r.PackageID,
		PackageName:       r.PackageName,
		CurrentPrice:      r.CurrentPrice,
		CalculatedPrice:   r.CalculatedPrice,
		Components:        make([]api.ComponentCost, 0, len(r.Components)),
		Difference:        r.Difference,
		DifferencePercent: r.DifferencePercent,
		Status:            MapStatusDomainToApi(r.Status),
		Issues:            make([]string, 0, len(r.Issues)),
	}
	for _, c := range r.Components {
		result.Components = append(result.Components, MapComponentCostDomainToApi(c))
	}
	result.Issues = append(result.Issues, r.Issues...)
	return result
}

func MapAuditReportDomainToApi(r domain.AuditReport) api.AuditReport {
	report := api.AuditReport{
		Results: make([]api.AuditResult, 0, len(r.Results)),
		Summary: api.AuditSummary{
			Total:       r.Summary.Total,
			OK:          r.Summary.OK,
			TooLow:      r.Summary.TooLow,
			TooHigh:     r.Summary.TooHigh,
			MissingData: r.Summary.MissingData,
		},
	}
	for _, result := range r.Results {
		report.Results = append(report.Results, MapAuditResultDomainToApi(result))
	}
	return report
}
