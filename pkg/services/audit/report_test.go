package audit

import (
	"testing"

	"github.com/guardline/price-sentry/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() ([]domain.PackageDefinition, CatalogLookup) {
	defs := []domain.PackageDefinition{
		{
			ID: "ok", Name: "Fairly Priced", ListedPrice: 1050,
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryCameras: {Quantity: 5, UnitRef: "CAM1"},
			},
		},
		{
			ID: "low", Name: "Underpriced", ListedPrice: 500,
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryCameras: {Quantity: 5, UnitRef: "CAM1"},
			},
		},
		{
			ID: "invalid", Name: "Broken", ListedPrice: 100,
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryNVR: {Quantity: -3, UnitRef: "NVR1"},
			},
		},
		{
			ID: "high", Name: "Overpriced", ListedPrice: 2000,
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryCameras: {Quantity: 5, UnitRef: "CAM1"},
			},
		},
		{
			ID: "missing", Name: "No Price Data", ListedPrice: 1000,
			Components: map[domain.Category]domain.BOMEntry{
				domain.CategoryStorage: {Quantity: 1, UnitRef: "UNKNOWN"},
			},
		},
	}
	return defs, mapLookup(map[string]int64{"CAM1": 200, "NVR1": 300})
}

func TestGenerateReport_BatchIsolation(t *testing.T) {
	defs, lookup := reportFixture()

	report := GenerateReport(defs, lookup, DefaultTolerance())

	require.Len(t, report.Results, 5, "one malformed package must not shrink the batch")

	assert.Equal(t, domain.StatusOK, report.Results[0].Status)
	assert.Equal(t, domain.StatusTooLow, report.Results[1].Status)
	assert.Equal(t, domain.StatusMissingData, report.Results[2].Status)
	assert.Equal(t, domain.StatusTooHigh, report.Results[3].Status)
	assert.Equal(t, domain.StatusMissingData, report.Results[4].Status)

	require.Len(t, report.Results[2].Issues, 1)
	assert.Contains(t, report.Results[2].Issues[0], "negative quantity")
	assert.Equal(t, "invalid", report.Results[2].PackageID)
	assert.Equal(t, "Broken", report.Results[2].PackageName)
}

func TestGenerateReport_PreservesInputOrder(t *testing.T) {
	defs, lookup := reportFixture()

	report := GenerateReport(defs, lookup, DefaultTolerance())

	ids := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		ids = append(ids, r.PackageID)
	}
	assert.Equal(t, []string{"ok", "low", "invalid", "high", "missing"}, ids)
}

func TestGenerateReport_Summary(t *testing.T) {
	defs, lookup := reportFixture()

	report := GenerateReport(defs, lookup, DefaultTolerance())

	assert.Equal(t, domain.AuditSummary{
		Total:       5,
		OK:          1,
		TooLow:      1,
		TooHigh:     1,
		MissingData: 2,
	}, report.Summary)
}

func TestGenerateReport_Deterministic(t *testing.T) {
	defs, lookup := reportFixture()

	first := GenerateReport(defs, lookup, DefaultTolerance())
	second := GenerateReport(defs, lookup, DefaultTolerance())

	assert.Equal(t, first, second)
}

func TestGenerateReport_EmptyBatch(t *testing.T) {
	report := GenerateReport(nil, mapLookup(nil), DefaultTolerance())

	assert.Empty(t, report.Results)
	assert.Equal(t, domain.AuditSummary{}, report.Summary)
}
