package audit

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/guardline/price-sentry/pkg/adapters"
	"github.com/guardline/price-sentry/pkg/models/api"
	"github.com/guardline/price-sentry/pkg/models/domain"
	auditsvc "github.com/guardline/price-sentry/pkg/services/audit"
	"github.com/guardline/price-sentry/pkg/services/catalog"
)

type Handler struct {
	catalog   catalog.Explorer
	tolerance auditsvc.Tolerance
}

func NewHandler(catalogExplorer catalog.Explorer, tolerance auditsvc.Tolerance) *Handler {
	return &Handler{
		catalog:   catalogExplorer,
		tolerance: tolerance,
	}
}

func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	defs, err := h.catalog.ListPackages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list packages")
		http.Error(w, "failed to list packages", http.StatusInternalServerError)
		return
	}

	response := make([]api.Package, 0, len(defs))
	for _, def := range defs {
		response = append(response, adapters.MapPackageDefinitionDomainToApi(def))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode packages")
	}
}

func (h *Handler) GetAuditReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	tolerance, err := h.toleranceFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	defs, err := h.catalog.ListPackages(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list packages")
		http.Error(w, "failed to list packages", http.StatusInternalServerError)
		return
	}

	lookup, err := h.catalog.Lookup(ctx, defs)
	if err != nil {
		logger.Error().Err(err).Msg("failed to prefetch unit prices")
		http.Error(w, "failed to load catalog prices", http.StatusInternalServerError)
		return
	}

	report := auditsvc.GenerateReport(defs, lookup, tolerance)

	if err := json.NewEncoder(w).Encode(adapters.MapAuditReportDomainToApi(report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode audit report")
	}
}

func (h *Handler) GetPackageAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	packageID := chi.URLParam(r, "package")

	tolerance, err := h.toleranceFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	def, found, err := h.catalog.GetPackage(ctx, packageID)
	if err != nil {
		logger.Error().Err(err).Str("package", packageID).Msg("failed to load package")
		http.Error(w, "failed to load package", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, fmt.Sprintf("unknown package %q", packageID), http.StatusNotFound)
		return
	}

	lookup, err := h.catalog.Lookup(ctx, []domain.PackageDefinition{def})
	if err != nil {
		logger.Error().Err(err).Str("package", packageID).Msg("failed to prefetch unit prices")
		http.Error(w, "failed to load catalog prices", http.StatusInternalServerError)
		return
	}

	// Single-package audits go through the batch path so a malformed
	// definition still yields a missing-data result instead of an error.
	report := auditsvc.GenerateReport([]domain.PackageDefinition{def}, lookup, tolerance)

	if err := json.NewEncoder(w).Encode(adapters.MapAuditResultDomainToApi(report.Results[0])); err != nil {
		logger.Error().Err(err).Str("package", packageID).Msg("failed to encode audit result")
	}
}

func (h *Handler) toleranceFromQuery(r *http.Request) (auditsvc.Tolerance, error) {
	tolerance := h.tolerance

	low, err := parseToleranceParam(r, "low", tolerance.LowPercent)
	if err != nil {
		return auditsvc.Tolerance{}, err
	}
	high, err := parseToleranceParam(r, "high", tolerance.HighPercent)
	if err != nil {
		return auditsvc.Tolerance{}, err
	}

	tolerance.LowPercent = low
	tolerance.HighPercent = high
	return tolerance, nil
}

func parseToleranceParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid '%s' tolerance. Expected a positive number", name)
	}
	return value, nil
}
