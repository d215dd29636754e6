package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/guardline/price-sentry/pkg/runtime/terminal/export"
	"github.com/guardline/price-sentry/pkg/services/audit"
)

type AuditCmd struct {
	dbPath   string
	low      float64
	high     float64
	reporter *export.Reporter
}

func NewAuditCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AuditCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit package prices against catalog costs",
		RunE:  ac.run,
	}

	defaults := audit.DefaultTolerance()
	cmd.Flags().StringVar(&ac.dbPath, "db", "price-sentry.db", "Path to the catalog database")
	cmd.Flags().Float64Var(&ac.low, "low", defaults.LowPercent, "Percent below the calculated price to flag as too-low")
	cmd.Flags().Float64Var(&ac.high, "high", defaults.HighPercent, "Percent above the calculated price to flag as too-high")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	if ac.low <= 0 || ac.high <= 0 {
		return fmt.Errorf("tolerance thresholds must be positive, got low=%v high=%v", ac.low, ac.high)
	}

	explorer, closeDB, err := openExplorer(ac.dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	defs, err := explorer.ListPackages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load package definitions: %w", err)
	}

	lookup, err := explorer.Lookup(ctx, defs)
	if err != nil {
		return fmt.Errorf("failed to load catalog prices: %w", err)
	}

	report := audit.GenerateReport(defs, lookup, audit.Tolerance{
		LowPercent:  ac.low,
		HighPercent: ac.high,
	})

	return ac.reporter.Handle(&report)
}
