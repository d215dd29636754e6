package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/guardline/price-sentry/pkg/services/catalog"
)

type ImportCmd struct {
	dbPath      string
	catalogPath string
	output      io.Writer
}

func NewImportCmd(output io.Writer) *cobra.Command {
	ic := &ImportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a catalog file into the database",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.dbPath, "db", "price-sentry.db", "Path to the catalog database")
	cmd.Flags().StringVar(&ic.catalogPath, "catalog", "", "Path to the catalog YAML file")

	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	db, store, closeDB, err := openStore(ic.dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	stats, err := catalog.NewImporter(db, store).ImportFile(ctx, ic.catalogPath)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	fmt.Fprintf(ic.output, "Imported %d products and %d packages from %s\n",
		stats.Products, stats.Packages, ic.catalogPath)
	return nil
}
