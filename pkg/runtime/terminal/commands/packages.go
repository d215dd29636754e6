package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

type PackagesCmd struct {
	dbPath string
	output io.Writer
}

func NewPackagesCmd(output io.Writer) *cobra.Command {
	pc := &PackagesCmd{output: output}
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List known packages",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.dbPath, "db", "price-sentry.db", "Path to the catalog database")

	return cmd
}

func (pc *PackagesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	explorer, closeDB, err := openExplorer(pc.dbPath)
	if err != nil {
		return err
	}
	defer closeDB()

	defs, err := explorer.ListPackages(ctx)
	if err != nil {
		return fmt.Errorf("failed to load package definitions: %w", err)
	}

	for _, def := range defs {
		fmt.Fprintf(pc.output, "%s\t%s\t%d\t%d components\n",
			def.ID, def.Name, def.ListedPrice, len(def.Components))
	}

	return nil
}
