package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/guardline/price-sentry/pkg/server"
	"github.com/guardline/price-sentry/pkg/services/audit"
	"github.com/guardline/price-sentry/pkg/services/catalog"
	"github.com/guardline/price-sentry/pkg/store/duckdb"
	catalogstore "github.com/guardline/price-sentry/pkg/store/duckdb/catalog"
)

var (
	dbPath  string
	cfgPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Price Sentry",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&dbPath, "db", "price-sentry.db", "Path to the catalog database")
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to the audit config file (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	tolerance := audit.DefaultTolerance()
	if cfgPath != "" {
		cfg, err := audit.LoadConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load audit config: %w", err)
		}
		tolerance = cfg.Tolerance
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: dbPath})
	if err != nil {
		return fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	store, err := catalogstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create catalog store: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(server.Config{
		Addr:      net.JoinHostPort(host, port),
		Tolerance: tolerance,
		Dependencies: server.Dependencies{
			Catalog: catalog.NewExplorer(store),
			Logger:  logger,
		},
	})

	return api.Start()
}
