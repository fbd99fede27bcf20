package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hamilton-sales/internal/config"
	"github.com/hamilton-sales/internal/db"
	"github.com/hamilton-sales/internal/geocode"
	"github.com/hamilton-sales/internal/loader"
	"github.com/hamilton-sales/internal/pipeline"
	"github.com/hamilton-sales/internal/tagger"
	"github.com/hamilton-sales/internal/web"
)

var (
	// Global database connection
	dbConn *db.Connection

	debugEnabled bool
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}
	debugEnabled = config.GetEnvBool("DEBUG", false)

	rootCmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Hamilton County sales address pipeline",
		Long:  `Resolves scraped property-sale addresses into structured components, deduplicates them by record key, and enriches parcels with geocoded coordinates`,
	}

	rootCmd.AddCommand(createResolveCmd())
	rootCmd.AddCommand(createGeocodeCmd())
	rootCmd.AddCommand(createServeCmd())
	rootCmd.AddCommand(createInitDBCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func connectDB() {
	var err error
	dbConn, err = db.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
}

func newLoader() *loader.Loader {
	return loader.New(
		dbConn.DB,
		config.GetEnv("SALES_TABLE", "sales_structured"),
		config.GetEnvInt("UPSERT_BATCH_SIZE", 500),
		debugEnabled,
	)
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			connectDB()
			defer dbConn.Close()
			fmt.Println("Database connection successful!")

			var count int
			table := config.GetEnv("SALES_TABLE", "sales_structured")
			err := dbConn.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
			if err != nil {
				log.Printf("Error counting %s records: %v", table, err)
			} else {
				fmt.Printf("Structured sale records loaded: %d\n", count)
			}
		},
	}
}

// createInitDBCmd creates the schema initialisation subcommand
func createInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the structured sales table",
		Run: func(cmd *cobra.Command, args []string) {
			connectDB()
			defer dbConn.Close()

			if err := newLoader().EnsureSchema(context.Background()); err != nil {
				log.Fatalf("Failed to initialise schema: %v", err)
			}
			fmt.Println("Schema ready")
		},
	}
}

// createResolveCmd creates the resolve subcommand
func createResolveCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "resolve [filename]",
		Short: "Resolve a scraped sales CSV into structured records",
		Long:  `Parse each sale address into components, compute record keys and row hashes, and upsert the results into Postgres`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			rows, err := pipeline.ReadSalesCSV(debugEnabled, args[0])
			if err != nil {
				log.Fatalf("Failed to read sales CSV: %v", err)
			}

			p := pipeline.New(tagger.New(), debugEnabled)
			records := p.ResolveRows(rows)

			withIssues := 0
			for _, rec := range records {
				if len(rec.Issues) > 0 {
					withIssues++
				}
			}

			fmt.Printf("\n=== Address Resolution Results ===\n")
			fmt.Printf("Rows read: %d\n", len(rows))
			fmt.Printf("Records resolved: %d\n", len(records))
			fmt.Printf("Records with issues: %d\n", withIssues)

			if dryRun {
				fmt.Println("Dry run, skipping database write")
				return
			}

			connectDB()
			defer dbConn.Close()

			l := newLoader()
			ctx := context.Background()
			if err := l.EnsureSchema(ctx); err != nil {
				log.Fatalf("Failed to initialise schema: %v", err)
			}
			n, err := l.Upsert(ctx, records)
			if err != nil {
				log.Fatalf("Failed to upsert records: %v", err)
			}
			fmt.Printf("Rows upserted: %d\n", n)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve without writing to the database")

	return cmd
}

// createGeocodeCmd creates the geocode subcommand
func createGeocodeCmd() *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "geocode",
		Short: "Geocode parcels that lack coordinates",
		Long:  `Look up forward-geocoded coordinates for every parcel still missing them, caching results so re-runs never repeat a lookup`,
		Run: func(cmd *cobra.Command, args []string) {
			apiKey := config.GetEnv("POSITIONSTACK_API_KEY", "")
			if apiKey == "" {
				log.Fatal("POSITIONSTACK_API_KEY is not set")
			}

			connectDB()
			defer dbConn.Close()

			ctx := context.Background()
			l := newLoader()

			targets, err := l.PendingGeocodes(ctx)
			if err != nil {
				log.Fatalf("Failed to list pending parcels: %v", err)
			}
			if len(targets) == 0 {
				fmt.Println("No parcels pending geocoding")
				return
			}

			cache := geocode.NewCache(newGeocodeStore())
			if err := cache.Load(ctx); err != nil {
				log.Fatalf("Failed to load geocode cache: %v", err)
			}

			client := geocode.NewClient(
				apiKey,
				config.GetEnv("POSITIONSTACK_URL", ""),
				config.GetEnvFloat("GEOCODE_RATE_PER_SEC", 5),
			)

			enricher := geocode.NewEnricher(client, cache, batchSize, debugEnabled)
			results, err := enricher.Run(ctx, targets)
			if err != nil {
				log.Fatalf("Geocoding failed: %v", err)
			}

			if err := cache.Flush(ctx); err != nil {
				log.Printf("Failed to flush geocode cache: %v", err)
			}

			if err := l.ApplyGeocodes(ctx, results); err != nil {
				log.Fatalf("Failed to apply geocodes: %v", err)
			}

			resolved := 0
			for _, r := range results {
				if r.Resolved() {
					resolved++
				}
			}

			fmt.Printf("\n=== Geocoding Results ===\n")
			fmt.Printf("Parcels pending: %d\n", len(targets))
			fmt.Printf("Lookups applied: %d\n", len(results))
			fmt.Printf("Coordinates resolved: %d\n", resolved)
			fmt.Printf("Cache entries: %d\n", cache.Len())
		},
	}

	cmd.Flags().IntVar(&batchSize, "batch-size", 10, "Parcels per geocoding batch")

	return cmd
}

func newGeocodeStore() geocode.Store {
	switch config.GetEnv("GEOCODE_CACHE_BACKEND", "file") {
	case "redis":
		return geocode.NewRedisStore(
			config.GetEnv("REDIS_ADDR", "localhost:6379"),
			config.GetEnv("REDIS_PASSWORD", ""),
			config.GetEnvInt("REDIS_DB", 0),
		)
	default:
		return geocode.NewFileStore(config.GetEnv("GEOCODE_CACHE_FILE", "data/geocode_cache.json"))
	}
}

// createServeCmd creates the web server subcommand
func createServeCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolved sales data over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := web.DefaultConfig()
			if configFile != "" {
				loaded, err := web.LoadConfig(configFile)
				if err != nil {
					log.Fatalf("Failed to load config %s: %v", configFile, err)
				}
				cfg = loaded
			}

			server, err := web.NewServer(cfg)
			if err != nil {
				log.Fatalf("Failed to create server: %v", err)
			}
			if err := server.Start(); err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "Path to JSON server configuration")

	return cmd
}
