// Command catalogprobe seeds a remote catalog service with synthetic
// categories, users and products, then verifies the service's paginated
// query surface: page metadata, sorting, filtering, slice retrieval and
// owner-scoped retrieval.
//
// Configuration comes from the environment (CATALOG_* variables) with
// command-line flags taking precedence. The exit code reflects completion
// of the run, not full success: per-record failures are reported in the
// summary but only a fatal condition (unreachable service, missing
// prerequisites) exits non-zero.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nlstn/catalog-probe/internal/config"
	"github.com/nlstn/catalog-probe/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	serverURL := flag.String("server", cfg.BaseURL, "Catalog service URL, including the API prefix")
	users := flag.Int("users", cfg.Users, "Number of users to create")
	products := flag.Int("products", cfg.Products, "Number of products to create")
	seed := flag.String("seed", cfg.Seed, "Seed phrase for deterministic generation (empty = random)")
	skipReset := flag.Bool("skip-reset", cfg.SkipReset, "Skip the reset phase and seed on top of existing data")
	timeout := flag.Duration("timeout", cfg.Timeout, "Per-request timeout")
	verbose := flag.Bool("verbose", cfg.Verbose, "Show all check results, not only failures")
	flag.Parse()

	cfg.BaseURL = *serverURL
	cfg.Users = *users
	cfg.Products = *products
	cfg.Seed = *seed
	cfg.SkipReset = *skipReset
	cfg.Timeout = *timeout
	cfg.Verbose = *verbose

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Verbose),
	}))

	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════╗")
	fmt.Println("║     Catalog Pagination Probe                           ║")
	fmt.Println("╚════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Server URL: %s\n", cfg.BaseURL)
	fmt.Printf("Seed data:  %d users, %d products\n", cfg.Users, cfg.Products)
	if cfg.Seed != "" {
		fmt.Printf("Seed phrase: %q\n", cfg.Seed)
	}
	if cfg.SkipReset {
		fmt.Println("Reset: SKIPPED")
	}
	fmt.Println()

	ctx := context.Background()
	start := time.Now()

	summary := pipeline.New(cfg, pipeline.WithLogger(logger)).Run(ctx)
	fmt.Println(summary.Describe())

	if !summary.Completed() {
		logger.Error("run aborted", "error", summary.Fatal, "after", time.Since(start))
		os.Exit(1)
	}
}

func logLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
