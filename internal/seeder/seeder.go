// Package seeder drains and repopulates the remote catalog. The reset
// procedure deletes children before parents (products, then users, then
// categories); the seed phases create categories, users and products in
// that order so later phases can reference earlier identifiers. Every
// per-record failure is counted and logged, never retried, and never
// aborts its batch.
package seeder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/client"
	"github.com/nlstn/catalog-probe/internal/console"
	"github.com/nlstn/catalog-probe/internal/observability"
)

// progressEvery controls how often product seeding reports its rate.
const progressEvery = 100

// Seeder drives the reset and seed phases against one catalog service.
type Seeder struct {
	client  *client.Client
	out     io.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithOutput redirects human-facing progress output.
func WithOutput(w io.Writer) Option {
	return func(s *Seeder) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Seeder) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Seeder) { s.metrics = m }
}

// New creates a Seeder talking through c.
func New(c *client.Client, opts ...Option) *Seeder {
	s := &Seeder{
		client:  c,
		out:     os.Stdout,
		logger:  slog.Default(),
		metrics: observability.NewMetrics(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResetStats tallies one reset pass. A stage that found nothing to delete
// is a no-op, not an error.
type ResetStats struct {
	ProductsDeleted   int
	UsersDeleted      int
	CategoriesDeleted int
	Failed            int
}

// Deleted returns the total number of records removed.
func (r ResetStats) Deleted() int {
	return r.ProductsDeleted + r.UsersDeleted + r.CategoriesDeleted
}

// Reset drains the remote store in dependency order. Each stage is
// best-effort: enumeration or per-record failures are logged and counted
// but the following stages still run.
func (s *Seeder) Reset(ctx context.Context) ResetStats {
	fmt.Fprintln(s.out, console.Header("RESETTING REMOTE CATALOG"))
	var stats ResetStats

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("reset: list products failed", "error", err)
		fmt.Fprintln(s.out, console.Warnf("could not enumerate products: %v", err))
		stats.Failed++
	}
	for _, p := range products {
		if err := s.client.DeleteProduct(ctx, p.ID); err != nil {
			s.logger.Warn("reset: delete product failed", "id", p.ID, "error", err)
			stats.Failed++
			s.metrics.RecordDelete(ctx, "product", false)
			continue
		}
		stats.ProductsDeleted++
		s.metrics.RecordDelete(ctx, "product", true)
	}

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		s.logger.Warn("reset: list users failed", "error", err)
		fmt.Fprintln(s.out, console.Warnf("could not enumerate users: %v", err))
		stats.Failed++
	}
	for _, u := range users {
		if err := s.client.DeleteUser(ctx, u.ID); err != nil {
			s.logger.Warn("reset: delete user failed", "id", u.ID, "error", err)
			stats.Failed++
			s.metrics.RecordDelete(ctx, "user", false)
			continue
		}
		stats.UsersDeleted++
		s.metrics.RecordDelete(ctx, "user", true)
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		s.logger.Warn("reset: list categories failed", "error", err)
		fmt.Fprintln(s.out, console.Warnf("could not enumerate categories: %v", err))
		stats.Failed++
	}
	for _, c := range categories {
		if err := s.client.DeleteCategory(ctx, c.ID); err != nil {
			s.logger.Warn("reset: delete category failed", "id", c.ID, "error", err)
			stats.Failed++
			s.metrics.RecordDelete(ctx, "category", false)
			continue
		}
		stats.CategoriesDeleted++
		s.metrics.RecordDelete(ctx, "category", true)
	}

	fmt.Fprintln(s.out, console.Infof("reset removed %d products, %d users, %d categories (%d failures)",
		stats.ProductsDeleted, stats.UsersDeleted, stats.CategoriesDeleted, stats.Failed))
	return stats
}

// SeedStats tallies one seeding phase.
type SeedStats struct {
	Created int
	Failed  int
	Elapsed time.Duration
}

// Rate returns created records per second over the elapsed wall time.
func (s SeedStats) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Created) / s.Elapsed.Seconds()
}

// SeedCategories creates the given categories and returns the subset that
// succeeded, with their remote identifiers filled in. A failed creation
// skips that category; products are later distributed only across the
// survivors.
func (s *Seeder) SeedCategories(ctx context.Context, cats []catalog.Category) ([]catalog.Category, SeedStats) {
	fmt.Fprintln(s.out, console.Header("CREATING CATEGORIES"))
	start := time.Now()
	var stats SeedStats
	createdCats := make([]catalog.Category, 0, len(cats))

	for _, cat := range cats {
		id, err := s.client.CreateCategory(ctx, cat)
		if err != nil {
			s.logger.Warn("seed: create category failed", "name", cat.Name, "error", err)
			fmt.Fprintln(s.out, console.Errorf("category %q: %v", cat.Name, err))
			stats.Failed++
			s.metrics.RecordCreate(ctx, "category", false)
			continue
		}
		cat.ID = id
		createdCats = append(createdCats, cat)
		stats.Created++
		s.metrics.RecordCreate(ctx, "category", true)
		fmt.Fprintln(s.out, console.Successf("category created: %s (id %d)", cat.Name, id))
	}

	stats.Elapsed = time.Since(start)
	fmt.Fprintln(s.out, console.Infof("categories available: %d", stats.Created))
	return createdCats, stats
}

// SeedUsers creates the given users and returns the successful subset with
// identifiers filled in.
func (s *Seeder) SeedUsers(ctx context.Context, users []catalog.User) ([]catalog.User, SeedStats) {
	fmt.Fprintln(s.out, console.Header("CREATING USERS"))
	start := time.Now()
	var stats SeedStats
	createdUsers := make([]catalog.User, 0, len(users))

	for _, u := range users {
		id, err := s.client.CreateUser(ctx, u)
		if err != nil {
			s.logger.Warn("seed: create user failed", "email", u.Email, "error", err)
			fmt.Fprintln(s.out, console.Errorf("user %s: %v", u.Email, err))
			stats.Failed++
			s.metrics.RecordCreate(ctx, "user", false)
			continue
		}
		u.ID = id
		createdUsers = append(createdUsers, u)
		stats.Created++
		s.metrics.RecordCreate(ctx, "user", true)
		fmt.Fprintln(s.out, console.Successf("user created: %s (%s) - id %d", u.Name, u.Email, id))
	}

	stats.Elapsed = time.Since(start)
	fmt.Fprintln(s.out, console.Infof("users available: %d", stats.Created))
	return createdUsers, stats
}

// SeedProducts creates the given products, reporting a running rate every
// hundred creations and a final products-per-second figure.
func (s *Seeder) SeedProducts(ctx context.Context, products []catalog.Product) SeedStats {
	fmt.Fprintln(s.out, console.Header(fmt.Sprintf("CREATING %d PRODUCTS", len(products))))
	start := time.Now()
	var stats SeedStats

	for i, p := range products {
		if _, err := s.client.CreateProduct(ctx, p); err != nil {
			s.logger.Warn("seed: create product failed", "name", p.Name, "error", err)
			stats.Failed++
			s.metrics.RecordCreate(ctx, "product", false)
		} else {
			stats.Created++
			s.metrics.RecordCreate(ctx, "product", true)
		}

		if (i+1)%progressEvery == 0 {
			elapsed := time.Since(start)
			rate := float64(stats.Created) / elapsed.Seconds()
			fmt.Fprintln(s.out, console.Infof("progress: %d/%d products (%.1f products/second)",
				i+1, len(products), rate))
		}
	}

	stats.Elapsed = time.Since(start)
	fmt.Fprintln(s.out, console.Successf("products created: %d/%d", stats.Created, len(products)))
	fmt.Fprintln(s.out, console.Infof("total time: %.2f seconds", stats.Elapsed.Seconds()))
	fmt.Fprintln(s.out, console.Infof("average rate: %.2f products/second", stats.Rate()))
	return stats
}
