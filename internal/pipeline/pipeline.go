// Package pipeline sequences the probe's three stages: reset, seed, verify.
// The ordering is explicit: each stage produces a result value the next
// stage consumes, and a fatal classification short-circuits the rest of the
// run through the summary rather than a panic or process exit.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/nlstn/catalog-probe/internal/client"
	"github.com/nlstn/catalog-probe/internal/config"
	"github.com/nlstn/catalog-probe/internal/console"
	"github.com/nlstn/catalog-probe/internal/observability"
	"github.com/nlstn/catalog-probe/internal/seeder"
	"github.com/nlstn/catalog-probe/internal/synth"
	"github.com/nlstn/catalog-probe/internal/verify"
)

// ErrNoPrerequisites indicates product seeding cannot proceed because no
// categories or no users survived their seeding phase. Fatal: products
// require valid owner and category references.
var ErrNoPrerequisites = errors.New("catalog: no categories or users available for product synthesis")

// Summary aggregates a full run. Fatal is nil when all three stages ran to
// completion; per-record failures inside a stage do not make a run fatal.
type Summary struct {
	RunID      uuid.UUID
	Reset      *seeder.ResetStats
	Categories seeder.SeedStats
	Users      seeder.SeedStats
	Products   seeder.SeedStats
	Skipped    int
	Verify     *verify.Results
	Elapsed    time.Duration
	Fatal      error
}

// Completed reports whether the run reached the end of the verify stage.
func (s *Summary) Completed() bool { return s.Fatal == nil }

// Pipeline wires the stages together for one configured run.
type Pipeline struct {
	cfg     config.Config
	client  *client.Client
	out     io.Writer
	logger  *slog.Logger
	tracer  *observability.Tracer
	metrics *observability.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOutput redirects human-facing output.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithLogger sets the diagnostic logger for every stage.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithClient replaces the default client, mainly for tests.
func WithClient(c *client.Client) Option {
	return func(p *Pipeline) { p.client = c }
}

// New builds a Pipeline for cfg.
func New(cfg config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:     cfg,
		out:     os.Stdout,
		logger:  slog.Default(),
		tracer:  observability.NewTracer(nil),
		metrics: observability.NewMetrics(nil),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = client.New(cfg.BaseURL,
			client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			client.WithLogger(p.logger),
			client.WithTracer(p.tracer),
		)
	}
	return p
}

// Run executes reset, seed and verify in order and returns the summary.
// Connectivity is checked up front; an unreachable service aborts before
// anything is touched.
func (p *Pipeline) Run(ctx context.Context) *Summary {
	start := time.Now()
	summary := &Summary{RunID: uuid.New()}
	p.logger.Info("run starting", "run_id", summary.RunID, "base_url", p.cfg.BaseURL)

	fmt.Fprintln(p.out, console.Infof("checking connectivity to %s", p.cfg.BaseURL))
	if err := p.client.Ping(ctx); err != nil {
		summary.Fatal = err
		summary.Elapsed = time.Since(start)
		fmt.Fprintln(p.out, console.Errorf("cannot reach catalog service: %v", err))
		return summary
	}
	fmt.Fprintln(p.out, console.Success("catalog service is reachable"))

	sdr := seeder.New(p.client,
		seeder.WithOutput(p.out),
		seeder.WithLogger(p.logger),
		seeder.WithMetrics(p.metrics),
	)

	if p.cfg.SkipReset {
		fmt.Fprintln(p.out, console.Info("reset skipped, seeding on top of existing data"))
	} else {
		resetCtx, span := p.tracer.StartPhase(ctx, "reset")
		stats := sdr.Reset(resetCtx)
		observability.EndSpan(span, nil)
		summary.Reset = &stats
	}

	seedCtx, seedSpan := p.tracer.StartPhase(ctx, "seed")
	gen := synth.New(synth.SeedFromPhrase(p.cfg.Seed))

	cats, catStats := sdr.SeedCategories(seedCtx, gen.Categories())
	summary.Categories = catStats

	users, userStats := sdr.SeedUsers(seedCtx, gen.Users(p.cfg.Users))
	summary.Users = userStats

	if len(cats) == 0 || len(users) == 0 {
		observability.EndSpan(seedSpan, ErrNoPrerequisites)
		summary.Fatal = ErrNoPrerequisites
		summary.Elapsed = time.Since(start)
		fmt.Fprintln(p.out, console.Errorf("aborting: %v", ErrNoPrerequisites))
		return summary
	}

	products, skipped := gen.Products(p.cfg.Products, users, cats)
	summary.Skipped = skipped
	if skipped > 0 {
		fmt.Fprintln(p.out, console.Warnf("%d products dropped: names could not be made unique", skipped))
	}
	summary.Products = sdr.SeedProducts(seedCtx, products)
	observability.EndSpan(seedSpan, nil)

	verifyCtx, verifySpan := p.tracer.StartPhase(ctx, "verify")
	suite := verify.DefaultSuite(p.client,
		verify.WithOutput(p.out),
		verify.WithLogger(p.logger),
		verify.WithMetrics(p.metrics),
		verify.WithVerbose(p.cfg.Verbose),
	)
	summary.Verify = suite.Run(verifyCtx)
	observability.EndSpan(verifySpan, nil)

	summary.Elapsed = time.Since(start)
	p.logger.Info("run finished",
		"run_id", summary.RunID,
		"elapsed", summary.Elapsed,
		"products_created", summary.Products.Created,
		"checks_passed", summary.Verify.Passed,
		"checks_total", summary.Verify.Total,
	)
	return summary
}

// Describe renders the end-of-run report.
func (s *Summary) Describe() string {
	out := console.Header("RUN SUMMARY") + "\n"
	out += console.Infof("run id: %s", s.RunID) + "\n"
	if s.Fatal != nil {
		out += console.Errorf("run aborted: %v", s.Fatal) + "\n"
	}
	if s.Reset != nil {
		out += console.Infof("reset: %d records removed, %d failures", s.Reset.Deleted(), s.Reset.Failed) + "\n"
	}
	out += console.Infof("categories: %d created, %d failed", s.Categories.Created, s.Categories.Failed) + "\n"
	out += console.Infof("users: %d created, %d failed", s.Users.Created, s.Users.Failed) + "\n"
	out += console.Infof("products: %d created, %d failed, %d skipped (%.2f/second)",
		s.Products.Created, s.Products.Failed, s.Skipped, s.Products.Rate()) + "\n"
	if s.Verify != nil {
		out += console.Infof("checks: %d passed, %d failed, %d errored",
			s.Verify.Passed, s.Verify.Failed, s.Verify.Errored) + "\n"
	}
	out += console.Infof("elapsed: %s", s.Elapsed.Round(time.Millisecond))
	return out
}
