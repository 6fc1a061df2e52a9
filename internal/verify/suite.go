// Package verify is the pagination verification harness: a fixed battery of
// parameterized read-queries whose responses are checked against the
// page-metadata contract of the remote catalog service. Checks are
// independent; one failing never blocks the rest, and the suite produces a
// structured pass/fail/error tally rather than a single boolean.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nlstn/catalog-probe/internal/client"
	"github.com/nlstn/catalog-probe/internal/console"
	"github.com/nlstn/catalog-probe/internal/observability"
)

// Status is the outcome of one check.
type Status int

const (
	// StatusPass means the response satisfied every assertion.
	StatusPass Status = iota
	// StatusFail means the service answered but violated an assertion.
	StatusFail
	// StatusError means the query itself failed (transport or decode).
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Failure is an assertion violation. Checks return it (via Failf) to
// distinguish a misbehaving service from a query that never completed.
type Failure struct {
	Reason string
}

func (e *Failure) Error() string { return e.Reason }

// Failf builds a Failure with printf formatting.
func Failf(format string, args ...any) error {
	return &Failure{Reason: fmt.Sprintf(format, args...)}
}

// Check is one verification query with its assertions.
type Check struct {
	Name        string
	Description string
	Fn          func(ctx context.Context, c *CheckContext) error
}

// CheckContext gives a check access to the client and informational output.
type CheckContext struct {
	Client *client.Client
	out    io.Writer
}

// Logf emits an informational line attributed to the running check. Used
// for data that is reported but never asserted, like timing comparisons.
func (c *CheckContext) Logf(format string, args ...any) {
	fmt.Fprintln(c.out, console.Infof(format, args...))
}

// Detail records the outcome of one check.
type Detail struct {
	Name   string
	Status Status
	Err    string
}

// Results is the suite tally.
type Results struct {
	Total   int
	Passed  int
	Failed  int
	Errored int
	Details []Detail
}

// Ok reports whether every check passed.
func (r *Results) Ok() bool {
	return r.Failed == 0 && r.Errored == 0
}

// Suite runs a battery of checks against one catalog service.
type Suite struct {
	Name    string
	checks  []Check
	client  *client.Client
	out     io.Writer
	logger  *slog.Logger
	metrics *observability.Metrics
	verbose bool
}

// Option configures a Suite.
type Option func(*Suite)

// WithOutput redirects the suite's human-facing output.
func WithOutput(w io.Writer) Option {
	return func(s *Suite) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Suite) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Suite) { s.metrics = m }
}

// WithVerbose echoes passing checks as well as failing ones.
func WithVerbose(v bool) Option {
	return func(s *Suite) { s.verbose = v }
}

// NewSuite creates an empty suite bound to c.
func NewSuite(c *client.Client, opts ...Option) *Suite {
	s := &Suite{
		Name:    "pagination verification",
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

// AddCheck appends a check to the suite.
func (s *Suite) AddCheck(name, description string, fn func(ctx context.Context, c *CheckContext) error) {
	s.checks = append(s.checks, Check{Name: name, Description: description, Fn: fn})
}

// Run executes every check in order and returns the tally. A check's
// failure or error never prevents the remaining checks from running.
func (s *Suite) Run(ctx context.Context) *Results {
	results := &Results{}
	fmt.Fprintln(s.out, console.Header("PAGINATION VERIFICATION"))
	fmt.Fprintln(s.out, console.Infof("running %d checks against %s", len(s.checks), s.client.BaseURL()))

	for _, check := range s.checks {
		results.Total++
		cctx := &CheckContext{Client: s.client, out: s.out}

		err := check.Fn(ctx, cctx)
		switch {
		case err == nil:
			results.Passed++
			results.Details = append(results.Details, Detail{Name: check.Description, Status: StatusPass})
			s.metrics.RecordCheck(ctx, "pass")
			if s.verbose {
				fmt.Fprintln(s.out, console.Successf("PASS: %s", check.Description))
			}
		case isFailure(err):
			results.Failed++
			results.Details = append(results.Details, Detail{Name: check.Description, Status: StatusFail, Err: err.Error()})
			s.metrics.RecordCheck(ctx, "fail")
			s.logger.Warn("check failed", "check", check.Name, "error", err)
			fmt.Fprintln(s.out, console.Errorf("FAIL: %s\n        %s", check.Description, err.Error()))
		default:
			results.Errored++
			results.Details = append(results.Details, Detail{Name: check.Description, Status: StatusError, Err: err.Error()})
			s.metrics.RecordCheck(ctx, "error")
			s.logger.Warn("check errored", "check", check.Name, "error", err)
			fmt.Fprintln(s.out, console.Errorf("ERROR: %s\n        %s", check.Description, err.Error()))
		}
	}

	s.printSummary(results)
	return results
}

func isFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

func (s *Suite) printSummary(r *Results) {
	fmt.Fprintln(s.out)
	fmt.Fprintf(s.out, "PAGINATION_CHECK_RESULT:PASSED=%d:FAILED=%d:ERRORED=%d:TOTAL=%d\n",
		r.Passed, r.Failed, r.Errored, r.Total)
	if r.Ok() {
		fmt.Fprintln(s.out, console.Success("all pagination checks passed"))
		return
	}
	fmt.Fprintln(s.out, console.Errorf("%d of %d checks did not pass", r.Failed+r.Errored, r.Total))
}
