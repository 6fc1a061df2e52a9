package verify

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlstn/catalog-probe/internal/client"
	"github.com/nlstn/catalog-probe/internal/fakecatalog"
)

func newSeededClient(t *testing.T, products int) *client.Client {
	t.Helper()
	fake := fakecatalog.New()
	fake.Seed(10, 20, products)
	ts := httptest.NewServer(fake)
	t.Cleanup(ts.Close)
	return client.New(ts.URL)
}

func TestSuiteTallyAndIndependence(t *testing.T) {
	c := newSeededClient(t, 50)
	var out bytes.Buffer

	s := NewSuite(c, WithOutput(&out))
	s.AddCheck("passes", "a passing check", func(ctx context.Context, c *CheckContext) error {
		return nil
	})
	s.AddCheck("fails", "a failing check", func(ctx context.Context, c *CheckContext) error {
		return Failf("metadata was wrong")
	})
	s.AddCheck("errors", "an erroring check", func(ctx context.Context, c *CheckContext) error {
		return errors.New("connection reset")
	})
	s.AddCheck("still_runs", "a check after failures", func(ctx context.Context, c *CheckContext) error {
		return nil
	})

	results := s.Run(context.Background())
	assert.Equal(t, 4, results.Total)
	assert.Equal(t, 2, results.Passed)
	assert.Equal(t, 1, results.Failed)
	assert.Equal(t, 1, results.Errored)
	assert.False(t, results.Ok())
	assert.Contains(t, out.String(), "PAGINATION_CHECK_RESULT:PASSED=2:FAILED=1:ERRORED=1:TOTAL=4")

	require.Len(t, results.Details, 4)
	assert.Equal(t, StatusPass, results.Details[0].Status)
	assert.Equal(t, StatusFail, results.Details[1].Status)
	assert.Equal(t, StatusError, results.Details[2].Status)
	assert.Equal(t, StatusPass, results.Details[3].Status)
}

func TestDefaultSuitePassesAgainstHealthyService(t *testing.T) {
	c := newSeededClient(t, 1000)
	var out bytes.Buffer

	results := DefaultSuite(c, WithOutput(&out), WithVerbose(true)).Run(context.Background())
	assert.Equal(t, results.Total, results.Passed, "failures: %s", out.String())
	assert.True(t, results.Ok())
	// The slice check logs its informational timing comparison.
	assert.Contains(t, out.String(), "slice took")
}

func TestDefaultSuiteAgainstSmallStore(t *testing.T) {
	// Page 5 at size 20 is out of range for a 50-product store; the checks
	// accept the empty-page escape hatch rather than failing.
	c := newSeededClient(t, 50)
	var out bytes.Buffer

	results := DefaultSuite(c, WithOutput(&out)).Run(context.Background())
	assert.True(t, results.Ok(), "failures: %s", out.String())
}

func TestDefaultSuiteReportsBrokenService(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "db down", http.StatusInternalServerError)
	}))
	defer ts.Close()

	var out bytes.Buffer
	results := DefaultSuite(client.New(ts.URL), WithOutput(&out)).Run(context.Background())
	assert.Zero(t, results.Passed)
	assert.Equal(t, results.Total, results.Failed+results.Errored)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PASS", StatusPass.String())
	assert.Equal(t, "FAIL", StatusFail.String())
	assert.Equal(t, "ERROR", StatusError.String())
}
