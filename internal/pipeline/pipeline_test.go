package pipeline

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlstn/catalog-probe/internal/client"
	"github.com/nlstn/catalog-probe/internal/config"
	"github.com/nlstn/catalog-probe/internal/fakecatalog"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		BaseURL:  baseURL,
		Users:    10,
		Products: 300,
		Seed:     "pipeline-test",
		Timeout:  30 * time.Second,
	}
}

func TestRunEndToEnd(t *testing.T) {
	fake := fakecatalog.New()
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	p := New(testConfig(ts.URL), WithOutput(&out))
	summary := p.Run(context.Background())

	require.True(t, summary.Completed(), "fatal: %v", summary.Fatal)
	assert.NotEqual(t, summary.RunID.String(), "00000000-0000-0000-0000-000000000000")

	require.NotNil(t, summary.Reset)
	assert.Zero(t, summary.Reset.Deleted(), "nothing to remove from a fresh store")

	assert.Equal(t, 10, summary.Categories.Created)
	assert.Equal(t, 10, summary.Users.Created)
	assert.Equal(t, 300, summary.Products.Created)
	assert.Zero(t, summary.Skipped)

	cats, users, prods := fake.Counts()
	assert.Equal(t, 10, cats)
	assert.Equal(t, 10, users)
	assert.Equal(t, 300, prods)

	require.NotNil(t, summary.Verify)
	assert.True(t, summary.Verify.Ok(), "output: %s", out.String())
	assert.Contains(t, out.String(), "PAGINATION_CHECK_RESULT:")
	assert.Positive(t, summary.Elapsed)
}

func TestRunResetsExistingData(t *testing.T) {
	fake := fakecatalog.New()
	fake.Seed(3, 4, 25)
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	summary := New(testConfig(ts.URL), WithOutput(&out)).Run(context.Background())

	require.True(t, summary.Completed(), "fatal: %v", summary.Fatal)
	require.NotNil(t, summary.Reset)
	assert.Equal(t, 25, summary.Reset.ProductsDeleted)
	assert.Equal(t, 4, summary.Reset.UsersDeleted)
	assert.Equal(t, 3, summary.Reset.CategoriesDeleted)

	// Only this run's data remains.
	cats, users, prods := fake.Counts()
	assert.Equal(t, 10, cats)
	assert.Equal(t, 10, users)
	assert.Equal(t, 300, prods)
}

func TestRunSkipReset(t *testing.T) {
	fake := fakecatalog.New()
	fake.Seed(3, 4, 25)
	ts := httptest.NewServer(fake)
	defer ts.Close()

	cfg := testConfig(ts.URL)
	cfg.SkipReset = true

	var out bytes.Buffer
	summary := New(cfg, WithOutput(&out)).Run(context.Background())

	require.True(t, summary.Completed(), "fatal: %v", summary.Fatal)
	assert.Nil(t, summary.Reset)
	assert.Contains(t, out.String(), "reset skipped")

	_, _, prods := fake.Counts()
	assert.Equal(t, 25+300, prods, "pre-existing products survive a skip-reset run")
}

func TestRunAbortsWhenUnreachable(t *testing.T) {
	var out bytes.Buffer
	summary := New(testConfig("http://127.0.0.1:1"), WithOutput(&out)).Run(context.Background())

	assert.False(t, summary.Completed())
	assert.ErrorIs(t, summary.Fatal, client.ErrUnreachable)
	assert.Nil(t, summary.Reset, "nothing runs after a failed connectivity check")
	assert.Nil(t, summary.Verify)
	assert.Contains(t, out.String(), "cannot reach catalog service")
}

func TestRunAbortsWithoutPrerequisites(t *testing.T) {
	fake := fakecatalog.New()
	fake.FailCreates = func(kind string) bool { return kind == "user" }
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	summary := New(testConfig(ts.URL), WithOutput(&out)).Run(context.Background())

	assert.False(t, summary.Completed())
	assert.ErrorIs(t, summary.Fatal, ErrNoPrerequisites)
	assert.Equal(t, 10, summary.Categories.Created)
	assert.Zero(t, summary.Users.Created)
	assert.Zero(t, summary.Products.Created)
	assert.Nil(t, summary.Verify)
}

func TestSummaryDescribe(t *testing.T) {
	fake := fakecatalog.New()
	ts := httptest.NewServer(fake)
	defer ts.Close()

	var out bytes.Buffer
	summary := New(testConfig(ts.URL), WithOutput(&out)).Run(context.Background())
	require.True(t, summary.Completed(), "fatal: %v", summary.Fatal)

	report := summary.Describe()
	assert.Contains(t, report, "RUN SUMMARY")
	assert.Contains(t, report, summary.RunID.String())
	assert.Contains(t, report, "products: 300 created")
	assert.Contains(t, report, "checks:")
	assert.NotContains(t, report, "run aborted")
}

func TestSummaryDescribeFatal(t *testing.T) {
	summary := New(testConfig("http://127.0.0.1:1")).Run(context.Background())
	require.False(t, summary.Completed())
	assert.Contains(t, summary.Describe(), "run aborted")
}
