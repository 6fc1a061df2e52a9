package verify

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/client"
)

func view(name, price string, stock int, createdAt string) catalog.ProductView {
	return catalog.ProductView{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		CreatedAt: createdAt,
	}
}

func TestAssertPageConsistent(t *testing.T) {
	content := make([]catalog.ProductView, 10)

	tests := []struct {
		name    string
		page    catalog.Page
		number  int
		size    int
		wantErr string
	}{
		{
			name: "consistent first page",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 100,
				NumberOfElements: 10, First: true, Last: false,
			},
			number: 0, size: 10,
		},
		{
			name: "consistent last page",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 100,
				NumberOfElements: 10, First: false, Last: true,
			},
			number: 99, size: 10,
		},
		{
			name: "out-of-range page comes back empty",
			page: catalog.Page{
				Content: nil, TotalElements: 50, TotalPages: 3,
				NumberOfElements: 0, First: false, Last: true,
			},
			number: 5, size: 20,
		},
		{
			name: "too many elements for the requested size",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 200,
				NumberOfElements: 10, First: true,
			},
			number: 0, size: 5,
			wantErr: "exceeds requested size",
		},
		{
			name: "first flag wrong",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 100,
				NumberOfElements: 10, First: false,
			},
			number: 0, size: 10,
			wantErr: "first is false",
		},
		{
			name: "last flag wrong",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 100,
				NumberOfElements: 10, First: false, Last: true,
			},
			number: 50, size: 10,
			wantErr: "last is true",
		},
		{
			name: "totalPages inconsistent",
			page: catalog.Page{
				Content: content, TotalElements: 1000, TotalPages: 99,
				NumberOfElements: 10, First: true,
			},
			number: 0, size: 10,
			wantErr: "totalPages 99 inconsistent",
		},
		{
			name: "content length disagrees with numberOfElements",
			page: catalog.Page{
				Content: content[:9], TotalElements: 1000, TotalPages: 100,
				NumberOfElements: 10, First: true,
			},
			number: 0, size: 10,
			wantErr: "content holds 9 elements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := assertPageConsistent(tt.page, tt.number, tt.size)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			var f *Failure
			assert.ErrorAs(t, err, &f, "consistency violations are failures, not errors")
		})
	}
}

func TestAssertSorted(t *testing.T) {
	asc := []catalog.ProductView{
		view("Alpha", "10.00", 1, "2025-06-01T12:00:00"),
		view("beta", "20.00", 2, "2025-06-01T12:00:01"),
		view("Gamma", "20.00", 3, "2025-06-01T12:00:02"),
	}

	assert.NoError(t, assertSorted(asc, "name", "asc"))
	assert.NoError(t, assertSorted(asc, "price", "asc"))
	assert.NoError(t, assertSorted(asc, "stock", "asc"))
	assert.NoError(t, assertSorted(asc, "createdAt", "asc"))

	assert.Error(t, assertSorted(asc, "price", "desc"))
	assert.Error(t, assertSorted(asc, "stock", "desc"))

	desc := []catalog.ProductView{
		view("Z", "30.00", 9, "2025-06-01T12:00:09"),
		view("Y", "30.00", 8, "2025-06-01T12:00:08"),
		view("X", "10.00", 7, "2025-06-01T12:00:07"),
	}
	assert.NoError(t, assertSorted(desc, "price", "desc"))
	assert.NoError(t, assertSorted(desc, "createdAt", "desc"))

	assert.Error(t, assertSorted(asc, "flavor", "asc"), "unknown sort field")
	assert.NoError(t, assertSorted(nil, "price", "asc"), "empty page is trivially sorted")
}

// The thousand-product scenario: page 0 at size 10 reports ten elements,
// first page, a thousand total elements across one hundred pages.
func TestThousandProductScenario(t *testing.T) {
	c := newSeededClient(t, 1000)
	ctx := context.Background()

	res, err := c.QueryProducts(ctx, client.Query{Variant: client.VariantPaged, Page: 0, Size: 10})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, 10, res.Page.NumberOfElements)
	assert.True(t, res.Page.First)
	assert.False(t, res.Page.Last)
	assert.Equal(t, int64(1000), res.Page.TotalElements)
	assert.Equal(t, 100, res.Page.TotalPages)
	require.NoError(t, assertPageConsistent(res.Page, 0, 10))
}

func TestSortScenarioPriceDesc(t *testing.T) {
	c := newSeededClient(t, 1000)

	res, err := c.QueryProducts(context.Background(), client.Query{
		Variant: client.VariantPaged, Page: 0, Size: 5, Sort: "price,desc",
	})
	require.NoError(t, err)
	require.Len(t, res.Page.Content, 5)
	require.NoError(t, assertSorted(res.Page.Content, "price", "desc"))
}

func TestFilterScenarioPriceRange(t *testing.T) {
	c := newSeededClient(t, 1000)
	ctx := context.Background()

	total, err := unfilteredTotal(ctx, c)
	require.NoError(t, err)
	require.Equal(t, int64(1000), total)

	min := decimal.NewFromInt(500)
	max := decimal.NewFromInt(1000)
	res, err := c.QueryProducts(ctx, client.Query{
		Variant: client.VariantSearch, Page: 0, Size: 50, MinPrice: &min, MaxPrice: &max,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Content)
	for _, p := range res.Page.Content {
		assert.False(t, p.Price.LessThan(min))
		assert.False(t, p.Price.GreaterThan(max))
	}
	assert.LessOrEqual(t, res.Page.TotalElements, total)
}

func TestOwnerScenario(t *testing.T) {
	c := newSeededClient(t, 200)
	ctx := context.Background()

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	res, err := c.QueryProducts(ctx, client.Query{
		Variant: client.VariantByOwner, OwnerID: users[0].ID, Page: 0, Size: 5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Page.Content)
	for _, p := range res.Page.Content {
		assert.Equal(t, users[0].ID, p.OwnerID())
	}
}
