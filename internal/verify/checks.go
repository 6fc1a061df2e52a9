package verify

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/client"
)

// DefaultSuite builds the full battery: basic pagination, sorting, filters,
// slice shape and owner scoping.
func DefaultSuite(c *client.Client, opts ...Option) *Suite {
	s := NewSuite(c, opts...)
	s.AddBasicPaginationChecks()
	s.AddSortChecks()
	s.AddFilterChecks()
	s.AddSliceChecks()
	s.AddOwnerChecks()
	return s
}

// pageFields are the metadata keys the paged variant must expose.
var pageFields = []string{"totalElements", "totalPages", "numberOfElements", "first", "last"}

// sliceFields are the metadata keys the slice variant must expose.
var sliceFields = []string{"hasNext", "hasPrevious", "first", "last"}

// AddBasicPaginationChecks registers the (page, size) matrix with the
// self-consistency assertions on page metadata.
func (s *Suite) AddBasicPaginationChecks() {
	matrix := []struct {
		page, size int
		desc       string
	}{
		{0, 10, "first page, 10 elements"},
		{0, 5, "first page, 5 elements"},
		{5, 20, "page 5, 20 elements"},
		{0, 50, "first page, 50 elements"},
	}

	for _, m := range matrix {
		page, size := m.page, m.size
		s.AddCheck(
			fmt.Sprintf("pagination_page%d_size%d", page, size),
			fmt.Sprintf("basic pagination: %s", m.desc),
			func(ctx context.Context, c *CheckContext) error {
				res, err := c.Client.QueryProducts(ctx, client.Query{
					Variant: client.VariantPaged,
					Page:    page,
					Size:    size,
				})
				if err != nil {
					return err
				}
				if res.Status != 200 {
					return Failf("status %d (expected 200)", res.Status)
				}
				for _, field := range pageFields {
					if !res.Fields.Has(field) {
						return Failf("page metadata missing %q", field)
					}
				}
				return assertPageConsistent(res.Page, page, size)
			},
		)
	}
}

// assertPageConsistent checks the page-metadata contract for one response.
func assertPageConsistent(pg catalog.Page, page, size int) error {
	if pg.NumberOfElements > size {
		return Failf("numberOfElements %d exceeds requested size %d", pg.NumberOfElements, size)
	}
	if len(pg.Content) != pg.NumberOfElements {
		return Failf("content holds %d elements but numberOfElements is %d", len(pg.Content), pg.NumberOfElements)
	}
	if pg.First != (page == 0) {
		return Failf("first is %t on page %d", pg.First, page)
	}
	// An out-of-range page legitimately comes back empty and marked last.
	if pg.NumberOfElements > 0 {
		wantLast := page == pg.TotalPages-1
		if pg.Last != wantLast {
			return Failf("last is %t on page %d of %d", pg.Last, page, pg.TotalPages)
		}
	}
	if pg.TotalElements > 0 && size > 0 {
		wantPages := int((pg.TotalElements + int64(size) - 1) / int64(size))
		if pg.TotalPages != wantPages {
			return Failf("totalPages %d inconsistent with totalElements %d at size %d (want %d)",
				pg.TotalPages, pg.TotalElements, size, wantPages)
		}
	}
	return nil
}

// AddSortChecks registers the (field, direction) pairs and validates the
// ordering of the entire returned page, not just its head.
func (s *Suite) AddSortChecks() {
	sorts := []struct {
		field, direction string
	}{
		{"name", "asc"},
		{"price", "desc"},
		{"stock", "asc"},
		{"createdAt", "desc"},
	}

	for _, sp := range sorts {
		field, direction := sp.field, sp.direction
		s.AddCheck(
			fmt.Sprintf("sort_%s_%s", field, direction),
			fmt.Sprintf("sorting: %s %sending", field, direction),
			func(ctx context.Context, c *CheckContext) error {
				res, err := c.Client.QueryProducts(ctx, client.Query{
					Variant: client.VariantPaged,
					Page:    0,
					Size:    5,
					Sort:    field + "," + direction,
				})
				if err != nil {
					return err
				}
				if res.Status != 200 {
					return Failf("status %d (expected 200)", res.Status)
				}
				return assertSorted(res.Page.Content, field, direction)
			},
		)
	}
}

// assertSorted validates that every adjacent pair respects the requested
// order on the requested field.
func assertSorted(content []catalog.ProductView, field, direction string) error {
	for i := 1; i < len(content); i++ {
		cmp, err := compareOnField(content[i-1], content[i], field)
		if err != nil {
			return err
		}
		if direction == "desc" {
			cmp = -cmp
		}
		if cmp > 0 {
			return Failf("elements %d and %d out of order for sort %s,%s (%q vs %q)",
				i-1, i, field, direction, fieldString(content[i-1], field), fieldString(content[i], field))
		}
	}
	return nil
}

func compareOnField(a, b catalog.ProductView, field string) (int, error) {
	switch field {
	case "name":
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)), nil
	case "price":
		return a.Price.Cmp(b.Price), nil
	case "stock":
		switch {
		case a.Stock < b.Stock:
			return -1, nil
		case a.Stock > b.Stock:
			return 1, nil
		}
		return 0, nil
	case "createdAt":
		// ISO-8601 timestamps order lexicographically.
		return strings.Compare(a.CreatedAt, b.CreatedAt), nil
	default:
		return 0, Failf("unsupported sort field %q", field)
	}
}

func fieldString(p catalog.ProductView, field string) string {
	switch field {
	case "name":
		return p.Name
	case "price":
		return p.Price.String()
	case "stock":
		return fmt.Sprintf("%d", p.Stock)
	case "createdAt":
		return p.CreatedAt
	default:
		return ""
	}
}

// unfilteredTotal fetches the store's total element count with a minimal
// paged query. Filter checks compare their totals against it.
func unfilteredTotal(ctx context.Context, c *client.Client) (int64, error) {
	res, err := c.QueryProducts(ctx, client.Query{Variant: client.VariantPaged, Page: 0, Size: 1})
	if err != nil {
		return 0, err
	}
	if res.Status != 200 {
		return 0, Failf("unfiltered total query: status %d (expected 200)", res.Status)
	}
	return res.Page.TotalElements, nil
}

// AddFilterChecks registers the price-range and substring-name filters.
// Every returned element must satisfy the predicate and the filtered total
// must not exceed the unfiltered one.
func (s *Suite) AddFilterChecks() {
	s.AddCheck(
		"filter_price_range",
		"filtering: products between 500 and 1000",
		func(ctx context.Context, c *CheckContext) error {
			total, err := unfilteredTotal(ctx, c.Client)
			if err != nil {
				return err
			}
			min := decimal.NewFromInt(500)
			max := decimal.NewFromInt(1000)
			res, err := c.Client.QueryProducts(ctx, client.Query{
				Variant:  client.VariantSearch,
				Page:     0,
				Size:     10,
				MinPrice: &min,
				MaxPrice: &max,
			})
			if err != nil {
				return err
			}
			if res.Status != 200 {
				return Failf("status %d (expected 200)", res.Status)
			}
			for _, p := range res.Page.Content {
				if p.Price.LessThan(min) || p.Price.GreaterThan(max) {
					return Failf("product %q priced %s outside [%s, %s]", p.Name, p.Price, min, max)
				}
			}
			if res.Page.TotalElements > total {
				return Failf("filtered total %d exceeds unfiltered total %d", res.Page.TotalElements, total)
			}
			return nil
		},
	)

	s.AddCheck(
		"filter_name_substring",
		"filtering: product names containing \"laptop\"",
		func(ctx context.Context, c *CheckContext) error {
			total, err := unfilteredTotal(ctx, c.Client)
			if err != nil {
				return err
			}
			res, err := c.Client.QueryProducts(ctx, client.Query{
				Variant: client.VariantSearch,
				Page:    0,
				Size:    10,
				Name:    "laptop",
			})
			if err != nil {
				return err
			}
			if res.Status != 200 {
				return Failf("status %d (expected 200)", res.Status)
			}
			for _, p := range res.Page.Content {
				if !strings.Contains(strings.ToLower(p.Name), "laptop") {
					return Failf("product %q does not contain %q", p.Name, "laptop")
				}
			}
			if res.Page.TotalElements > total {
				return Failf("filtered total %d exceeds unfiltered total %d", res.Page.TotalElements, total)
			}
			return nil
		},
	)

	s.AddCheck(
		"filter_min_price",
		"filtering: products priced at least 100",
		func(ctx context.Context, c *CheckContext) error {
			min := decimal.NewFromInt(100)
			res, err := c.Client.QueryProducts(ctx, client.Query{
				Variant:  client.VariantSearch,
				Page:     0,
				Size:     10,
				MinPrice: &min,
			})
			if err != nil {
				return err
			}
			if res.Status != 200 {
				return Failf("status %d (expected 200)", res.Status)
			}
			for _, p := range res.Page.Content {
				if p.Price.LessThan(min) {
					return Failf("product %q priced %s below minimum %s", p.Name, p.Price, min)
				}
			}
			return nil
		},
	)
}

// AddSliceChecks registers the slice-variant shape check. The timing
// comparison against the paged variant is informational only.
func (s *Suite) AddSliceChecks() {
	s.AddCheck(
		"slice_shape",
		"slice variant: metadata shape and first-page indicators",
		func(ctx context.Context, c *CheckContext) error {
			res, err := c.Client.QueryProducts(ctx, client.Query{
				Variant: client.VariantSlice,
				Page:    0,
				Size:    10,
				Sort:    "createdAt,desc",
			})
			if err != nil {
				return err
			}
			if res.Status != 200 {
				return Failf("status %d (expected 200)", res.Status)
			}
			for _, field := range sliceFields {
				if !res.Fields.Has(field) {
					return Failf("slice metadata missing %q", field)
				}
			}
			if res.Fields.Has("totalElements") || res.Fields.Has("totalPages") {
				return Failf("slice response exposes total-count fields")
			}
			if !res.Page.First {
				return Failf("first is false on page 0")
			}
			if res.Page.HasPrevious {
				return Failf("hasPrevious is true on page 0")
			}
			if len(res.Page.Content) != res.Page.NumberOfElements {
				return Failf("content holds %d elements but numberOfElements is %d",
					len(res.Page.Content), res.Page.NumberOfElements)
			}

			// Informational: slices usually come back faster since the
			// service skips the total-count query.
			paged, err := c.Client.QueryProducts(ctx, client.Query{
				Variant: client.VariantPaged,
				Page:    0,
				Size:    10,
				Sort:    "createdAt,desc",
			})
			if err == nil && paged.Status == 200 {
				c.Logf("slice took %s, page took %s", res.Duration, paged.Duration)
				for _, t := range res.Timings {
					c.Logf("slice server timing: %s=%s", t.Name, t.Duration)
				}
				for _, t := range paged.Timings {
					c.Logf("page server timing: %s=%s", t.Name, t.Duration)
				}
			}
			return nil
		},
	)
}

// AddOwnerChecks registers the owner-scoped query check: every product on
// the page must belong to the requested user.
func (s *Suite) AddOwnerChecks() {
	s.AddCheck(
		"owner_scope",
		"owner scoping: products of a single user",
		func(ctx context.Context, c *CheckContext) error {
			users, err := c.Client.ListUsers(ctx)
			if err != nil {
				return err
			}
			if len(users) == 0 {
				return Failf("no users available for the owner-scoped query")
			}
			owner := users[0]

			res, err := c.Client.QueryProducts(ctx, client.Query{
				Variant: client.VariantByOwner,
				OwnerID: owner.ID,
				Page:    0,
				Size:    5,
				Sort:    "price,desc",
			})
			if err != nil {
				return err
			}
			if res.Status != 200 {
				return Failf("status %d (expected 200)", res.Status)
			}
			for _, p := range res.Page.Content {
				if p.OwnerID() != owner.ID {
					return Failf("product %q owned by %d, expected %d", p.Name, p.OwnerID(), owner.ID)
				}
			}
			return nil
		},
	)
}
