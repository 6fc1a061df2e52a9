package client

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Variant selects which paginated endpoint a query targets.
type Variant int

const (
	// VariantPaged is the full page endpoint with total-count metadata.
	VariantPaged Variant = iota
	// VariantSlice is the lighter endpoint without total counts.
	VariantSlice
	// VariantSearch is the filtered page endpoint.
	VariantSearch
	// VariantByOwner scopes the page to a single user's products.
	VariantByOwner
)

func (v Variant) String() string {
	switch v {
	case VariantPaged:
		return "paged"
	case VariantSlice:
		return "slice"
	case VariantSearch:
		return "search"
	case VariantByOwner:
		return "by-owner"
	default:
		return "unknown"
	}
}

// Query describes one paginated product read. Page is zero-based. Sort uses
// the service's "field,direction" format with direction asc or desc. The
// filter fields apply to the search variant; OwnerID to the by-owner one.
type Query struct {
	Variant  Variant
	Page     int
	Size     int
	Sort     string
	Name     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	OwnerID  int64
}

// path renders the query as an endpoint path with encoded parameters.
func (q Query) path() (string, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))
	if q.Sort != "" {
		params.Set("sort", q.Sort)
	}

	var base string
	switch q.Variant {
	case VariantPaged:
		base = "/products"
	case VariantSlice:
		base = "/products/slice"
	case VariantSearch:
		base = "/products/search"
		if q.Name != "" {
			params.Set("name", q.Name)
		}
		if q.MinPrice != nil {
			params.Set("minPrice", q.MinPrice.String())
		}
		if q.MaxPrice != nil {
			params.Set("maxPrice", q.MaxPrice.String())
		}
	case VariantByOwner:
		if q.OwnerID == 0 {
			return "", fmt.Errorf("catalog: by-owner query requires an owner id")
		}
		base = "/products/user/" + strconv.FormatInt(q.OwnerID, 10)
	default:
		return "", fmt.Errorf("catalog: unknown query variant %d", int(q.Variant))
	}

	return base + "?" + params.Encode(), nil
}
