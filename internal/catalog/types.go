// Package catalog defines the request payloads and response projections
// exchanged with the remote catalog service. The probe owns the synthesis
// and validation of these values, never their persistence; identifiers are
// assigned by the remote service and echoed back on creation.
package catalog

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// The catalog service exchanges prices as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Category is a product category. Name is unique within a run.
type Category struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// User is a product owner. Email is unique across the run's user set.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// Product is the creation payload for a catalog product. CategoryIDs holds
// one or two category references with the primary category first.
type Product struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	UserID      int64           `json:"userId"`
	CategoryIDs []int64         `json:"categoryIds"`
}

// UserRef is the nested owner summary some services embed in product
// responses instead of a flat userId field.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductView is the projection of a product as returned by read endpoints.
// It tolerates both the flat userId shape and the nested user summary.
type ProductView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	UserID      int64           `json:"userId"`
	User        *UserRef        `json:"user"`
	CategoryIDs []int64         `json:"categoryIds"`
	CreatedAt   string          `json:"createdAt"`
}

// OwnerID returns the product's owner reference regardless of which
// response shape the service used.
func (p ProductView) OwnerID() int64 {
	if p.User != nil {
		return p.User.ID
	}
	return p.UserID
}

// Page is a bounded result set with total-count metadata. The same struct
// decodes slice responses, which carry HasNext/HasPrevious instead of the
// totals; use the accompanying field map to check which keys were present.
type Page struct {
	Content          []ProductView `json:"content"`
	TotalElements    int64         `json:"totalElements"`
	TotalPages       int           `json:"totalPages"`
	NumberOfElements int           `json:"numberOfElements"`
	Number           int           `json:"number"`
	Size             int           `json:"size"`
	First            bool          `json:"first"`
	Last             bool          `json:"last"`
	HasNext          bool          `json:"hasNext"`
	HasPrevious      bool          `json:"hasPrevious"`
}

// FieldSet records which top-level keys a paginated response contained.
// Page and slice variants expose different metadata; assertions about
// presence or absence go through here rather than zero-value guessing.
type FieldSet map[string]json.RawMessage

// Has reports whether the response contained the given top-level key.
func (f FieldSet) Has(key string) bool {
	_, ok := f[key]
	return ok
}
