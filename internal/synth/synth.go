// Package synth generates category, user and product records from the
// fixture repository plus a seeded random source. Generation is pure
// in-memory computation; it cannot fail, with the single exception of a
// product name that cannot be made unique within the suffix cap, in which
// case that one item is dropped and counted.
package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/fixtures"
)

// Password is the fixed placeholder assigned to every synthesized user.
const Password = "Password123!"

// maxNameAttempts caps the numeric-suffix retry loop for colliding product
// names. Exhausting it fails the single item, never the batch.
const maxNameAttempts = 1000

const (
	stockMin = 5
	stockMax = 200
)

// Synthesizer produces catalog entities. Not safe for concurrent use; the
// probe is strictly sequential.
type Synthesizer struct {
	rng        *rand.Rand
	seenNames  map[string]struct{}
	seenEmails map[string]struct{}
}

// SeedFromPhrase derives a deterministic RNG seed from a seed phrase.
// An empty phrase yields a time-based seed so unseeded runs still differ.
func SeedFromPhrase(phrase string) uint64 {
	if phrase == "" {
		return uint64(time.Now().UnixNano())
	}
	return xxhash.Sum64String(phrase)
}

// New returns a Synthesizer backed by a PCG source with the given seed.
func New(seed uint64) *Synthesizer {
	return &Synthesizer{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seenNames:  make(map[string]struct{}),
		seenEmails: make(map[string]struct{}),
	}
}

// Categories produces exactly one record per fixture category, pairing the
// category name with its curated description. No randomness is involved.
func (s *Synthesizer) Categories() []catalog.Category {
	fix := fixtures.Categories()
	out := make([]catalog.Category, 0, len(fix))
	for _, f := range fix {
		out = append(out, catalog.Category{
			Name:        f.Name,
			Description: f.Description,
		})
	}
	return out
}

// Users produces count users with generated full names, emails derived from
// those names, and the fixed placeholder password. No two users in the same
// run share an email.
func (s *Synthesizer) Users(count int) []catalog.User {
	out := make([]catalog.User, 0, count)
	for i := 0; i < count; i++ {
		given := fixtures.GivenNames[s.rng.IntN(len(fixtures.GivenNames))]
		family := fixtures.FamilyNames[s.rng.IntN(len(fixtures.FamilyNames))]
		out = append(out, catalog.User{
			Name:     given + " " + family,
			Email:    s.uniqueEmail(given, family),
			Password: Password,
		})
	}
	return out
}

// uniqueEmail derives an email from the name parts and disambiguates with a
// numeric suffix before the @ when the plain form is already taken.
func (s *Synthesizer) uniqueEmail(given, family string) string {
	local := strings.ToLower(given) + "." + strings.ToLower(family)
	email := local + "@example.com"
	for n := 2; ; n++ {
		if _, taken := s.seenEmails[email]; !taken {
			break
		}
		email = fmt.Sprintf("%s%d@example.com", local, n)
	}
	s.seenEmails[email] = struct{}{}
	return email
}

// Products distributes count products as evenly as possible across the
// known categories (count/numCategories per category, remainder discarded)
// and synthesizes each from that category's archetypes. The returned skip
// count is the number of items dropped because their names could not be
// made unique within the suffix cap.
func (s *Synthesizer) Products(count int, users []catalog.User, cats []catalog.Category) (products []catalog.Product, skipped int) {
	if len(users) == 0 || len(cats) == 0 {
		return nil, 0
	}

	perCategory := count / len(cats)
	products = make([]catalog.Product, 0, perCategory*len(cats))

	for _, cat := range cats {
		fix, ok := fixtures.ByName(cat.Name)
		if !ok {
			// Remote category not backed by a fixture template; it can
			// receive no products.
			continue
		}
		for i := 0; i < perCategory; i++ {
			p, ok := s.product(fix, cat, users, cats)
			if !ok {
				skipped++
				continue
			}
			products = append(products, p)
		}
	}
	return products, skipped
}

func (s *Synthesizer) product(fix fixtures.CategoryFixture, cat catalog.Category, users []catalog.User, cats []catalog.Category) (catalog.Product, bool) {
	a := fix.Archetypes[s.rng.IntN(len(fix.Archetypes))]
	variant := a.Variants[s.rng.IntN(len(a.Variants))]
	brand := fixtures.Brands[s.rng.IntN(len(fixtures.Brands))]

	name, ok := s.uniqueName(a.BaseName + " " + variant + " " + brand)
	if !ok {
		return catalog.Product{}, false
	}

	fragA := fix.Fragments[s.rng.IntN(len(fix.Fragments))]
	fragB := fix.Fragments[s.rng.IntN(len(fix.Fragments))]

	return catalog.Product{
		Name:        name,
		Description: name + ". " + fragA + " " + fragB,
		Price:       s.price(a),
		Stock:       stockMin + s.rng.IntN(stockMax-stockMin+1),
		UserID:      users[s.rng.IntN(len(users))].ID,
		CategoryIDs: s.categoryRefs(cat, cats),
	}, true
}

// uniqueName reserves candidate, appending an incrementing integer suffix
// on collision. The retry loop is bounded; on exhaustion the candidate is
// rejected and the item fails.
func (s *Synthesizer) uniqueName(candidate string) (string, bool) {
	name := candidate
	for n := 2; n <= maxNameAttempts+1; n++ {
		if _, taken := s.seenNames[name]; !taken {
			s.seenNames[name] = struct{}{}
			return name, true
		}
		name = fmt.Sprintf("%s %d", candidate, n)
	}
	return "", false
}

// price draws uniformly from the archetype's band, rounded to 2 decimals.
func (s *Synthesizer) price(a fixtures.Archetype) decimal.Decimal {
	band := a.MaxPrice.Sub(a.MinPrice)
	offset := band.Mul(decimal.NewFromFloat(s.rng.Float64()))
	return a.MinPrice.Add(offset).Round(2)
}

// categoryRefs returns the primary category reference, plus roughly one
// time in three a second reference drawn from the other categories.
func (s *Synthesizer) categoryRefs(primary catalog.Category, cats []catalog.Category) []int64 {
	refs := []int64{primary.ID}
	if len(cats) > 1 && s.rng.IntN(3) == 0 {
		for {
			other := cats[s.rng.IntN(len(cats))]
			if other.ID != primary.ID {
				refs = append(refs, other.ID)
				break
			}
		}
	}
	return refs
}
