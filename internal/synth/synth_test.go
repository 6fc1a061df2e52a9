package synth

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlstn/catalog-probe/internal/catalog"
	"github.com/nlstn/catalog-probe/internal/fixtures"
)

func testEntities(t *testing.T, seed uint64, productCount, userCount int) ([]catalog.Product, []catalog.User, []catalog.Category) {
	t.Helper()
	s := New(seed)
	cats := s.Categories()
	for i := range cats {
		cats[i].ID = int64(i + 1)
	}
	users := s.Users(userCount)
	for i := range users {
		users[i].ID = int64(100 + i)
	}
	products, skipped := s.Products(productCount, users, cats)
	require.Zero(t, skipped)
	return products, users, cats
}

func TestCategoriesMatchFixtures(t *testing.T) {
	s := New(1)
	cats := s.Categories()
	fix := fixtures.Categories()
	require.Len(t, cats, len(fix))
	for i, c := range cats {
		assert.Equal(t, fix[i].Name, c.Name)
		assert.Equal(t, fix[i].Description, c.Description)
		assert.Zero(t, c.ID, "identifier is assigned by the remote service")
	}
}

func TestUserEmailsUnique(t *testing.T) {
	s := New(7)
	users := s.Users(500)
	require.Len(t, users, 500)

	seen := make(map[string]bool)
	for _, u := range users {
		assert.False(t, seen[u.Email], "duplicate email %q", u.Email)
		seen[u.Email] = true
		assert.Contains(t, u.Email, "@example.com")
		assert.Equal(t, Password, u.Password)
		assert.NotEmpty(t, u.Name)
	}
}

func TestProductNamesUnique(t *testing.T) {
	products, _, _ := testEntities(t, 42, 1000, 20)
	require.NotEmpty(t, products)

	seen := make(map[string]bool)
	for _, p := range products {
		assert.False(t, seen[p.Name], "duplicate product name %q", p.Name)
		seen[p.Name] = true
	}
}

func TestProductPricesWithinArchetypeBand(t *testing.T) {
	products, _, cats := testEntities(t, 42, 1000, 20)
	catByID := make(map[int64]catalog.Category)
	for _, c := range cats {
		catByID[c.ID] = c
	}

	for _, p := range products {
		fix, ok := fixtures.ByName(catByID[p.CategoryIDs[0]].Name)
		require.True(t, ok)

		// The name starts with the producing archetype's base name.
		var matched bool
		for _, a := range fix.Archetypes {
			if !strings.HasPrefix(p.Name, a.BaseName+" ") {
				continue
			}
			matched = true
			assert.False(t, p.Price.LessThan(a.MinPrice),
				"product %q priced %s below band of %q", p.Name, p.Price, a.BaseName)
			assert.False(t, p.Price.GreaterThan(a.MaxPrice),
				"product %q priced %s above band of %q", p.Name, p.Price, a.BaseName)
			assert.True(t, p.Price.Equal(p.Price.Round(2)), "price %s not rounded to 2 decimals", p.Price)
			break
		}
		assert.True(t, matched, "product %q matches no archetype of its category", p.Name)
	}
}

func TestProductCategoryReferences(t *testing.T) {
	products, _, cats := testEntities(t, 3, 1000, 20)
	valid := make(map[int64]bool)
	for _, c := range cats {
		valid[c.ID] = true
	}

	var withSecond int
	for _, p := range products {
		require.NotEmpty(t, p.CategoryIDs)
		require.LessOrEqual(t, len(p.CategoryIDs), 2)
		for _, id := range p.CategoryIDs {
			assert.True(t, valid[id], "unknown category reference %d", id)
		}
		if len(p.CategoryIDs) == 2 {
			withSecond++
			assert.NotEqual(t, p.CategoryIDs[0], p.CategoryIDs[1],
				"secondary category equals primary on %q", p.Name)
		}
	}
	// Roughly one in three products carries a second category.
	assert.Greater(t, withSecond, 0)
	assert.Less(t, withSecond, len(products))
}

func TestProductStockAndOwner(t *testing.T) {
	products, users, _ := testEntities(t, 5, 500, 10)
	owners := make(map[int64]bool)
	for _, u := range users {
		owners[u.ID] = true
	}
	for _, p := range products {
		assert.GreaterOrEqual(t, p.Stock, 5)
		assert.LessOrEqual(t, p.Stock, 200)
		assert.True(t, owners[p.UserID], "unknown owner %d", p.UserID)
		assert.True(t, strings.HasPrefix(p.Description, p.Name+". "),
			"description of %q not prefixed by its name", p.Name)
	}
}

func TestProductDistribution(t *testing.T) {
	products, _, cats := testEntities(t, 11, 1000, 20)
	// 1000 / 10 categories = 100 each, remainder discarded.
	require.Len(t, products, 100*len(cats))

	perPrimary := make(map[int64]int)
	for _, p := range products {
		perPrimary[p.CategoryIDs[0]]++
	}
	for _, c := range cats {
		assert.Equal(t, 100, perPrimary[c.ID], "category %s got uneven share", c.Name)
	}
}

func TestProductsRequirePrerequisites(t *testing.T) {
	s := New(1)
	products, skipped := s.Products(100, nil, nil)
	assert.Empty(t, products)
	assert.Zero(t, skipped)
}

func TestDeterministicWithSameSeed(t *testing.T) {
	a, _, _ := testEntities(t, 99, 200, 10)
	b, _, _ := testEntities(t, 99, 200, 10)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
		assert.True(t, a[i].Price.Equal(b[i].Price))
		assert.Equal(t, a[i].Stock, b[i].Stock)
	}
}

func TestSeedFromPhrase(t *testing.T) {
	assert.Equal(t, SeedFromPhrase("probe"), SeedFromPhrase("probe"))
	assert.NotEqual(t, SeedFromPhrase("probe"), SeedFromPhrase("other"))
}

func TestUniqueNameSuffixing(t *testing.T) {
	s := New(1)

	first, ok := s.uniqueName("Laptop Pro Aurora")
	require.True(t, ok)
	assert.Equal(t, "Laptop Pro Aurora", first)

	second, ok := s.uniqueName("Laptop Pro Aurora")
	require.True(t, ok)
	assert.Equal(t, "Laptop Pro Aurora 2", second)

	third, ok := s.uniqueName("Laptop Pro Aurora")
	require.True(t, ok)
	assert.Equal(t, "Laptop Pro Aurora 3", third)
}

func TestUniqueNameBounded(t *testing.T) {
	s := New(1)
	s.seenNames["Widget"] = struct{}{}
	for n := 2; n <= maxNameAttempts+1; n++ {
		s.seenNames["Widget "+strconv.Itoa(n)] = struct{}{}
	}

	_, ok := s.uniqueName("Widget")
	assert.False(t, ok, "retry loop must give up once the suffix cap is exhausted")
}
