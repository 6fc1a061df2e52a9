package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 1000-item run distributes 100 products per category; the fixture pool
// has to be deep enough to avoid visible repetition.
func TestFixtureCoverage(t *testing.T) {
	cats := Categories()
	require.GreaterOrEqual(t, len(cats), 10, "need at least 10 categories")

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, seen[c.Name], "duplicate category name %q", c.Name)
		seen[c.Name] = true
		assert.NotEmpty(t, c.Description, "category %q has no description", c.Name)
		assert.GreaterOrEqual(t, len(c.Archetypes), 5, "category %q needs at least 5 archetypes", c.Name)
		assert.GreaterOrEqual(t, len(c.Fragments), 5, "category %q needs at least 5 fragments", c.Name)
	}
}

func TestArchetypeBands(t *testing.T) {
	for _, c := range Categories() {
		for _, a := range c.Archetypes {
			assert.NotEmpty(t, a.BaseName)
			assert.NotEmpty(t, a.Variants, "archetype %q has no variants", a.BaseName)
			assert.True(t, a.MinPrice.IsPositive(),
				"archetype %q min price %s not positive", a.BaseName, a.MinPrice)
			assert.True(t, a.MaxPrice.GreaterThan(a.MinPrice),
				"archetype %q band [%s, %s] inverted", a.BaseName, a.MinPrice, a.MaxPrice)
		}
	}
}

func TestByName(t *testing.T) {
	fix, ok := ByName("Electronics")
	require.True(t, ok)
	assert.Equal(t, "Electronics", fix.Name)

	_, ok = ByName("Nonexistent")
	assert.False(t, ok)
}

func TestNamePools(t *testing.T) {
	assert.NotEmpty(t, Brands)
	assert.NotEmpty(t, GivenNames)
	assert.NotEmpty(t, FamilyNames)
}
