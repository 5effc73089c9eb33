package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBusinessCategory(t *testing.T) {
	b, err := ParseBusinessCategory("cafe")
	require.NoError(t, err)
	assert.Equal(t, Cafe, b)

	b, err = ParseBusinessCategory("  Restaurant ")
	require.NoError(t, err)
	assert.Equal(t, Restaurant, b)

	_, err = ParseBusinessCategory("laundromat")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown business category")
}

func TestMatchesCategory(t *testing.T) {
	tests := []struct {
		business BusinessCategory
		label    string
		want     bool
	}{
		{Cafe, "Coffee Shop", true},
		{Cafe, "dessert cafe", true},
		{Cafe, "korean restaurant", false},
		{Restaurant, "Korean BBQ", true},
		{Bar, "craft pub", true},
		{Gym, "yoga studio", true},
		{Pharmacy, "flower shop", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.business.MatchesCategory(tt.label))
		})
	}
}

func TestProfile_UnknownCategoryGetsGeneric(t *testing.T) {
	p := BusinessCategory("bookstore").Profile()
	assert.Equal(t, 30, p.IdealCompetition)
	assert.Equal(t, int64(10000), p.DefaultPrice)
}

func TestCategories_StableOrder(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, Cafe, cats[0])
	assert.Equal(t, Gym, cats[7])
	for _, c := range cats {
		assert.NotEmpty(t, c.Profile().Keywords)
		assert.Positive(t, c.Profile().PersonsPerTransaction)
	}
}

func TestActivityLevelScore(t *testing.T) {
	assert.InDelta(t, 100, ActivityVeryHigh.Score(), 0.001)
	assert.InDelta(t, 80, ActivityHigh.Score(), 0.001)
	assert.InDelta(t, 60, ActivityNormal.Score(), 0.001)
	assert.InDelta(t, 40, ActivityLow.Score(), 0.001)
	assert.InDelta(t, 20, ActivityVeryLow.Score(), 0.001)
	// Unmapped labels score neutral.
	assert.InDelta(t, 60, ActivityLevel("bustling").Score(), 0.001)
	assert.InDelta(t, 60, ActivityLevel("").Score(), 0.001)
}
