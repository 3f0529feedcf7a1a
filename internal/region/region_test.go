package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/vinquiz/internal/region"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Alsace", "alsace"},
		{"circumflex", "Vallée du Rhône", "rhone"},
		{"val de", "Val de Loire", "loire"},
		{"two regions", "Val de Loire, Vallée du Rhône", "loire,rhone"},
		{"lorraine", "Lorraine", "champagne"},
		{"roussillon", "Languedoc-Roussillon", "languedoc"},
		{"bugey", "Savoie-Bugey", "savoie"},
		{"lyonnais", "Lyonnais", "rhone"},
		{"beaujolais", "Beaujolais", "bourgogne"},
		{"limousin", "Limousin", "sud-ouest"},
		{"charentes", "Charentes", "bordeaux"},
		{"newlines", "Bourgogne\n  Jura", "bourgognejura"},
		{"other diacritics", "Sud-Ouest (Béarn)", "sud-ouest(bearn)"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, region.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Val de Loire, Vallée du Rhône",
		"Lorraine",
		"Languedoc-Roussillon, Sud-Ouest",
		"Beaujolais / Lyonnais",
		"lorr aine",
		"Val  de\tLoire",
		"CHARENTES",
		"Corse (Île de Beauté)",
		"",
	}
	for _, in := range inputs {
		once := region.Normalize(in)
		assert.Equal(t, once, region.Normalize(once), "input %q", in)
	}
}

func TestSplit(t *testing.T) {
	t.Run("loire and rhone", func(t *testing.T) {
		pos, neg := region.Split("Val de Loire, Vallée du Rhône")
		assert.Equal(t, []string{"loire", "rhone"}, pos)
		assert.Len(t, neg, 12)
		assert.NotContains(t, neg, "loire")
		assert.NotContains(t, neg, "rhone")
	})

	t.Run("no known region", func(t *testing.T) {
		pos, neg := region.Split("Vallée de la Moselle")
		assert.Empty(t, pos)
		assert.Len(t, neg, len(region.Vocabulary))
	})

	t.Run("partition covers vocabulary", func(t *testing.T) {
		pos, neg := region.Split("Alsace, Champagne, Jura")
		assert.Len(t, append(pos, neg...), len(region.Vocabulary))
	})
}

func TestMatches(t *testing.T) {
	assert.True(t, region.Matches("Vallée du Rhône", "rhone"))
	assert.False(t, region.Matches("Vallée du Rhône", "loire"))
	assert.False(t, region.Matches("Vallée du Rhône", "rh"), "non-vocabulary token")
	assert.True(t, region.IsToken("sud-ouest"))
	assert.False(t, region.IsToken("Sud-Ouest"))
}
