package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		city      string
		memory    string
		wantMood  string
		intensity float64
	}{
		{
			"ポジティブ語が多ければ warm",
			"Lisbon", "warm sun and friends, a cozy spring afternoon",
			"warm / hopeful", 0.45,
		},
		{
			"喪失系の語が多ければ melancholic",
			"Sapporo", "cold winter snow, saying goodbye alone",
			"calm / nostalgic", 0.6,
		},
		{
			"緊張系の語が多ければ tense",
			"Mumbai", "crowded traffic, anxious and lost, always late",
			"tense / vibrant", 0.7,
		},
		{
			"キーワードなしでは warm に倒れる",
			"X", "an ordinary day",
			"warm / hopeful", 0.45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.city, tt.memory)
			assert.Equal(t, tt.wantMood, got.Mood)
			assert.Equal(t, tt.intensity, got.Intensity)
			assert.Len(t, got.PaletteHex, 3)
			assert.Contains(t, got.Summary, tt.wantMood)
		})
	}

	t.Run("レポートの都市キーワードを拾う", func(t *testing.T) {
		got := Analyze("Paris", "a cafe near the river and the subway station")
		assert.ElementsMatch(t, []string{"river", "station", "subway", "cafe"}, got.CityKeywords)
	})

	t.Run("空の都市名でもタイトルは成立する", func(t *testing.T) {
		got := Analyze("", "something")
		assert.Equal(t, "Memory of the city", got.Title)
	})
}

func TestMoodContext(t *testing.T) {
	ctx := Analyze("Lisbon", "warm sun").MoodContext()
	require.NotEmpty(t, ctx.Palette, "パレットは正規化済みで空にならない")
	assert.Equal(t, 0.45, ctx.Intensity)
}

func TestAutoSeed(t *testing.T) {
	t.Run("同じ入力からは同じシードになる", func(t *testing.T) {
		a := AutoSeed("Seoul", "first winter snow")
		b := AutoSeed("Seoul", "first winter snow")
		assert.Equal(t, a, b)
	})

	t.Run("入力が違えばシードも変わる", func(t *testing.T) {
		a := AutoSeed("Seoul", "first winter snow")
		b := AutoSeed("Busan", "first winter snow")
		assert.NotEqual(t, a, b)
	})

	t.Run("シードは 0 以上 100000 未満", func(t *testing.T) {
		s := AutoSeed("Tokyo", "neon nights")
		assert.GreaterOrEqual(t, s, int64(0))
		assert.Less(t, s, int64(100000))
	})

	t.Run("前後の空白は無視される", func(t *testing.T) {
		assert.Equal(t, AutoSeed(" Seoul ", "snow"), AutoSeed("Seoul", "snow"))
	})
}
