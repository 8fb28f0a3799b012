package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/memory-poster-kit/pkg/domain"
)

func TestDeriveTags(t *testing.T) {
	tests := []struct {
		name   string
		city   string
		memory string
		want   []domain.StyleTag
	}{
		{
			"tokyo はネオンとピクセルグリッドの両方になる",
			"Tokyo", "walking in shibuya at night",
			[]domain.StyleTag{domain.TagVerticalNeon, domain.TagPixelGrid},
		},
		{
			"paris はアーチになる",
			"Paris", "the cafes by the Seine",
			[]domain.StyleTag{domain.TagArches},
		},
		{
			"london は霧になる",
			"London", "grey mornings by the Thames",
			[]domain.StyleTag{domain.TagFogOverlay},
		},
		{
			"new york はネオンとカオス線の組になる",
			"New York", "taxis everywhere",
			[]domain.StyleTag{domain.TagVerticalNeon, domain.TagChaosLines},
		},
		{
			"山のキーワードは peaks になる",
			"Chamonix", "hiking in the alps",
			[]domain.StyleTag{domain.TagPeaks},
		},
		{
			"一致なしは waves へフォールバックする",
			"Nowhere", "nothing in particular",
			[]domain.StyleTag{domain.TagWaves},
		},
		{
			"複数辞書の一致はマージされ重複しない",
			"Seoul", "neon lights near the sea",
			[]domain.StyleTag{domain.TagVerticalNeon, domain.TagWaves},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTags(tt.city, tt.memory)
			require.NotEmpty(t, got, "タグ集合は空にならない")
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		assert.Equal(t, DeriveTags("TOKYO", ""), DeriveTags("tokyo", ""))
	})
}
