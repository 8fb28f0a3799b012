package overlay

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/memory-poster-kit/pkg/domain"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

const testSize = 96

func flatRaster(size int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRender(t *testing.T) {
	base := flatRaster(testSize, color.NRGBA{R: 30, G: 30, B: 40, A: 255})
	pal := palette.Default()

	t.Run("同じシードからは同じ結果になる", func(t *testing.T) {
		a := Render(base, rand.New(rand.NewSource(7)), pal, []domain.StyleTag{domain.TagWaves}, 0.8)
		b := Render(base, rand.New(rand.NewSource(7)), pal, []domain.StyleTag{domain.TagWaves}, 0.8)
		assert.Equal(t, a.Pix, b.Pix)
	})

	t.Run("全タグを重ねても落ちずに描画される", func(t *testing.T) {
		tags := []domain.StyleTag{
			domain.TagWaves, domain.TagVerticalNeon, domain.TagPixelGrid,
			domain.TagArches, domain.TagChaosLines, domain.TagPeaks, domain.TagFogOverlay,
		}
		got := Render(base, rand.New(rand.NewSource(1)), pal, tags, 1.0)
		require.NotNil(t, got)
		assert.NotEqual(t, base.Pix, got.Pix)
	})

	t.Run("アーチは画像下部中央の帯に可視のピクセルを残す", func(t *testing.T) {
		got := Render(base, rand.New(rand.NewSource(7)), pal, []domain.StyleTag{domain.TagArches}, 0.8)

		changed := 0
		for y := testSize / 2; y < testSize*4/5; y++ {
			for x := testSize / 8; x < testSize*3/4; x++ {
				i := y*got.Stride + x*4
				j := y*base.Stride + x*4
				if got.Pix[i] != base.Pix[j] || got.Pix[i+1] != base.Pix[j+1] || got.Pix[i+2] != base.Pix[j+2] {
					changed++
				}
			}
		}
		assert.Greater(t, changed, 0, "下部帯にアーチの痕跡が必要")
	})

	t.Run("空のパレットでも落ちない", func(t *testing.T) {
		got := Render(base, rand.New(rand.NewSource(1)), nil, []domain.StyleTag{domain.TagWaves}, 0.5)
		require.NotNil(t, got)
	})
}
