package layers

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/memory-poster-kit/pkg/palette"
)

const testSize = 48

// テスト用の市松模様ラスターを作るヘルパー
func checkerRaster(t *testing.T, size int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/8+y/8)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 220, G: 120, B: 80, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
			}
		}
	}
	return img
}

func newRng(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestBaseField(t *testing.T) {
	pal := palette.Default()

	t.Run("同じ入力からは同じラスターが生成される", func(t *testing.T) {
		a := BaseField(testSize, pal, 0.6)
		b := BaseField(testSize, pal, 0.6)
		assert.Equal(t, a.Pix, b.Pix)
	})

	t.Run("指定サイズの正方形になる", func(t *testing.T) {
		img := BaseField(testSize, pal, 0.5)
		assert.Equal(t, testSize, img.Bounds().Dx())
		assert.Equal(t, testSize, img.Bounds().Dy())
	})

	t.Run("強度が変わると結果も変わる", func(t *testing.T) {
		a := BaseField(testSize, pal, 0.1)
		b := BaseField(testSize, pal, 0.9)
		assert.NotEqual(t, a.Pix, b.Pix)
	})

	t.Run("1 色のパレットでも生成できる", func(t *testing.T) {
		one := palette.Palette{{R: 120, G: 80, B: 60, A: 255}}
		img := BaseField(testSize, one, 0.5)
		require.NotNil(t, img)
	})
}

func TestMist(t *testing.T) {
	base := checkerRaster(t, testSize)

	t.Run("strength と glow が 0 なら入力がそのまま返る", func(t *testing.T) {
		got := Mist(base, newRng(1), 0, 0.5, 0)
		assert.Same(t, base, got, "恒等変換はコピーすら作らない")
	})

	t.Run("strength > 0 で画像が変化する", func(t *testing.T) {
		got := Mist(base, newRng(1), 0.8, 0.2, 0)
		assert.NotEqual(t, base.Pix, got.Pix)
	})

	t.Run("glow のみでも適用される", func(t *testing.T) {
		got := Mist(base, newRng(1), 0, 0.2, 0.7)
		assert.NotEqual(t, base.Pix, got.Pix)
	})

	t.Run("同じシードからは同じ結果になる", func(t *testing.T) {
		a := Mist(base, newRng(7), 0.6, 0.2, 0.3)
		b := Mist(base, newRng(7), 0.6, 0.2, 0.3)
		assert.Equal(t, a.Pix, b.Pix)
	})

	t.Run("入力ラスターは書き換えられない", func(t *testing.T) {
		before := append([]uint8(nil), base.Pix...)
		Mist(base, newRng(1), 0.9, 0.5, 0.9)
		assert.Equal(t, before, base.Pix)
	})
}

func TestWatercolor(t *testing.T) {
	base := checkerRaster(t, testSize)
	pal := palette.Default()

	t.Run("spread が 0 なら入力がそのまま返る", func(t *testing.T) {
		got := Watercolor(base, newRng(1), pal, 0, 3, 0.8)
		assert.Same(t, base, got)
	})

	t.Run("レイヤー数が 0 なら入力がそのまま返る", func(t *testing.T) {
		got := Watercolor(base, newRng(1), pal, 0.5, 0, 0.8)
		assert.Same(t, base, got)
	})

	t.Run("有効なパラメータで画像が変化する", func(t *testing.T) {
		got := Watercolor(base, newRng(1), pal, 0.5, 2, 0.8)
		assert.NotEqual(t, base.Pix, got.Pix)
	})

	t.Run("同じシードからは同じ結果になる", func(t *testing.T) {
		a := Watercolor(base, newRng(11), pal, 0.45, 3, 0.86)
		b := Watercolor(base, newRng(11), pal, 0.45, 3, 0.86)
		assert.Equal(t, a.Pix, b.Pix)
	})

	t.Run("空のパレットでも落ちない", func(t *testing.T) {
		got := Watercolor(base, newRng(1), nil, 0.5, 1, 0.8)
		require.NotNil(t, got)
	})
}

func TestPastel(t *testing.T) {
	base := checkerRaster(t, testSize)

	t.Run("blendRatio=0 でもパイプラインは完走する", func(t *testing.T) {
		got := Pastel(base, newRng(1), 0.5, 0.25, 0)
		require.NotNil(t, got)
	})

	t.Run("softness と grain を無効化しても白寄せは働く", func(t *testing.T) {
		got := Pastel(base, newRng(1), 0, 0, 1)
		assert.NotEqual(t, base.Pix, got.Pix)
	})

	t.Run("同じシードからは同じ結果になる", func(t *testing.T) {
		a := Pastel(base, newRng(3), 0.5, 0.25, 0.6)
		b := Pastel(base, newRng(3), 0.5, 0.25, 0.6)
		assert.Equal(t, a.Pix, b.Pix)
	})

	t.Run("強い grain でもチャンネル値は範囲内に収まる", func(t *testing.T) {
		got := Pastel(base, newRng(5), 0, 1, 1)
		for i := 3; i < len(got.Pix); i += 4 {
			require.Equal(t, uint8(255), got.Pix[i], "アルファは不透明のまま")
		}
	})
}

func TestMultiplyClamps(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	got := multiply(img, 2.0)
	assert.Equal(t, uint8(255), got.Pix[0], "オーバーフローせずクランプされる")
}
