package layers

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// 帯状のバンディングを消すための仕上げブラー
const baseFieldBlurSigma = 1.6

// BaseField はパレットとムード強度からシードとなるグラデーション場を生成します。
// 対角位置で c1→c2 を補間し、中心からの距離による減衰で c3 へ寄せます。
// 乱数を使わないため、同じ入力に対して常に同じラスターを返します。
func BaseField(size int, pal palette.Palette, intensity float64) *image.NRGBA {
	if size < 2 {
		size = 2
	}
	anchors := palette.PadTo3(pal)
	c1, c2, c3 := anchors[0], anchors[1], anchors[2]

	w, h := size, size
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2

	for y := 0; y < h; y++ {
		ty := float64(y) / float64(h-1)
		for x := 0; x < w; x++ {
			tx := float64(x) / float64(w-1)

			// 中心距離は 0.75*width で 1.0 に達するようスケールする
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / (0.75 * float64(w))
			d = math.Min(1, math.Max(0, d))

			tDiag := (tx + ty) / 2
			diag := palette.Lerp(c1, c2, tDiag)

			falloff := (1 - d) * (0.3 + 0.7*intensity)
			img.SetNRGBA(x, y, palette.Lerp(diag, c3, falloff))
		}
	}

	return imaging.Blur(img, baseFieldBlurSigma)
}
