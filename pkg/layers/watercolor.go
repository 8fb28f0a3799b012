package layers

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// Watercolor は半透明の楕円ブロブを重ねて水彩のにじみを合成します。
// spread または layerCount が 0 以下なら入力をそのまま返します。
// レイヤーは前の結果の上へ順に合成されるため、枚数に応じて色が堆積します。
func Watercolor(img *image.NRGBA, rng *rand.Rand, pal palette.Palette, spread float64, layerCount int, saturation float64) *image.NRGBA {
	if spread <= 0 || layerCount <= 0 {
		return img
	}
	if len(pal) == 0 {
		pal = palette.Default()
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	base := imaging.Clone(img)

	minSide := w
	if h < minSide {
		minSide = h
	}
	maxRadius := float64(minSide) * (0.22 + spread*0.35)
	blobCount := int(15 + spread*35)

	for i := 0; i < layerCount; i++ {
		dc := gg.NewContext(w, h)
		for j := 0; j < blobCount; j++ {
			c := palette.Desaturate(pal[rng.Intn(len(pal))], saturation)
			cx := rng.Float64() * float64(w)
			cy := rng.Float64() * float64(h)
			// 軸ごとに独立な半径を引くため円ではなく楕円になる
			rx := maxRadius * (0.25 + 0.75*rng.Float64())
			ry := maxRadius * (0.25 + 0.75*rng.Float64())
			alpha := 70 + rng.Intn(111) // 70 - 180

			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
			dc.DrawEllipse(cx, cy, rx, ry)
			dc.Fill()
		}

		overlay := imaging.Blur(dc.Image(), 8+spread*30)
		base = imaging.Overlay(base, overlay, image.Pt(0, 0), 1.0)
	}

	return base
}
