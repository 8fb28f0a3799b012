package layers

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
)

// 霧を白寄りの青へ染めるためのティント色
var mistTint = color.NRGBA{R: 235, G: 238, B: 247, A: 255}

// Mist はノイズ由来の霧とブルーム発光を重ねます。
// strength と glow がともに 0 以下のときは入力をそのまま返します（恒等変換）。
// 両方が有効な場合、霧→発光の順で適用されます。
func Mist(img *image.NRGBA, rng *rand.Rand, strength, smoothness, glow float64) *image.NRGBA {
	if strength <= 0 && glow <= 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	base := imaging.Clone(img)

	if strength > 0 {
		mist := imaging.Blur(grayNoise(rng, w, h), 15+smoothness*25)
		tint := imaging.New(w, h, mistTint)
		mist = blend(tint, mist, 0.4)

		alpha := math.Min(0.6, 0.15+strength*0.35)
		base = blend(base, mist, alpha)
	}

	if glow > 0 {
		blurred := imaging.Blur(base, 6+glow*20)
		glowLayer := blend(base, blurred, 0.55)
		glowLayer = multiply(glowLayer, 1.05+glow*0.2)
		base = blend(base, glowLayer, 0.55)
	}

	return base
}
