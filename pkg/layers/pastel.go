package layers

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
)

// パステル化の到達点となるニュートラルトーン
var pastelTone = color.NRGBA{R: 245, G: 245, B: 248, A: 255}

// Pastel は柔らかさ・明度・粒状感を加えたパステル版を作り、元画像と混合します。
// blendRatio が 1.0 でもパステル版は 80% までしか適用されず、元画像が完全には
// 置き換わりません。softness と grain はそれぞれ 0 以下で個別に無効化できます。
func Pastel(img *image.NRGBA, rng *rand.Rand, softness, grain, blendRatio float64) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	base := imaging.Clone(img)

	soft := base
	if softness > 0 {
		soft = imaging.Blur(base, 1.5+softness*6)
	}

	soft = multiply(soft, 1.04)

	if grain > 0 {
		soft = addGrain(soft, rng, grain*12)
	}

	tone := imaging.New(w, h, pastelTone)
	pastel := blend(soft, tone, 0.18)

	return blend(base, pastel, blendRatio*0.8)
}

// addGrain は画素ごとに正規分布ノイズを加えます。
// 同一画素の RGB には同じ値を足すため、粒はモノクロになります。
func addGrain(img *image.NRGBA, rng *rand.Rand, sigma float64) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			n := rng.NormFloat64() * sigma
			i := y*out.Stride + x*4
			out.Pix[i] = clamp8(float64(out.Pix[i]) + n)
			out.Pix[i+1] = clamp8(float64(out.Pix[i+1]) + n)
			out.Pix[i+2] = clamp8(float64(out.Pix[i+2]) + n)
		}
	}
	return out
}
