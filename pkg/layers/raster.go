// Package layers はポスター合成パイプラインの各ラスター変換ステージを提供します。
// すべてのステージは同一サイズの正方形ラスターを受け取り、新しいラスターを返します。
// 乱数を使うステージはリクエストスコープの *rand.Rand を引数で受け取るため、
// グローバル状態を共有せず、同じシードから常に同じ結果が再現されます。
package layers

import (
	"image"
	"image/color"
	"math/rand"

	"github.com/disintegration/imaging"
)

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// multiply は RGB 各チャンネルを factor 倍し [0,255] にクランプします。
func multiply(img *image.NRGBA, factor float64) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = clamp8(float64(out.Pix[i]) * factor)
		out.Pix[i+1] = clamp8(float64(out.Pix[i+1]) * factor)
		out.Pix[i+2] = clamp8(float64(out.Pix[i+2]) * factor)
	}
	return out
}

// grayNoise は一様乱数によるグレースケールのノイズ場を生成します。
func grayNoise(rng *rand.Rand, w, h int) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Float64() * 255)
			out.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// blend は不透明ラスター a の上へ b を alpha の重みで合成します。
// a*(1-alpha) + b*alpha に一致します。
func blend(a, b *image.NRGBA, alpha float64) *image.NRGBA {
	return imaging.Overlay(a, b, image.Pt(0, 0), alpha)
}
