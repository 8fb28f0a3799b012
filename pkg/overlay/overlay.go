package overlay

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/shouni/memory-poster-kit/pkg/domain"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// モチーフレイヤー全体へかける仕上げブラー
const overlayBlurSigma = 3

// motifFunc は一つのモチーフを透明オーバーレイへ描き込みます。
type motifFunc func(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64)

// motifRegistry はタグとモチーフ描画の対応表です。
// 新しいタグはここへ登録するだけで描画対象になります。
var motifRegistry = map[domain.StyleTag]motifFunc{
	domain.TagWaves:        drawWaves,
	domain.TagVerticalNeon: drawVerticalNeon,
	domain.TagPixelGrid:    drawPixelGrid,
	domain.TagArches:       drawArches,
	domain.TagChaosLines:   drawChaosLines,
	domain.TagPeaks:        drawPeaks,
	domain.TagFogOverlay:   drawFogOverlay,
}

// motifOrder は描画順を固定し、同じシードからの再現性を保証します。
var motifOrder = []domain.StyleTag{
	domain.TagWaves,
	domain.TagVerticalNeon,
	domain.TagPixelGrid,
	domain.TagArches,
	domain.TagChaosLines,
	domain.TagPeaks,
	domain.TagFogOverlay,
}

// Render はタグ集合に対応するモチーフを一枚の透明オーバーレイへ描き、
// 軽くぼかしてからベースラスターへ一度だけ合成します。
func Render(img *image.NRGBA, rng *rand.Rand, pal palette.Palette, tags []domain.StyleTag, strength float64) *image.NRGBA {
	if len(pal) == 0 {
		pal = palette.Default()
	}

	active := make(map[domain.StyleTag]bool, len(tags))
	for _, tag := range tags {
		active[tag] = true
	}

	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())

	for _, tag := range motifOrder {
		if !active[tag] {
			continue
		}
		if draw, ok := motifRegistry[tag]; ok {
			draw(dc, rng, pal, strength)
		}
	}

	blurred := imaging.Blur(dc.Image(), overlayBlurSigma)
	return imaging.Overlay(img, blurred, image.Pt(0, 0), 1.0)
}
