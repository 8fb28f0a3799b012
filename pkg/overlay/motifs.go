package overlay

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// pick はパレットから一色を引きます。vivid 指定でチャンネルをブーストします。
func pick(rng *rand.Rand, pal palette.Palette, vivid bool) color.NRGBA {
	c := pal[rng.Intn(len(pal))]
	if vivid {
		c = palette.Vivid(c)
	}
	return c
}

// drawWaves は水平のうねる帯を 4 本描きます。海辺や港の記憶に対応します。
func drawWaves(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	for i := 0; i < 4; i++ {
		c := pick(rng, pal, false)
		alpha := int(40 + 90*strength)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
		dc.SetLineWidth(6 + 20*strength)

		y0 := h * (0.35 + 0.4*float64(i)/4)
		for x := 0.0; x < w; x += 8 {
			y := y0 + math.Sin(x/45+float64(i))*18
			dc.DrawLine(x, y, x+12, y)
			dc.Stroke()
		}
	}
}

// drawVerticalNeon は上端付近から下端付近まで伸びる鮮やかな縦バーを描きます。
func drawVerticalNeon(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := dc.Width(), dc.Height()
	n := 6 + int(10*strength)
	for i := 0; i < n; i++ {
		c := pick(rng, pal, true)
		alpha := int(120 + 120*strength)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)

		x := rng.Intn(w + 1)
		top := rng.Intn(h/10 + 1)
		bottom := h*6/10 + rng.Intn(h-h*6/10+1)
		width := 6 + rng.Intn(9) // 6 - 14

		dc.DrawRectangle(float64(x), float64(top), float64(width), float64(bottom-top))
		dc.Fill()
	}
}

// drawPixelGrid は 16px セルのグリッドを確率的に塗り潰します。
func drawPixelGrid(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := dc.Width(), dc.Height()
	const cell = 16
	prob := 0.2 + 0.35*strength
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			if rng.Float64() >= prob {
				continue
			}
			c := pick(rng, pal, true)
			alpha := int(80 + 120*strength)
			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
			dc.DrawRectangle(float64(x), float64(y), cell, cell)
			dc.Fill()
		}
	}
}

// drawArches は矩形と半円を組み合わせたアーチを左下〜中央の帯へ等間隔に並べます。
func drawArches(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	n := 3 + rng.Intn(5) // 3 - 7
	baseY := h * 0.8

	bandLeft := w * 0.12
	step := w * 0.63 / float64(n)
	archW := step * 0.78

	for i := 0; i < n; i++ {
		c := pick(rng, pal, false)
		alpha := int(70 + 100*strength)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)

		cx := bandLeft + step*(float64(i)+0.5)
		top := h * (0.4 + 0.1*rng.Float64())

		// 柱となる矩形
		rectTop := (top + baseY) / 2
		dc.DrawRectangle(cx-archW/2, rectTop, archW, baseY-rectTop)
		dc.Fill()

		// アーチ上部の半円（楕円の上半分が柱と重なって弧になる）
		dc.DrawEllipse(cx, top+(baseY-top)/4, archW/2, (baseY-top)/4)
		dc.Fill()
	}
}

// drawChaosLines は短いランダム角の線分をキャンバス全体へ散らします。
func drawChaosLines(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := dc.Width(), dc.Height()
	n := 30 + int(45*strength)
	for i := 0; i < n; i++ {
		c := pick(rng, pal, true)
		alpha := int(60 + 150*strength)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
		dc.SetLineWidth(float64(1 + rng.Intn(4)))

		x1 := rng.Intn(w + 1)
		y1 := rng.Intn(h + 1)
		x2 := x1 - 110 + rng.Intn(221)
		y2 := y1 - 90 + rng.Intn(181)
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()
	}
}

// drawPeaks はギザギザの稜線を 3 本重ねて山並みを描きます。
func drawPeaks(dc *gg.Context, rng *rand.Rand, pal palette.Palette, strength float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	const segments = 12
	for i := 0; i < 3; i++ {
		c := pick(rng, pal, false)
		alpha := int(60 + 120*strength)
		dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
		dc.SetLineWidth(3 + 6*strength)

		baseline := h * (0.45 + 0.15*float64(i))
		step := w / segments
		dc.MoveTo(0, baseline)
		for s := 1; s <= segments; s++ {
			// 奇数頂点を持ち上げて稜線のピークを作る
			offset := rng.Float64() * h * 0.08
			if s%2 == 1 {
				offset += h * 0.06
			}
			dc.LineTo(step*float64(s), baseline-offset)
		}
		dc.Stroke()
	}
}

// drawFogOverlay はぼかしたノイズ場を、画素値をそのままアルファに使った
// 灰色のオーバーレイとしてモチーフレイヤーへ合成します。
func drawFogOverlay(dc *gg.Context, rng *rand.Rand, _ palette.Palette, _ float64) {
	w, h := dc.Width(), dc.Height()

	noise := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(rng.Float64() * 255)
			noise.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: v})
		}
	}

	dc.DrawImage(imaging.Blur(noise, 35), 0, 0)
}
