// Package palette は任意の形で渡されるパレット入力を正規化し、
// 描画ステージが前提にできる単一の正準型 Palette を提供します。
package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette は順序付きで空にならない RGB 色列です。重複は許容されます。
type Palette []color.NRGBA

// Default は入力が空・不正だった場合に代替される 3 色のフォールバックです。
func Default() Palette {
	return Palette{
		{R: 200, G: 220, B: 230, A: 255},
		{R: 230, G: 240, B: 245, A: 255},
		{R: 180, G: 200, B: 210, A: 255},
	}
}

// Normalize は外部境界で一度だけ呼ばれる正規化関数です。
// nil、フラットな [r,g,b]、単一スカラー（グレースケール化）、3 要素以上の行の列、
// 16 進文字列の列などを受け付け、常に 1 色以上の Palette を返します。
// 解釈できない入力はフォールバックに置き換えられ、決して失敗しません。
func Normalize(raw any) Palette {
	switch v := raw.(type) {
	case nil:
		return Default()
	case Palette:
		return nonEmpty(v)
	case []color.NRGBA:
		return nonEmpty(Palette(v))
	case []string:
		return nonEmpty(fromHexList(v))
	case []int:
		return fromFlat(toFloats(v))
	case []float64:
		return fromFlat(v)
	case [][]int:
		out := make(Palette, 0, len(v))
		for _, row := range v {
			if c, ok := fromRow(toFloats(row)); ok {
				out = append(out, c)
			}
		}
		return nonEmpty(out)
	case [][]float64:
		out := make(Palette, 0, len(v))
		for _, row := range v {
			if c, ok := fromRow(row); ok {
				out = append(out, c)
			}
		}
		return nonEmpty(out)
	case [][3]int:
		out := make(Palette, 0, len(v))
		for _, row := range v {
			out = append(out, color.NRGBA{R: clamp8(float64(row[0])), G: clamp8(float64(row[1])), B: clamp8(float64(row[2])), A: 255})
		}
		return nonEmpty(out)
	case []any:
		return fromMixed(v)
	default:
		return Default()
	}
}

// PadTo3 はパレットをちょうど 3 色のアンカー (c1, c2, c3) に整えます。
// 1 色なら繰り返し、2 色なら c1, c2, c1 の順で補います。
func PadTo3(p Palette) Palette {
	p = nonEmpty(p)
	switch len(p) {
	case 1:
		return Palette{p[0], p[0], p[0]}
	case 2:
		return Palette{p[0], p[1], p[0]}
	default:
		return p[:3]
	}
}

// Lerp は c1 から c2 へ t (0.0 - 1.0) で線形補間します。
func Lerp(c1, c2 color.NRGBA, t float64) color.NRGBA {
	a := colorful.Color{R: float64(c1.R) / 255, G: float64(c1.G) / 255, B: float64(c1.B) / 255}
	b := colorful.Color{R: float64(c2.R) / 255, G: float64(c2.G) / 255, B: float64(c2.B) / 255}
	m := a.BlendRgb(b, t).Clamped()
	r, g, bl := m.RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

// Desaturate は水彩インクの濃度表現として、彩度が低いほど白へ近づけます。
// 各チャンネルを 0.4*(1-saturation) の割合で白方向へ移動します。
func Desaturate(c color.NRGBA, saturation float64) color.NRGBA {
	f := 0.4 * (1 - saturation)
	return color.NRGBA{
		R: clamp8(float64(c.R) + (255-float64(c.R))*f),
		G: clamp8(float64(c.G) + (255-float64(c.G))*f),
		B: clamp8(float64(c.B) + (255-float64(c.B))*f),
		A: 255,
	}
}

// Vivid はネオン系モチーフ用に各チャンネルを 1.2 倍へブーストします。
func Vivid(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(c.R) * 1.2),
		G: clamp8(float64(c.G) * 1.2),
		B: clamp8(float64(c.B) * 1.2),
		A: 255,
	}
}

func nonEmpty(p Palette) Palette {
	if len(p) == 0 {
		return Default()
	}
	return p
}

// fromFlat はフラットな数値列を 1 色として解釈します。
// 3 要素以上なら [r,g,b]、1-2 要素なら先頭値のグレースケールです。
func fromFlat(v []float64) Palette {
	if len(v) == 0 {
		return Default()
	}
	if len(v) >= 3 {
		return Palette{{R: clamp8(v[0]), G: clamp8(v[1]), B: clamp8(v[2]), A: 255}}
	}
	g := clamp8(v[0])
	return Palette{{R: g, G: g, B: g, A: 255}}
}

func fromRow(row []float64) (color.NRGBA, bool) {
	if len(row) < 3 {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: clamp8(row[0]), G: clamp8(row[1]), B: clamp8(row[2]), A: 255}, true
}

func fromMixed(v []any) Palette {
	if len(v) == 0 {
		return Default()
	}
	// 先頭が数値ならフラットな単色指定とみなす
	if _, ok := asFloat(v[0]); ok {
		flat := make([]float64, 0, len(v))
		for _, e := range v {
			if f, ok := asFloat(e); ok {
				flat = append(flat, f)
			}
		}
		return fromFlat(flat)
	}
	out := make(Palette, 0, len(v))
	for _, e := range v {
		switch row := e.(type) {
		case []int:
			if c, ok := fromRow(toFloats(row)); ok {
				out = append(out, c)
			}
		case []float64:
			if c, ok := fromRow(row); ok {
				out = append(out, c)
			}
		case []any:
			flat := make([]float64, 0, len(row))
			for _, n := range row {
				if f, ok := asFloat(n); ok {
					flat = append(flat, f)
				}
			}
			if c, ok := fromRow(flat); ok {
				out = append(out, c)
			}
		case string:
			if c, ok := parseHex(row); ok {
				out = append(out, c)
			}
		case color.NRGBA:
			out = append(out, row)
		}
	}
	return nonEmpty(out)
}

func fromHexList(v []string) Palette {
	out := make(Palette, 0, len(v))
	for _, hx := range v {
		if c, ok := parseHex(hx); ok {
			out = append(out, c)
		}
	}
	return out
}

func parseHex(hx string) (color.NRGBA, bool) {
	c, err := colorful.Hex(hx)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func toFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, n := range v {
		out[i] = float64(n)
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
