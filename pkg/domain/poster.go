package domain

import "image/color"

// StyleTag は記憶テキストのキーワードから導出される装飾モチーフの種別です。
// UI から直接指定されることはなく、テキスト解析の結果としてのみ決まります。
type StyleTag string

const (
	TagWaves        StyleTag = "waves"
	TagVerticalNeon StyleTag = "vertical_neon"
	TagPixelGrid    StyleTag = "pixel_grid"
	TagArches       StyleTag = "arches"
	TagFogOverlay   StyleTag = "fog_overlay"
	TagChaosLines   StyleTag = "chaos_lines"
	TagPeaks        StyleTag = "peaks"
)

// GenerationParams はユーザーが調整できる生成パラメータの一式です。
// 各値は記載のレンジを想定します。レンジ外でもパイプラインは失敗せず、
// 0 以下はレイヤー無効化のシグナルとして扱われます。
type GenerationParams struct {
	MistStrength   float64 `json:"mist_strength"`   // 0.0 - 1.0
	MistSmoothness float64 `json:"mist_smoothness"` // 0.0 - 1.0
	MistGlow       float64 `json:"mist_glow"`       // 0.0 - 1.0

	WatercolorSpread     float64 `json:"wc_spread"`     // 0.0 - 1.0
	WatercolorLayers     int     `json:"wc_layers"`     // 1 - 6
	WatercolorSaturation float64 `json:"wc_saturation"` // 0.0 - 1.0

	PastelSoftness float64 `json:"pastel_softness"` // 0.0 - 1.0
	PastelGrain    float64 `json:"pastel_grain"`    // 0.0 - 1.0
	PastelBlend    float64 `json:"pastel_blend"`    // 0.0 - 1.0

	// EmotionLink は感情強度が視覚パラメータへ波及する度合いです。0.0 - 1.0
	EmotionLink float64 `json:"emotion_link"`

	// Seed が同じなら同じ入力から常に同一のポスターが再現されます。
	Seed int64 `json:"seed"`
}

// DefaultParams は元の UI と同じ初期スライダー値を返します。
func DefaultParams() GenerationParams {
	return GenerationParams{
		MistStrength:         0.6,
		MistSmoothness:       0.2,
		MistGlow:             0.3,
		WatercolorSpread:     0.45,
		WatercolorLayers:     4,
		WatercolorSaturation: 0.86,
		PastelSoftness:       0.5,
		PastelGrain:          0.25,
		PastelBlend:          0.6,
		EmotionLink:          0.7,
		Seed:                 42,
	}
}

// MoodContext はテキスト解析コラボレータが生成する読み取り専用の文脈です。
type MoodContext struct {
	Mood      string        `json:"mood"`
	Intensity float64       `json:"intensity"` // 0.0 - 1.0
	Palette   []color.NRGBA `json:"palette"`
}

// PosterRequest は単一のポスター生成要求です。
type PosterRequest struct {
	City   string
	Memory string
	Mood   MoodContext
	Params GenerationParams
}

// PosterResponse は生成されたポスター画像とそのメタデータです。
type PosterResponse struct {
	Data     []byte
	MimeType string
	UsedSeed int64
}
