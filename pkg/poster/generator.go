// Package poster はポスター生成パイプライン全体を統括するオーケストレータです。
// シード→ベース場→霧→水彩→パステル→装飾→PNG の一方向パイプラインで、
// 同じ (シード, パラメータ, テキスト, パレット) からバイト一致の出力を再現します。
package poster

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/shouni/memory-poster-kit/pkg/domain"
	"github.com/shouni/memory-poster-kit/pkg/imgutil"
	"github.com/shouni/memory-poster-kit/pkg/layers"
	"github.com/shouni/memory-poster-kit/pkg/overlay"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// DefaultSize は正準のポスター一辺長（ピクセル）です。
const DefaultSize = 1024

// Generator はポスター生成の実行主体です。
// 並行リクエストはそれぞれ独立した乱数源を持つため、共有状態はありません。
type Generator struct {
	size   int
	logger *slog.Logger
}

// NewGenerator は一辺 size ピクセルのポスターを生成する Generator を初期化します。
// logger は nil を許容します（その場合はログを出しません）。
func NewGenerator(size int, logger *slog.Logger) (*Generator, error) {
	if size < 2 {
		return nil, fmt.Errorf("poster size must be at least 2, got %d", size)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{size: size, logger: logger}, nil
}

// Generate はリクエストを検証し、パイプラインを最後まで実行して
// PNG バイト列を返します。失敗しうるのは必須テキストの欠落のみで、
// 描画段のパラメータ異常はすべて黙って縮退します。
func (g *Generator) Generate(req domain.PosterRequest) (*domain.PosterResponse, error) {
	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("city is required")
	}
	if strings.TrimSpace(req.Memory) == "" {
		return nil, fmt.Errorf("memory text is required")
	}

	pal := palette.Normalize(req.Mood.Palette)
	rng := rand.New(rand.NewSource(req.Params.Seed))

	p := Modulate(req.Params, req.Mood.Intensity)
	g.logger.Debug("derived layer parameters",
		"seed", req.Params.Seed,
		"mist_strength", p.MistStrength,
		"wc_spread", p.WatercolorSpread,
		"wc_layers", p.WatercolorLayers,
		"pastel_blend", p.PastelBlend,
	)

	img := layers.BaseField(g.size, pal, req.Mood.Intensity)
	img = layers.Mist(img, rng, p.MistStrength, p.MistSmoothness, p.MistGlow)
	img = layers.Watercolor(img, rng, pal, p.WatercolorSpread, p.WatercolorLayers, p.WatercolorSaturation)
	img = layers.Pastel(img, rng, p.PastelSoftness, p.PastelGrain, p.PastelBlend)

	tags := overlay.DeriveTags(req.City, req.Memory)
	cityStrength := 0.45 + 0.55*p.EmotionLink
	img = overlay.Render(img, rng, palette.Accent(req.City, pal), tags, cityStrength)

	data, err := imgutil.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("failed to encode poster: %w", err)
	}

	return &domain.PosterResponse{
		Data:     data,
		MimeType: "image/png",
		UsedSeed: req.Params.Seed,
	}, nil
}

// Modulate はムード強度と感情リンクからレイヤーごとの実効パラメータを導出します。
// スライダー値そのものは変更せず、変調後のコピーを返します。
func Modulate(p domain.GenerationParams, intensity float64) domain.GenerationParams {
	factor := 0.35 + 0.65*p.EmotionLink

	out := p
	out.MistStrength = p.MistStrength * factor * (0.7 + 0.6*intensity)
	out.WatercolorSpread = p.WatercolorSpread * factor * (0.6 + 0.7*intensity)
	out.WatercolorLayers = int(math.Max(1, math.Round(float64(p.WatercolorLayers)*(0.6+0.8*intensity))))
	out.PastelSoftness = p.PastelSoftness * factor * (0.5 + 0.8*intensity)
	out.PastelGrain = p.PastelGrain * factor
	out.PastelBlend = p.PastelBlend * (0.6 + 0.3*p.EmotionLink)
	return out
}
