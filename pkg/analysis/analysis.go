// Package analysis は外部 API を使わないルールベースのテキスト解析を提供します。
// 記憶テキストからムードラベル・強度・パレットを推定し、パイプラインへ渡す
// 読み取り専用の文脈を組み立てます。
package analysis

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/shouni/memory-poster-kit/pkg/domain"
	"github.com/shouni/memory-poster-kit/pkg/palette"
)

// ムード判定用のキーワード辞書
var (
	warmWords  = []string{"warm", "sun", "spring", "smile", "friends", "love", "cozy", "light"}
	sadWords   = []string{"winter", "cold", "alone", "rain", "snow", "goodbye", "leaving", "empty"}
	tenseWords = []string{"crowded", "traffic", "noise", "anxious", "lost", "rush", "late"}

	reportKeywords = []string{"river", "bridge", "station", "market", "subway", "cafe", "beach", "mountain"}
)

// Report はレポート表示向けのフィールドを含む解析結果の全体です。
type Report struct {
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Mood         string   `json:"mood"`
	Intensity    float64  `json:"intensity"`
	PaletteHex   []string `json:"palette_hex"`
	CityKeywords []string `json:"city_keywords"`
	Summary      string   `json:"summary"`
}

// MoodContext は解析結果をパイプラインが消費する文脈へ変換します。
func (r *Report) MoodContext() domain.MoodContext {
	return domain.MoodContext{
		Mood:      r.Mood,
		Intensity: r.Intensity,
		Palette:   palette.Normalize(r.PaletteHex),
	}
}

// Analyze は都市名と記憶テキストからムードとパレットを推定します。
// キーワードの出現数で warm / melancholic / tense のいずれかに分類し、
// それぞれに固定のパレットと強度を割り当てます。
func Analyze(city, memory string) *Report {
	text := strings.ToLower(memory + " " + city)

	warm := countHits(text, warmWords)
	sad := countHits(text, sadWords)
	tense := countHits(text, tenseWords)

	var mood string
	var hex []string
	var intensity float64
	switch {
	case warm >= sad && warm >= tense:
		mood = "warm / hopeful"
		hex = []string{"#FFE3C2", "#FFB7C5", "#FFF5D6"}
		intensity = 0.45
	case sad >= warm && sad >= tense:
		mood = "calm / nostalgic"
		hex = []string{"#A9C8FF", "#D5E0F2", "#6E8BB5"}
		intensity = 0.6
	default:
		mood = "tense / vibrant"
		hex = []string{"#F8E078", "#FF9E6B", "#F4F1E8"}
		intensity = 0.7
	}

	cityName := strings.TrimSpace(city)
	if cityName == "" {
		cityName = "the city"
	}

	var keywords []string
	for _, kw := range reportKeywords {
		if strings.Contains(text, kw) {
			keywords = append(keywords, kw)
		}
	}

	return &Report{
		Title:        fmt.Sprintf("Memory of %s", cityName),
		Subtitle:     "An abstract emotional poster based purely on your text description.",
		Mood:         mood,
		Intensity:    intensity,
		PaletteHex:   hex,
		CityKeywords: keywords,
		Summary: fmt.Sprintf("In this %s memory, the dominant feeling is %s with an intensity of about %.2f.",
			cityName, mood, intensity),
	}
}

// AutoSeed は都市名と記憶テキストから決定的にシードを導出します。
// 同じ入力は常に同じシードになります。
func AutoSeed(city, memory string) int64 {
	s := strings.TrimSpace(city) + "|" + strings.TrimSpace(memory)
	sum := sha256.Sum256([]byte(s))
	hex := fmt.Sprintf("%x", sum)
	v, err := strconv.ParseInt(hex[:8], 16, 64)
	if err != nil {
		return 42
	}
	return v % 100000
}

func countHits(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}
