// Package overlay は記憶テキストから導出したスタイルタグに応じて、
// 都市ごとの装飾モチーフをベースラスターへ合成します。
package overlay

import (
	"strings"

	"github.com/shouni/memory-poster-kit/pkg/domain"
)

// タグごとのキーワード辞書。複数のタグが同時に成立することがあります。
var tagKeywords = []struct {
	tags  []domain.StyleTag
	words []string
}{
	{[]domain.StyleTag{domain.TagVerticalNeon}, []string{"seoul", "hongdae", "gangnam", "neon", "k-pop", "kpop"}},
	{[]domain.StyleTag{domain.TagVerticalNeon, domain.TagPixelGrid}, []string{"tokyo", "shibuya", "akihabara", "anime"}},
	{[]domain.StyleTag{domain.TagArches}, []string{"paris", "seine", "eiffel", "louvre", "cafe"}},
	{[]domain.StyleTag{domain.TagFogOverlay}, []string{"london", "fog", "rain", "thames"}},
	{[]domain.StyleTag{domain.TagVerticalNeon, domain.TagChaosLines}, []string{"new york", "nyc", "manhattan", "times square"}},
	{[]domain.StyleTag{domain.TagWaves}, []string{"beach", "ocean", "sea", "harbor", "island"}},
	{[]domain.StyleTag{domain.TagPeaks}, []string{"mountain", "hill", "peak", "alps"}},
}

// DeriveTags は都市名と記憶テキストの結合文字列からスタイルタグを導出します。
// 結果は重複なしで辞書の定義順に並び、キーワードが一つも一致しなければ
// waves のみを返します（空集合にはなりません）。
func DeriveTags(city, memory string) []domain.StyleTag {
	text := strings.ToLower(city + " " + memory)

	seen := make(map[domain.StyleTag]bool)
	var tags []domain.StyleTag
	for _, entry := range tagKeywords {
		matched := false
		for _, w := range entry.words {
			if strings.Contains(text, w) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, tag := range entry.tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}

	if len(tags) == 0 {
		tags = []domain.StyleTag{domain.TagWaves}
	}
	return tags
}
