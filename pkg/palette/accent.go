package palette

import "strings"

// accentTable は都市名の部分一致で選ばれる手選びのアクセントパレットです。
// 装飾モチーフの描画段でのみ使われ、ベースのムードパレットは置き換えません。
var accentTable = []struct {
	keys []string
	hex  []string
}{
	{[]string{"seoul", "hongdae", "gangnam"}, []string{"#ff4fa3", "#38e5ff", "#ffd166"}},
	{[]string{"tokyo", "shibuya", "akihabara"}, []string{"#ff2e63", "#08d9d6", "#f9f7f7"}},
	{[]string{"paris"}, []string{"#e8c1a0", "#a9c5a0", "#f5e6ca"}},
	{[]string{"london"}, []string{"#9aa5b1", "#cbd2d9", "#616e7c"}},
	{[]string{"new york", "nyc", "manhattan"}, []string{"#ffd23f", "#ee4266", "#3bceac"}},
	{[]string{"busan"}, []string{"#4ecdc4", "#f7fff7", "#ff6b6b"}},
	{[]string{"hong kong"}, []string{"#f72585", "#4cc9f0", "#ffba08"}},
	{[]string{"amsterdam"}, []string{"#ef8354", "#bfc0c0", "#4f5d75"}},
}

// Accent は都市名に対応するアクセントパレットを返します。
// 一致する都市がなければ与えられたフォールバックをそのまま返します。
func Accent(city string, fallback Palette) Palette {
	lower := strings.ToLower(city)
	for _, entry := range accentTable {
		for _, key := range entry.keys {
			if strings.Contains(lower, key) {
				if p := fromHexList(entry.hex); len(p) > 0 {
					return p
				}
			}
		}
	}
	return nonEmpty(fallback)
}
