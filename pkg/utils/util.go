package utils

import (
	"strconv"
	"strings"
)

// FallbackSeed は不正なシード入力の代わりに使われる固定値です。
const FallbackSeed int64 = 42

// ParseSeed は、文字列のシード入力を安全に int64 へ変換します。
// 整数として解釈できない場合は FallbackSeed を返します。
func ParseSeed(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return FallbackSeed
	}
	return v
}

// ClampUnit は、スライダー値を [0,1] の範囲へ丸めます。
func ClampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
