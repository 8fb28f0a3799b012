package utils

import "testing"

func TestParseSeed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"整数はそのまま読める", "123", 123},
		{"負の値も許容する", "-5", -5},
		{"前後の空白は無視される", " 42 ", 42},
		{"数値でなければフォールバックになる", "abc", FallbackSeed},
		{"空文字列もフォールバックになる", "", FallbackSeed},
		{"小数はフォールバックになる", "1.5", FallbackSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSeed(tt.raw); got != tt.want {
				t.Errorf("ParseSeed(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClampUnit(t *testing.T) {
	if got := ClampUnit(-0.5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := ClampUnit(1.5); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
	if got := ClampUnit(0.25); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
}
