package render

import (
	"strings"
	"testing"
)

func TestFontSizeBuckets(t *testing.T) {
	tests := []struct {
		name      string
		textLen   int
		shortSide float64
		want      float64
	}{
		{"empty", 0, 500, 100},
		{"short", 5, 500, 100},
		{"boundary 20 stays full", 20, 500, 100},
		{"21 is medium", 21, 500, 60},
		{"boundary 50 stays medium", 50, 500, 60},
		{"51 is long", 51, 500, 40},
		{"very long", 400, 1000, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FontSize(strings.Repeat("x", tt.textLen), tt.shortSide)
			if got != tt.want {
				t.Errorf("FontSize(len=%d, %v) = %v, want %v", tt.textLen, tt.shortSide, got, tt.want)
			}
		})
	}
}

func TestFontSizeCountsRunesNotBytes(t *testing.T) {
	// 20 runes, 60 bytes: must stay in the full-size bucket.
	text := strings.Repeat("日", 20)
	if got := FontSize(text, 500); got != 100 {
		t.Errorf("FontSize(20 CJK runes) = %v, want 100", got)
	}
}

func TestFontSizeMonotonic(t *testing.T) {
	for _, side := range []float64{24, 48, 320, 1080} {
		s10 := FontSize(strings.Repeat("a", 10), side)
		s30 := FontSize(strings.Repeat("a", 30), side)
		s60 := FontSize(strings.Repeat("a", 60), side)
		if !(s10 >= s30 && s30 >= s60) {
			t.Errorf("side %v: sizes %v, %v, %v are not non-increasing", side, s10, s30, s60)
		}
	}
}

func TestFontSizeHello(t *testing.T) {
	const side = 720.0
	if got, want := FontSize("HELLO", side), side/5*1.0; got != want {
		t.Errorf("FontSize(HELLO) = %v, want %v", got, want)
	}
}
