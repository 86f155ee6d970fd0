package display

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hammamikhairi/brewcraft/internal/domain"
)

func TestSplitCodes(t *testing.T) {
	tests := []struct {
		in   string
		want []segment
	}{
		{"Ale", []segment{{"", "Ale"}}},
		{"&6Golden Ale", []segment{{"#FFAA00", "Golden Ale"}}},
		{"&6Golden &fAle", []segment{{"#FFAA00", "Golden "}, {"#FFFFFF", "Ale"}}},
		{"&#aa5500Rust", []segment{{"#AA5500", "Rust"}}},
		{"Fish &zChips", []segment{{"", "Fish &zChips"}}},
		{"&6", nil},
		{"Ale&", []segment{{"", "Ale&"}}},
	}
	for _, tt := range tests {
		if got := splitCodes(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCodes(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRenderCodesListsEveryCode(t *testing.T) {
	out := RenderCodes(6)
	for _, c := range domain.ColorCodes {
		if !strings.Contains(out, c.Code) {
			t.Errorf("missing %s", c.Code)
		}
	}
}
