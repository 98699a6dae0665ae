package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "30匹でした", "30匹でした"},
		{"full width digits", "３０匹", "30匹"},
		{"full width question mark", "どうですか？", "どうですか?"},
		{"ideographic space", "今日　ゼロ", "今日 ゼロ"},
		{"newlines collapse", "波高い\n\nイカなし", "波高い イカなし"},
		{"leading and trailing", "  50匹くらい \t", "50匹くらい"},
		{"tilde range", "２〜３匹", "2〜3匹"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"１０分で５０匹ぐらい",
		"波少し高い\n気配なし　満潮の3時頃でしょ",
		"0時から2時までゼロでしたが…28匹でした",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
