package detect

import "testing"

func TestDetectIntensity(t *testing.T) {
	c := NewCatalogue()

	tests := []struct {
		name string
		text string
		want Signals
	}{
		{"negation word", "イカは全くいません", Signals{Negation: true}},
		{"squid zero slang", "イカゼロ", Signals{Negation: true}},
		{"negation context pattern", "イカの姿は見当たらないです", Signals{Negation: true}},
		{"small", "イカはちらほらでした", Signals{Small: true}},
		{"normal", "そこそこ掬えました", Signals{Normal: true}},
		{"large", "イカがたくさんいて堪能しました", Signals{Large: true}},
		{"very large", "イカが大量発生してました", Signals{VeryLarge: true}},
		{"large and very large overlap", "イカ非常に多い、大漁でした", Signals{Large: true, VeryLarge: true}},
		{"no cues", "30匹でした", Signals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Detect(tt.text)
			if got != tt.want {
				t.Errorf("Detect(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectUnrelated(t *testing.T) {
	c := NewCatalogue()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"weather plus question", "波少し高い気配なし満潮の3時頃でしょ", true},
		{"short without squid vocabulary", "今日は雨です", true},
		{"short but squid report", "イカゼロ", false},
		{"question asking for info", "どこがいいですか?教えてください", true},
		{"question that is a negative report", "イカいないですか?教えてください", false},
		{"link spam", "https://youtu.be/abc123 をどうぞ見てください", true},
		{"two off-topic groups", "波が高くて駐車場もかなり混雑していました", true},
		{"off-topic groups with harvest vocabulary", "波ありましたが駐車場近くで30匹獲れました", false},
		{"plain report", "0時から2時までゼロでしたが…28匹でした", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Detect(tt.text)
			if got.Unrelated != tt.want {
				t.Errorf("Detect(%q).Unrelated = %v, want %v", tt.text, got.Unrelated, tt.want)
			}
		})
	}
}

func TestDetectorsAreIndependent(t *testing.T) {
	c := NewCatalogue()

	// An off-topic comment still reports its intensity cues; the scorer,
	// not the detectors, resolves the conflict.
	got := c.Detect("波少し高い気配なし満潮の3時頃でしょ")
	if !got.Unrelated {
		t.Error("Unrelated = false, want true")
	}
	if !got.Negation {
		t.Error("Negation = false, want true (気配なし)")
	}
	if !got.Small {
		t.Error("Small = false, want true (少し)")
	}
}
