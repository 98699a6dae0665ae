package quantity

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      int
		wantFound bool
	}{
		{"counter suffix", "10分で50匹ぐらいのペースですね", 50, true},
		{"cup counter", "308杯でした", 308, true},
		{"zero then larger count keeps max", "0時から2時までゼロでしたが…28匹でした", 28, true},
		{"explicit zero word", "今夜はゼロでした", 0, true},
		{"zero with counter", "0匹です", 0, true},
		{"about qualifier", "約30いました", 30, true},
		{"ish qualifier", "40ぐらい掬えた", 40, true},
		{"per unit qualifier", "10ずつ増えてる", 10, true},
		{"range averages but counter wins max", "10〜20匹とれました", 20, true},
		{"pure range", "約20〜30でした", 25, true},
		{"kanji numeral", "五匹だけ", 5, true},
		{"kanji ten", "十杯ほど", 10, true},
		{"multiple counts keep max", "最初は5匹、最後は60匹", 60, true},
		{"no numeric expression", "たくさんいました", 0, false},
		{"bare number without counter ignored", "3時頃に行きます", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := Extract(tt.text)
			if found != tt.wantFound {
				t.Fatalf("Extract(%q) found = %v, want %v", tt.text, found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("Extract(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractAbsenceIsNotZero(t *testing.T) {
	if _, found := Extract("様子見です"); found {
		t.Error("Extract() reported a quantity for text with no numeric expression")
	}
	got, found := Extract("ゼロでした")
	if !found {
		t.Fatal("Extract() did not report the explicit zero")
	}
	if got != 0 {
		t.Errorf("Extract() = %d, want 0", got)
	}
}
