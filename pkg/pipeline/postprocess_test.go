package pipeline

import (
	"reflect"
	"testing"

	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/llm"
)

func result(text string, level models.SurgeLevel) models.ClassificationResult {
	return models.ClassificationResult{
		Comment: comment(text),
		Level:   level,
		Source:  models.SourceLocal,
		Reason:  "test seed",
	}
}

func TestPostProcessQuantityOverridesUnknown(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	batch := models.Batch{
		result("40匹現在は、止まりました。", models.LevelUnknown),
		result("今からイカ掬いに行ってきます", models.LevelUnknown),
	}
	got := p.PostProcess(batch)

	if got[0].Level != models.LevelMany {
		t.Errorf("got[0].Level = %q, want %q (quantity 40)", got[0].Level, models.LevelMany)
	}
	if got[1].Level != models.LevelUnknown {
		t.Errorf("got[1].Level = %q, want %q (no quantity to recover)", got[1].Level, models.LevelUnknown)
	}
}

func TestPostProcessQuantityDoesNotTouchDecidedLabels(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	// 28匹 would map to moderate, but the label is not unknown.
	batch := models.Batch{result("28匹でした", models.LevelFew)}
	got := p.PostProcess(batch)

	if got[0].Level != models.LevelFew {
		t.Errorf("Level = %q, want %q (quantity rule only rescues unknown)", got[0].Level, models.LevelFew)
	}
}

func TestPostProcessVeryLargeOverride(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	tests := []struct {
		name  string
		seed  models.SurgeLevel
		want  models.SurgeLevel
		fixed bool
	}{
		{"unknown forced up", models.LevelUnknown, models.LevelVeryMany, false},
		{"few forced up", models.LevelFew, models.LevelVeryMany, false},
		{"many left alone", models.LevelMany, models.LevelMany, true},
		{"very-many left alone", models.LevelVeryMany, models.LevelVeryMany, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch := models.Batch{result("イカだらけで掬い放題でした", tt.seed)}
			got := p.PostProcess(batch)
			if got[0].Level != tt.want {
				t.Errorf("Level = %q, want %q", got[0].Level, tt.want)
			}
			if tt.fixed && got[0].Reason != "test seed" {
				t.Errorf("Reason = %q, want untouched seed reason", got[0].Reason)
			}
		})
	}
}

func TestPostProcessNegationOverride(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	batch := models.Batch{
		result("イカ全くいない、ゼロでした", models.LevelModerate),
		result("イカ全くいない、ゼロでした", models.LevelNone),
	}
	got := p.PostProcess(batch)

	if got[0].Level != models.LevelNone {
		t.Errorf("got[0].Level = %q, want %q", got[0].Level, models.LevelNone)
	}
	if got[1].Level != models.LevelNone || got[1].Reason != "test seed" {
		t.Errorf("got[1] = %q/%q, want untouched none", got[1].Level, got[1].Reason)
	}
}

func TestPostProcessNegationBeatsVeryLargeInSameComment(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	// Both strong cues present: the pass settles on none and stays there.
	batch := models.Batch{result("大量と聞いて来たけどゼロでした", models.LevelUnknown)}
	got := p.PostProcess(batch)

	if got[0].Level != models.LevelNone {
		t.Errorf("Level = %q, want %q", got[0].Level, models.LevelNone)
	}
}

func TestPostProcessIdempotent(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	batch := models.Batch{
		result("40匹現在は、止まりました。", models.LevelUnknown),
		result("イカだらけで掬い放題でした", models.LevelFew),
		result("イカ全くいない、ゼロでした", models.LevelModerate),
		result("大量と聞いて来たけどゼロでした", models.LevelUnknown),
		result("そこそこ掬えました", models.LevelModerate),
	}

	once := p.PostProcess(batch)
	twice := p.PostProcess(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("PostProcess not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestPostProcessDoesNotMutateInput(t *testing.T) {
	p := New(llm.Unavailable{}, testLogger())

	batch := models.Batch{result("イカだらけで掬い放題でした", models.LevelFew)}
	_ = p.PostProcess(batch)

	if batch[0].Level != models.LevelFew {
		t.Errorf("input batch mutated: Level = %q", batch[0].Level)
	}
}
