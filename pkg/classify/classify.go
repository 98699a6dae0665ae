// Package classify maps extractor output and detector signals to one of the
// six surge levels. First matching rule wins; every input yields exactly one
// label and unknown is the universal fallback.
package classify

import (
	"fmt"

	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/detect"
)

// Count thresholds for the numeric rule. An explicit count overrides every
// lexical signal.
const (
	fewMax      = 10
	moderateMax = 30
	manyMax     = 70
)

// LevelForCount maps an explicit count to its surge level.
func LevelForCount(n int) models.SurgeLevel {
	switch {
	case n == 0:
		return models.LevelNone
	case n <= fewMax:
		return models.LevelFew
	case n <= moderateMax:
		return models.LevelModerate
	case n <= manyMax:
		return models.LevelMany
	default:
		return models.LevelVeryMany
	}
}

// Score resolves a surge level from the extracted quantity (if any) and the
// detector signals. The returned reason names the rule that fired.
func Score(qty int, hasQty bool, sig detect.Signals) (models.SurgeLevel, string) {
	if sig.Unrelated {
		return models.LevelUnknown, "off-topic/question"
	}

	if hasQty {
		return LevelForCount(qty), fmt.Sprintf("quantity: %d", qty)
	}

	if sig.Negation {
		return models.LevelNone, "negation cue"
	}

	switch {
	case sig.VeryLarge:
		return models.LevelVeryMany, "very-large vocabulary"
	case sig.Large:
		return models.LevelMany, "large vocabulary"
	case sig.Normal:
		return models.LevelModerate, "normal vocabulary"
	case sig.Small:
		return models.LevelFew, "small vocabulary"
	}

	return models.LevelUnknown, "no signal matched"
}
