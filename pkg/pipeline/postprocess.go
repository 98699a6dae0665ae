package pipeline

import (
	"fmt"
	"regexp"

	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/classify"
	"github.com/toyamabay/hotaruika-surge/pkg/quantity"
	"github.com/toyamabay/hotaruika-surge/pkg/textnorm"
)

// Stronger signals than the ones the classifier trusts: these words decide
// the label on their own during the corrective pass.
var (
	strongVeryLarge = regexp.MustCompile(`大量|爆寄り|イカだらけ`)
	strongNegation  = regexp.MustCompile(`ゼロ|いない|なし|居ない`)
)

// PostProcess is the corrective second pass over a finished batch. It
// re-derives the quantity for records still labeled unknown, then applies
// two unconditional overrides against the current label. The pass is
// idempotent: each rule only moves a record toward none or very-many.
func (p *Pipeline) PostProcess(batch models.Batch) models.Batch {
	out := make(models.Batch, len(batch))
	copy(out, batch)

	for i := range out {
		text := textnorm.Normalize(out[i].Comment.Text)

		if out[i].Level == models.LevelUnknown {
			if qty, ok := quantity.Extract(text); ok {
				out[i].Level = classify.LevelForCount(qty)
				out[i].Reason = fmt.Sprintf("post-process quantity: %d", qty)
				p.logger.Info("post-process quantity override",
					"level", out[i].Level, "quantity", qty, "comment", preview(text))
			}
		}

		if strongVeryLarge.MatchString(text) &&
			out[i].Level != models.LevelMany && out[i].Level != models.LevelVeryMany {
			out[i].Level = models.LevelVeryMany
			out[i].Reason = "post-process: strong very-large vocabulary"
			p.logger.Info("post-process very-large override", "comment", preview(text))
		}

		if strongNegation.MatchString(text) && out[i].Level != models.LevelNone {
			out[i].Level = models.LevelNone
			out[i].Reason = "post-process: strong negation vocabulary"
			p.logger.Info("post-process negation override", "comment", preview(text))
		}
	}

	return out
}
