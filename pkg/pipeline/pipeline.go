// Package pipeline wires the classification stages together: normalization,
// numeric extraction and cue detection, local scoring, and reconciliation
// with the optional remote model. One comment is classified at a time; the
// local result is always computed before the remote call so discrepancies
// can be logged.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/classify"
	"github.com/toyamabay/hotaruika-surge/pkg/detect"
	"github.com/toyamabay/hotaruika-surge/pkg/llm"
	"github.com/toyamabay/hotaruika-surge/pkg/quantity"
	"github.com/toyamabay/hotaruika-surge/pkg/textnorm"
)

type Pipeline struct {
	catalogue *detect.Catalogue
	remote    llm.Classifier
	logger    *slog.Logger
}

// New builds a pipeline around the given remote classifier variant. Pass
// llm.Unavailable{} for local-only mode.
func New(remote llm.Classifier, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		catalogue: detect.NewCatalogue(),
		remote:    remote,
		logger:    logger,
	}
}

// ClassifyComment labels one comment. A failed remote call is downgraded to
// the local result; classification never fails.
func (p *Pipeline) ClassifyComment(ctx context.Context, c models.Comment) models.ClassificationResult {
	text := textnorm.Normalize(c.Text)
	qty, hasQty := quantity.Extract(text)
	sig := p.catalogue.Detect(text)

	localLevel, localReason := classify.Score(qty, hasQty, sig)
	result := models.ClassificationResult{
		Comment: c,
		Level:   localLevel,
		Source:  models.SourceLocal,
		Reason:  localReason,
	}

	if !p.remote.Available() {
		return result
	}

	remote, err := p.remote.Classify(ctx, c.Text)
	if err != nil {
		p.logger.Warn("remote classification failed, keeping local result",
			"error", err, "level", localLevel, "comment", preview(c.Text))
		return result
	}

	// Remote is authoritative when it answers. A disagreement between two
	// non-unknown labels is a discrepancy, not an error.
	result.Level = remote.Level
	result.Reason = remote.Reason
	result.Source = models.SourceRemote
	if localLevel != remote.Level && localLevel != models.LevelUnknown && remote.Level != models.LevelUnknown {
		p.logger.Warn("classification discrepancy",
			"local", localLevel, "remote", remote.Level, "comment", preview(c.Text))
		result.Source = models.SourceReconciled
	}
	return result
}

// Run classifies every comment in order. Callers apply PostProcess once the
// whole batch is labeled.
func (p *Pipeline) Run(ctx context.Context, comments []models.Comment) models.Batch {
	batch := make(models.Batch, 0, len(comments))
	for _, c := range comments {
		batch = append(batch, p.ClassifyComment(ctx, c))
	}
	return batch
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= 50 {
		return text
	}
	return string(runes[:50]) + "..."
}
