// Package llm is the optional remote classifier. The variant is chosen once
// at construction: a configured remote model, or Unavailable for permanent
// local-only mode. Callers never branch on configuration state elsewhere.
package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/toyamabay/hotaruika-surge/models"
)

// ErrUnavailable is returned by the Unavailable variant. Callers treat it as
// a degraded-but-valid mode, never as a failure of the run.
var ErrUnavailable = errors.New("remote classifier not configured")

// Classification is the remote model's answer for one comment.
type Classification struct {
	Level  models.SurgeLevel
	Reason string
}

// Classifier labels one comment with a surge level.
type Classifier interface {
	Classify(ctx context.Context, comment string) (Classification, error)
	Available() bool
}

// Unavailable is the no-remote-model variant.
type Unavailable struct{}

func (Unavailable) Classify(context.Context, string) (Classification, error) {
	return Classification{}, ErrUnavailable
}

func (Unavailable) Available() bool { return false }

// New selects the adapter variant from config.
func New(cfg models.LLMConfig, logger *slog.Logger) Classifier {
	if !cfg.Configured() {
		return Unavailable{}
	}
	return NewGrok(cfg, &http.Client{Timeout: cfg.Timeout.Std()}, logger)
}
