// Package scraper fetches the surge-report board and turns its posts into
// validated comments for the classification pipeline. It owns pagination
// discovery, the inter-page delay, duplicate screening, and language
// screening; the pipeline never sees a comment with an empty body or an
// unresolved date.
package scraper

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/toyamabay/hotaruika-surge/internal/common"
	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/textnorm"
)

type Scraper struct {
	fetcher  *Fetcher
	screener *Screener
	cfg      *models.Config
	logger   *slog.Logger
}

// Result is everything one scraping run produced.
type Result struct {
	Meta         BoardMeta
	Comments     []models.Comment
	PagesFetched int
	Duplicates   int
	Foreign      int
}

func New(cfg *models.Config, logger *slog.Logger) *Scraper {
	return &Scraper{
		fetcher:  NewFetcher(cfg.UserAgent, 15*time.Second),
		screener: NewScreener(),
		cfg:      cfg,
		logger:   logger,
	}
}

// Run fetches every validated board page and collects its comments. Only a
// failure on the first page is fatal; later pages are skipped with a warning
// so a flaky page does not lose the rest of the run.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	firstPage, err := s.fetcher.GetBytes(ctx, s.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	firstDoc, err := goquery.NewDocumentFromReader(bytes.NewReader(firstPage))
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if meta, err := boardMeta(firstPage, s.cfg.BaseURL); err != nil {
		s.logger.Warn("board metadata unavailable", "error", err)
	} else {
		result.Meta = meta
		s.logger.Info("board metadata", "title", meta.Title, "site", meta.SiteName)
	}

	urls, err := discoverPageURLs(firstDoc, s.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	urls = s.validatePages(ctx, urls)
	if len(urls) > s.cfg.MaxPages {
		s.logger.Info("capping page count", "discovered", len(urls), "max", s.cfg.MaxPages)
		urls = urls[:s.cfg.MaxPages]
	}

	seen := make(map[string]bool)
	for i, pageURL := range urls {
		doc := firstDoc
		if i > 0 {
			if err := s.wait(ctx); err != nil {
				return nil, err
			}
			doc, err = s.fetcher.GetDocument(ctx, pageURL)
			if err != nil {
				s.logger.Warn("skipping page", "url", pageURL, "error", err)
				continue
			}
		}
		result.PagesFetched++

		comments := extractComments(doc, pageURL, i+1)
		s.logger.Info("page scraped", "url", pageURL, "page", i+1, "comments", len(comments))

		for _, c := range comments {
			hash := common.ContentHash([]byte(textnorm.Normalize(c.Text)))
			if seen[hash] {
				result.Duplicates++
				s.logger.Debug("duplicate comment skipped", "posted_at", c.PostedAt)
				continue
			}
			seen[hash] = true

			if s.screener.Foreign(c.Text) {
				result.Foreign++
				s.logger.Info("non-Japanese comment", "posted_at", c.PostedAt, "skipped", s.cfg.SkipForeign)
				if s.cfg.SkipForeign {
					continue
				}
			}
			result.Comments = append(result.Comments, c)
		}
	}

	s.logger.Info("scrape finished",
		"pages", result.PagesFetched,
		"comments", len(result.Comments),
		"duplicates", result.Duplicates,
		"foreign", result.Foreign)
	return result, nil
}

// validatePages HEAD-checks every discovered page URL. The base URL was
// already fetched, so it is kept as-is.
func (s *Scraper) validatePages(ctx context.Context, urls []string) []string {
	valid := urls[:1]
	for _, u := range urls[1:] {
		if err := s.fetcher.Validate(ctx, u); err != nil {
			s.logger.Warn("dropping page URL", "url", u, "error", err)
			continue
		}
		valid = append(valid, u)
	}
	return valid
}

func (s *Scraper) wait(ctx context.Context) error {
	timer := time.NewTimer(s.cfg.PageDelay.Std())
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
