package scrape

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/toyamabay/hotaruika-surge/internal/common"
	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/db"
	"github.com/toyamabay/hotaruika-surge/pkg/export"
	"github.com/toyamabay/hotaruika-surge/pkg/llm"
	"github.com/toyamabay/hotaruika-surge/pkg/pipeline"
	"github.com/toyamabay/hotaruika-surge/pkg/scraper"
	"github.com/toyamabay/hotaruika-surge/pkg/stats"
)

// NewLogger builds the JSON logger every command uses. Log output goes to
// stderr so stdout stays clean for the summary tables.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the config file named by --config and applies the flag
// overrides shared across commands.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("url") {
		cfg.BaseURL = common.SanitizeURL(c.String("url"))
	}
	if c.IsSet("max-pages") {
		cfg.MaxPages = c.Int("max-pages")
	}
	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("skip-foreign") {
		cfg.SkipForeign = c.Bool("skip-foreign")
	}
	if c.Bool("local-only") {
		cfg.LLM.APIKey = ""
	}
	if err := common.ValidateBoardURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ScrapeAction fetches the board, classifies every comment, post-processes
// the batch, and persists it to CSV and the run-history database.
func ScrapeAction(c *cli.Context) error {
	logger := NewLogger(c.Bool("quiet"))

	cfg, err := LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	s := scraper.New(cfg, logger)
	result, err := s.Run(c.Context)
	if err != nil {
		logger.Error("scrape failed", "error", err)
		os.Exit(2)
	}
	if len(result.Comments) == 0 {
		fmt.Println("no comments found")
		return nil
	}

	p := pipeline.New(llm.New(cfg.LLM, logger), logger)
	batch := p.Run(c.Context, result.Comments)
	batch = p.PostProcess(batch)

	runID, err := database.InsertRun(cfg.BaseURL, result.Meta.Title, result.Meta.SiteName)
	if err != nil {
		logger.Error("failed to record run", "error", err)
		os.Exit(2)
	}
	if err := database.SaveBatch(runID, batch); err != nil {
		logger.Error("failed to save batch", "error", err, "run_id", runID)
		os.Exit(2)
	}
	if err := database.FinishRun(runID, result.PagesFetched, len(batch)); err != nil {
		logger.Error("failed to finish run", "error", err, "run_id", runID)
		os.Exit(2)
	}

	if err := export.WriteFile(cfg.OutputPath, batch); err != nil {
		logger.Error("failed to write CSV", "error", err, "path", cfg.OutputPath)
		os.Exit(2)
	}

	fmt.Printf("run %d saved, CSV written to %s\n", runID, cfg.OutputPath)
	fmt.Print(stats.Summarize(batch).Format())
	return nil
}
