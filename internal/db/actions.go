package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/toyamabay/hotaruika-surge/internal/scrape"
	dbpkg "github.com/toyamabay/hotaruika-surge/pkg/db"
	"github.com/toyamabay/hotaruika-surge/pkg/stats"
)

// RunsAction lists the stored scraping runs, newest first.
func RunsAction(c *cli.Context) error {
	logger := scrape.NewLogger(c.Bool("quiet"))

	cfg, err := scrape.LoadConfig(c)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	database, err := dbpkg.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	runs, err := database.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-8s %-10s %-30s\n",
		"ID", "Created", "Pages", "Comments", "Board")
	fmt.Println(strings.Repeat("-", 80))

	for _, r := range runs {
		board := r.BoardTitle
		if board == "" {
			board = r.BaseURL
		}
		fmt.Printf("%-6d %-20s %-8d %-10d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.PageCount,
			r.CommentCount,
			board,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))

	if c.Int("run") > 0 {
		batch, err := database.GetRunBatch(int64(c.Int("run")))
		if err != nil {
			return fmt.Errorf("failed to load run %d: %w", c.Int("run"), err)
		}
		fmt.Println()
		fmt.Print(stats.Summarize(batch).Format())
	}
	return nil
}
