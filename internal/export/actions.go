package export

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/toyamabay/hotaruika-surge/internal/scrape"
	"github.com/toyamabay/hotaruika-surge/pkg/db"
	"github.com/toyamabay/hotaruika-surge/pkg/export"
)

// ExportAction writes a stored run back out as CSV.
func ExportAction(c *cli.Context) error {
	logger := scrape.NewLogger(c.Bool("quiet"))

	cfg, err := scrape.LoadConfig(c)
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

	runID := int64(c.Int("run"))
	if runID == 0 {
		runID, err = database.LatestRunID()
		if err != nil {
			logger.Error("no runs to export", "error", err)
			os.Exit(2)
		}
	}

	batch, err := database.GetRunBatch(runID)
	if err != nil {
		logger.Error("failed to load run", "error", err, "run_id", runID)
		os.Exit(2)
	}
	if len(batch) == 0 {
		fmt.Printf("run %d has no classified comments\n", runID)
		return nil
	}

	if err := export.WriteFile(cfg.OutputPath, batch); err != nil {
		logger.Error("failed to write CSV", "error", err, "path", cfg.OutputPath)
		os.Exit(2)
	}

	fmt.Printf("run %d exported to %s (%d rows)\n", runID, cfg.OutputPath, len(batch))
	return nil
}
