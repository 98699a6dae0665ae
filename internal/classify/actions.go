package classify

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/toyamabay/hotaruika-surge/internal/scrape"
	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/db"
	"github.com/toyamabay/hotaruika-surge/pkg/llm"
	"github.com/toyamabay/hotaruika-surge/pkg/pipeline"
	"github.com/toyamabay/hotaruika-surge/pkg/stats"
)

// ClassifyAction re-runs the pipeline over a stored run's comments and
// appends the new labels. History is kept; reads always see the newest
// classification per comment.
func ClassifyAction(c *cli.Context) error {
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
			logger.Error("no runs to classify", "error", err)
			os.Exit(2)
		}
	}

	rows, err := database.GetRunCommentRows(runID)
	if err != nil {
		logger.Error("failed to load run", "error", err, "run_id", runID)
		os.Exit(2)
	}
	if len(rows) == 0 {
		fmt.Printf("run %d has no comments\n", runID)
		return nil
	}

	p := pipeline.New(llm.New(cfg.LLM, logger), logger)

	batch := make(models.Batch, 0, len(rows))
	for _, row := range rows {
		batch = append(batch, p.ClassifyComment(c.Context, row.Comment))
	}
	batch = p.PostProcess(batch)

	for i, row := range rows {
		if err := database.InsertClassification(row.CommentID, batch[i]); err != nil {
			logger.Error("failed to store classification", "error", err, "comment_id", row.CommentID)
			os.Exit(2)
		}
	}

	fmt.Printf("run %d re-classified (%d comments)\n", runID, len(batch))
	fmt.Print(stats.Summarize(batch).Format())
	return nil
}
