package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/toyamabay/hotaruika-surge/internal/classify"
	dbactions "github.com/toyamabay/hotaruika-surge/internal/db"
	"github.com/toyamabay/hotaruika-surge/internal/export"
	"github.com/toyamabay/hotaruika-surge/internal/scrape"
)

func main() {
	app := &cli.App{
		Name:  "hotaruika-surge",
		Usage: "scrape firefly-squid surge reports and classify swarm size",
		Commands: []*cli.Command{
			{
				Name:  "scrape",
				Usage: "fetch the board, classify every comment, write CSV and run history",
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "url",
						Usage: "board URL to scrape (overrides config)",
					},
					&cli.IntFlag{
						Name:  "max-pages",
						Usage: "maximum number of board pages to fetch",
					},
					&cli.BoolFlag{
						Name:  "skip-foreign",
						Usage: "drop comments not written in Japanese",
					},
				),
				Action: scrape.ScrapeAction,
			},
			{
				Name:   "classify",
				Usage:  "re-run the classifier over a stored run",
				Flags:  append(commonFlags(), runFlag()),
				Action: classify.ClassifyAction,
			},
			{
				Name:   "export",
				Usage:  "write a stored run to CSV",
				Flags:  append(commonFlags(), runFlag()),
				Action: export.ExportAction,
			},
			{
				Name:   "runs",
				Usage:  "list stored runs",
				Flags:  append(commonFlags(), runFlag()),
				Action: dbactions.RunsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.yaml",
			Usage: "path to the YAML config file",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "CSV output path (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "local-only",
			Usage: "skip the remote model even when an API key is configured",
		},
	}
}

func runFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "run",
		Usage: "run ID to operate on (defaults to the latest run)",
	}
}
