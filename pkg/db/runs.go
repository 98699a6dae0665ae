package db

import (
	"fmt"
	"time"
)

// Run is one scraping run's summary row.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	BaseURL      string
	BoardTitle   string
	BoardSite    string
	PageCount    int
	CommentCount int
}

// InsertRun creates a new run row and returns its run_id. Counts are zero
// until FinishRun is called.
func (db *DB) InsertRun(baseURL, boardTitle, boardSite string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (base_url, board_title, board_site)
		VALUES (?, ?, ?)
	`, baseURL, boardTitle, boardSite)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun records the final page and comment counts for a run.
func (db *DB) FinishRun(runID int64, pageCount, commentCount int) error {
	_, err := db.Exec(`
		UPDATE runs SET page_count = ?, comment_count = ?
		WHERE run_id = ?
	`, pageCount, commentCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// GetRun returns one run row.
func (db *DB) GetRun(runID int64) (*Run, error) {
	run := &Run{}
	err := db.QueryRow(`
		SELECT run_id, created_at, base_url, board_title, board_site, page_count, comment_count
		FROM runs WHERE run_id = ?
	`, runID).Scan(&run.RunID, &run.CreatedAt, &run.BaseURL, &run.BoardTitle,
		&run.BoardSite, &run.PageCount, &run.CommentCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", runID, err)
	}
	return run, nil
}

// LatestRunID returns the most recent run's ID.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow("SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1").Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("failed to find latest run: %w", err)
	}
	return runID, nil
}

// ListRuns returns all runs, newest first.
func (db *DB) ListRuns() ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, base_url, board_title, board_site, page_count, comment_count
		FROM runs ORDER BY run_id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RunID, &run.CreatedAt, &run.BaseURL, &run.BoardTitle,
			&run.BoardSite, &run.PageCount, &run.CommentCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
