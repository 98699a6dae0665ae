package db

import (
	"fmt"

	"github.com/toyamabay/hotaruika-surge/internal/common"
	"github.com/toyamabay/hotaruika-surge/models"
	"github.com/toyamabay/hotaruika-surge/pkg/textnorm"
)

// InsertComment stores one scraped comment under a run and returns its
// comment_id. The content hash of the normalized text is stored alongside
// for cross-run duplicate lookups.
func (db *DB) InsertComment(runID int64, c models.Comment) (int64, error) {
	hash := common.ContentHash([]byte(textnorm.Normalize(c.Text)))

	result, err := db.Exec(`
		INSERT INTO comments (run_id, posted_at, text, source_url, page_number, content_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, c.PostedAt, c.Text, c.SourceURL, c.PageIndex, hash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert comment: %w", err)
	}

	commentID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get comment ID: %w", err)
	}
	return commentID, nil
}

// InsertClassification appends a classification row for a comment.
// Re-classifying never overwrites history; reads take the newest row.
func (db *DB) InsertClassification(commentID int64, r models.ClassificationResult) error {
	_, err := db.Exec(`
		INSERT INTO classifications (comment_id, level, source, reason)
		VALUES (?, ?, ?, ?)
	`, commentID, string(r.Level), string(r.Source), r.Reason)
	if err != nil {
		return fmt.Errorf("failed to insert classification: %w", err)
	}
	return nil
}

// SaveBatch stores a classified batch under a run: one comment row and one
// classification row per result.
func (db *DB) SaveBatch(runID int64, batch models.Batch) error {
	for _, r := range batch {
		commentID, err := db.InsertComment(runID, r.Comment)
		if err != nil {
			return err
		}
		if err := db.InsertClassification(commentID, r); err != nil {
			return err
		}
	}
	return nil
}

// GetRunComments returns every comment stored for a run, in insertion order.
func (db *DB) GetRunComments(runID int64) ([]models.Comment, error) {
	rows, err := db.Query(`
		SELECT posted_at, text, source_url, page_number
		FROM comments WHERE run_id = ? ORDER BY comment_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for run %d: %w", runID, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.PostedAt, &c.Text, &c.SourceURL, &c.PageIndex); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CommentRow pairs a stored comment with its row ID, for appending new
// classifications to an existing run.
type CommentRow struct {
	CommentID int64
	Comment   models.Comment
}

// GetRunCommentRows returns every comment for a run with its comment_id.
func (db *DB) GetRunCommentRows(runID int64) ([]CommentRow, error) {
	rows, err := db.Query(`
		SELECT comment_id, posted_at, text, source_url, page_number
		FROM comments WHERE run_id = ? ORDER BY comment_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments for run %d: %w", runID, err)
	}
	defer rows.Close()

	var result []CommentRow
	for rows.Next() {
		var row CommentRow
		if err := rows.Scan(&row.CommentID, &row.Comment.PostedAt, &row.Comment.Text,
			&row.Comment.SourceURL, &row.Comment.PageIndex); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetRunBatch rebuilds the classified batch for a run, taking the latest
// classification per comment.
func (db *DB) GetRunBatch(runID int64) (models.Batch, error) {
	rows, err := db.Query(`
		SELECT c.posted_at, c.text, c.source_url, c.page_number,
		       cl.level, cl.source, cl.reason
		FROM comments c
		JOIN classifications cl ON cl.comment_id = c.comment_id
		WHERE c.run_id = ?
		  AND cl.classification_id = (
		      SELECT MAX(classification_id) FROM classifications
		      WHERE comment_id = c.comment_id)
		ORDER BY c.comment_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch for run %d: %w", runID, err)
	}
	defer rows.Close()

	var batch models.Batch
	for rows.Next() {
		var r models.ClassificationResult
		var level, source string
		if err := rows.Scan(&r.Comment.PostedAt, &r.Comment.Text, &r.Comment.SourceURL,
			&r.Comment.PageIndex, &level, &source, &r.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan classification: %w", err)
		}
		r.Level = models.SurgeLevel(level)
		r.Source = models.ResultSource(source)
		batch = append(batch, r)
	}
	return batch, rows.Err()
}
