// Package export writes classification batches to CSV. The file starts with
// a UTF-8 byte order mark so spreadsheet tools on Windows render the
// Japanese comment text correctly.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/toyamabay/hotaruika-surge/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"date", "comment", "surge_level", "source_url", "page_number"}

// Write streams a batch as CSV to w, BOM first.
func Write(w io.Writer, batch models.Batch) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range batch {
		record := []string{
			r.Comment.PostedAt,
			r.Comment.Text,
			string(r.Level),
			r.Comment.SourceURL,
			strconv.Itoa(r.Comment.PageIndex),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteFile writes a batch to the given path, replacing any existing file.
func WriteFile(path string, batch models.Batch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Write(f, batch); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
