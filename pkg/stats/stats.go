// Package stats summarizes the label distribution of a finished run,
// printed after scraping the way value counts are reported.
package stats

import (
	"fmt"
	"strings"

	"github.com/toyamabay/hotaruika-surge/models"
)

// LevelCount is one row of a distribution summary.
type LevelCount struct {
	Level models.SurgeLevel
	Count int
}

// Summary is the surge-level distribution of one batch.
type Summary struct {
	Total  int
	Counts []LevelCount
}

// Summarize counts each surge level in the batch. Levels are reported in
// intensity order with unknown last; levels with zero hits are omitted.
func Summarize(batch models.Batch) Summary {
	byLevel := make(map[models.SurgeLevel]int)
	for _, r := range batch {
		byLevel[r.Level]++
	}

	summary := Summary{Total: len(batch)}
	for _, level := range models.Levels() {
		if n := byLevel[level]; n > 0 {
			summary.Counts = append(summary.Counts, LevelCount{Level: level, Count: n})
		}
	}
	return summary
}

// Format renders the summary as one line per level with a percentage.
func (s Summary) Format() string {
	if s.Total == 0 {
		return "no comments classified\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "classified %d comments:\n", s.Total)
	for _, lc := range s.Counts {
		pct := float64(lc.Count) * 100 / float64(s.Total)
		fmt.Fprintf(&b, "  %-10s %4d (%5.1f%%)\n", lc.Level, lc.Count, pct)
	}
	return b.String()
}
