package models

// Comment is one forum post as scraped from the board.
// Text is non-empty and PostedAt is resolved before a Comment enters the
// pipeline; posts failing either check are skipped by the scraper.
type Comment struct {
	Text      string `json:"text"`
	PostedAt  string `json:"posted_at"`
	SourceURL string `json:"source_url"`
	PageIndex int    `json:"page_index"`
}

// ResultSource records which classifier produced a label.
type ResultSource string

const (
	// SourceLocal means the rule-based classifier produced the label,
	// either because no remote model is configured or because the remote
	// call failed after retries.
	SourceLocal ResultSource = "local"
	// SourceRemote means the remote model produced the label and the local
	// classifier did not disagree.
	SourceRemote ResultSource = "remote"
	// SourceReconciled means local and remote disagreed on two non-unknown
	// labels; the remote label was kept and the discrepancy logged.
	SourceReconciled ResultSource = "reconciled"
)

// ClassificationResult pairs a comment with its surge level. Reason always
// names the signal or rule that produced the label.
type ClassificationResult struct {
	Comment Comment      `json:"comment"`
	Level   SurgeLevel   `json:"surge_level"`
	Source  ResultSource `json:"source"`
	Reason  string       `json:"reason"`
}

// Batch is the ordered set of results from one scraping run. The
// post-processing pass operates on a whole Batch.
type Batch []ClassificationResult
