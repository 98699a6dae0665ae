package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per scraping run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    base_url TEXT NOT NULL,
    board_title TEXT,
    board_site TEXT,
    page_count INTEGER DEFAULT 0,
    comment_count INTEGER DEFAULT 0
);

-- Comments: every post collected during a run
CREATE TABLE IF NOT EXISTS comments (
    comment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    posted_at TEXT NOT NULL,
    text TEXT NOT NULL,
    source_url TEXT NOT NULL,
    page_number INTEGER NOT NULL,
    content_hash TEXT NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_comments_run ON comments(run_id);
CREATE INDEX IF NOT EXISTS idx_comments_hash ON comments(content_hash);

-- Classifications: labels per comment; re-classifying a run appends rows,
-- reads take the latest row per comment
CREATE TABLE IF NOT EXISTS classifications (
    classification_id INTEGER PRIMARY KEY AUTOINCREMENT,
    comment_id INTEGER NOT NULL,
    level TEXT NOT NULL,
    source TEXT NOT NULL,
    reason TEXT,
    classified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (comment_id) REFERENCES comments(comment_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_classifications_comment ON classifications(comment_id);
CREATE INDEX IF NOT EXISTS idx_classifications_level ON classifications(level);
`
