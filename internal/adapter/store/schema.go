package store

const schema = `
CREATE TABLE IF NOT EXISTS datasets (
	name       TEXT PRIMARY KEY,
	path       TEXT NOT NULL,
	loaded     INTEGER NOT NULL,
	row_count  INTEGER NOT NULL,
	updated_at TEXT NOT NULL,
	failure    TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS citations (
	seq      INTEGER PRIMARY KEY,
	citing   TEXT NOT NULL,
	cited    TEXT NOT NULL,
	year     INTEGER NOT NULL,
	ref_year INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_citations_year ON citations(year);

CREATE TABLE IF NOT EXISTS affiliations (
	seq            INTEGER PRIMARY KEY,
	paper_id       TEXT NOT NULL,
	author_id      TEXT NOT NULL,
	institution_id TEXT NOT NULL,
	position       INTEGER,
	paper_rank     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_affiliations_rank ON affiliations(paper_rank);
`
