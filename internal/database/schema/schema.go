package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Vote Counters Schema

-- Per-person reaction tallies. Rows are created lazily on first vote and
-- never deleted; counters never go below zero.
CREATE TABLE IF NOT EXISTS person_votes (
    person VARCHAR(100) PRIMARY KEY,
    upvotes INTEGER NOT NULL DEFAULT 0 CHECK (upvotes >= 0),
    downvotes INTEGER NOT NULL DEFAULT 0 CHECK (downvotes >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
