package history

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TEXT,
    committed_at TEXT NOT NULL,
    source_image TEXT,
    item_count INTEGER NOT NULL,
    identified_count INTEGER NOT NULL,
    unknown_count INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS session_items (
    id TEXT PRIMARY KEY,
    session_id INTEGER NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name TEXT,
    quantity TEXT,
    image_ref TEXT,
    detection_type TEXT NOT NULL,
    confidence INTEGER NOT NULL,
    container_type TEXT NOT NULL,
    content_type TEXT NOT NULL,
    is_user_labeled INTEGER NOT NULL,
    user_label TEXT,
    freshness TEXT NOT NULL,
    status TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_session_items_session
    ON session_items(session_id, position);
`
