// ABOUTME: SQLite schema for the gallery analytics ledger
// ABOUTME: Six tables: queries, interactions, sessions, demand, hourly, feedback
package analytics

// Schema contains all SQL statements for database initialization
const Schema = `
-- Raw query log, one row per submitted question
CREATE TABLE IF NOT EXISTS query_logs (
    query_id TEXT PRIMARY KEY,
    query_text TEXT NOT NULL,
    timestamp REAL NOT NULL,
    session_id TEXT NOT NULL,
    visitor_id TEXT NOT NULL,
    response_time REAL NOT NULL,
    artworks_found INTEGER NOT NULL,
    ai_generated BOOLEAN NOT NULL,
    language TEXT DEFAULT 'en',
    device_type TEXT,
    location TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- One row per (query, candidate artwork) pair shown to the visitor
CREATE TABLE IF NOT EXISTS artwork_interactions (
    interaction_id TEXT PRIMARY KEY,
    query_id TEXT NOT NULL REFERENCES query_logs(query_id),
    artwork_id INTEGER NOT NULL,
    artwork_title TEXT NOT NULL,
    artwork_artist TEXT NOT NULL,
    similarity_score REAL NOT NULL,
    was_clicked BOOLEAN DEFAULT 0,
    click_duration REAL DEFAULT 0,
    feedback_score INTEGER,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Visitor browsing sessions with monotonically growing counters
CREATE TABLE IF NOT EXISTS visitor_sessions (
    session_id TEXT PRIMARY KEY,
    visitor_id TEXT NOT NULL,
    start_time REAL NOT NULL,
    end_time REAL,
    total_queries INTEGER DEFAULT 0,
    total_artworks_viewed INTEGER DEFAULT 0,
    total_time_spent REAL DEFAULT 0.0,
    device_type TEXT,
    location TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Running demand aggregate, one row per artwork, created lazily
CREATE TABLE IF NOT EXISTS artwork_demand (
    artwork_id INTEGER PRIMARY KEY,
    artwork_title TEXT NOT NULL,
    artwork_artist TEXT NOT NULL,
    total_queries INTEGER DEFAULT 0,
    total_clicks INTEGER DEFAULT 0,
    avg_similarity REAL DEFAULT 0.0,
    total_time_viewed REAL DEFAULT 0.0,
    positive_feedback INTEGER DEFAULT 0,
    negative_feedback INTEGER DEFAULT 0,
    last_queried REAL,
    demand_score REAL DEFAULT 0.0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Per-hour traffic rollup keyed by "YYYY-MM-DD HH:00:00"
CREATE TABLE IF NOT EXISTS hourly_metrics (
    hour_timestamp TEXT PRIMARY KEY,
    total_queries INTEGER DEFAULT 0,
    unique_visitors INTEGER DEFAULT 0,
    avg_response_time REAL DEFAULT 0.0,
    top_artwork_id INTEGER,
    top_artwork_title TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Visitor feedback ratings linked to a query
CREATE TABLE IF NOT EXISTS feedback (
    feedback_id TEXT PRIMARY KEY,
    query_id TEXT NOT NULL REFERENCES query_logs(query_id),
    score INTEGER NOT NULL,
    comment TEXT,
    timestamp REAL NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for the hot read paths
CREATE INDEX IF NOT EXISTS idx_query_time ON query_logs(timestamp);
CREATE INDEX IF NOT EXISTS idx_interaction_artwork ON artwork_interactions(artwork_id);
CREATE INDEX IF NOT EXISTS idx_interaction_query ON artwork_interactions(query_id);
CREATE INDEX IF NOT EXISTS idx_demand_score ON artwork_demand(demand_score DESC);
CREATE INDEX IF NOT EXISTS idx_hourly_time ON hourly_metrics(hour_timestamp);
`
