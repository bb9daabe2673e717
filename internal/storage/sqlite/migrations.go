package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS responses (
    id TEXT PRIMARY KEY,
    received_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS guests (
    response_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    age_category TEXT NOT NULL,
    menu TEXT NOT NULL,
    PRIMARY KEY (response_id, position),
    FOREIGN KEY (response_id) REFERENCES responses(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_guests_response_id ON guests(response_id);
CREATE INDEX IF NOT EXISTS idx_responses_received_at ON responses(received_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
