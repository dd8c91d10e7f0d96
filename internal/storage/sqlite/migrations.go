package sqlite

import "database/sql"

// schema sets up the database on startup.
// One row per collection; the payload is the codec output for that collection.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    payload BLOB NOT NULL,
    saved_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
