package model

import (
	"github.com/jmoiron/sqlx"
)

const Schema = `
CREATE TABLE IF NOT EXISTS relation_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id VARCHAR NOT NULL,
	kind VARCHAR NOT NULL,
	member_ids TEXT NOT NULL,
	member_count INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_relation_snapshots_user_kind ON relation_snapshots (user_id, kind);
`

const SchemaPostgres = `
CREATE TABLE IF NOT EXISTS relation_snapshots (
	id SERIAL PRIMARY KEY,
	user_id VARCHAR NOT NULL,
	kind VARCHAR NOT NULL,
	member_ids TEXT NOT NULL,
	member_count INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_relation_snapshots_user_kind ON relation_snapshots (user_id, kind);
`

func CreateTables(db *sqlx.DB) {
	db.MustExec(Schema)
}

func CreateTablesPostgres(db *sqlx.DB) error {
	_, err := db.Exec(SchemaPostgres)
	return err
}
