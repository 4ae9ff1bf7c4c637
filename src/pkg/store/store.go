// Package store keeps processed records in a local SQLite database keyed by screenshot content hash.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
	_ "modernc.org/sqlite"

	"stat-scanner/src/pkg/record"
)

type DB struct {
	path string
	conn *sql.DB
}

func Open(path string) (db *DB, e *xerr.Error) {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		e = xerr.NewError(err, "create database directory", path)
		return nil, e
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		e = xerr.NewError(err, "open sqlite database", path)
		return nil, e
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		e = xerr.NewError(err, "enable WAL journal", path)
		return nil, e
	}

	db = &DB{path: path, conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		e = xerr.NewError(err, "create records schema", path)
		return nil, e
	}

	tl.Log(tl.Info, palette.Blue, "Opened record store '%s'", path)
	return db, nil
}

func (d *DB) Close() (e *xerr.Error) {
	if err := d.conn.Close(); err != nil {
		e = xerr.NewError(err, "close sqlite database", d.path)
	}
	return e
}

func (d *DB) init() error {
	_, err := d.conn.Exec(`
CREATE TABLE IF NOT EXISTS records (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  content_hash TEXT NOT NULL UNIQUE,
  source_path TEXT NOT NULL,
  record_json TEXT NOT NULL,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	return err
}

/*
Upsert stores r under r.ContentHash. A screenshot seen before keeps its
original position and gets the new record and source path.
*/
func (d *DB) Upsert(r record.Record) (e *xerr.Error) {
	if r.ContentHash == "" {
		e = xerr.NewError(errors.New("record has no content hash"), "upsert record", r.SourcePath)
		return e
	}

	recordJSON, err := json.Marshal(r)
	if err != nil {
		e = xerr.NewError(err, "marshal record", r.SourcePath)
		return e
	}

	_, err = d.conn.Exec(`
INSERT INTO records(content_hash, source_path, record_json)
VALUES(?, ?, ?)
ON CONFLICT(content_hash) DO UPDATE SET
  source_path = excluded.source_path,
  record_json = excluded.record_json,
  updated_at = CURRENT_TIMESTAMP`,
		r.ContentHash, r.SourcePath, string(recordJSON),
	)
	if err != nil {
		e = xerr.NewError(err, "upsert record", r.ContentHash)
		return e
	}

	tl.Log(tl.Info1, palette.Green, "Stored record for '%s'", r.SourcePath)
	return nil
}

// Seen reports whether a record with this content hash is already stored.
func (d *DB) Seen(contentHash string) (seen bool, e *xerr.Error) {
	var one int
	err := d.conn.QueryRow(`SELECT 1 FROM records WHERE content_hash = ?`, contentHash).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		e = xerr.NewError(err, "look up content hash", contentHash)
		return false, e
	}
	return true, nil
}

// All returns every stored record in insertion order.
func (d *DB) All() (records []record.Record, e *xerr.Error) {
	rows, err := d.conn.Query(`SELECT content_hash, record_json FROM records ORDER BY id`)
	if err != nil {
		e = xerr.NewError(err, "list records", d.path)
		return nil, e
	}
	defer rows.Close()

	for rows.Next() {
		var hash, recordJSON string
		if err := rows.Scan(&hash, &recordJSON); err != nil {
			e = xerr.NewError(err, "scan record row", d.path)
			return nil, e
		}
		var r record.Record
		if err := json.Unmarshal([]byte(recordJSON), &r); err != nil {
			e = xerr.NewError(err, "unmarshal stored record", hash)
			return nil, e
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		e = xerr.NewError(err, "iterate record rows", d.path)
		return nil, e
	}
	return records, nil
}

func (d *DB) Count() (count int, e *xerr.Error) {
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	if err != nil {
		e = xerr.NewError(err, "count records", d.path)
		return 0, e
	}
	return count, nil
}

func (d *DB) String() string {
	return fmt.Sprintf("store(%s)", d.path)
}
