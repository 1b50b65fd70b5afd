package sink

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite stores every collection as a document table (_id, doc) so the
// dataset can be queried with plain SQL before loading it anywhere else.
type SQLite struct {
	db   *sql.DB
	path string
}

func NewSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("dataset_%s.db", time.Now().Format("2006-01-02_15-04-05")))

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite database: %w", err)
	}

	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) WriteCollection(name string, records any) (int, error) {
	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (_id TEXT PRIMARY KEY, doc TEXT NOT NULL)", name)
	if _, err := s.db.Exec(createSQL); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", name, err)
	}

	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return 0, fmt.Errorf("collection %s is not a record list", name)
	}

	count := 0
	for i := 0; i < v.Len(); i++ {
		doc, err := json.Marshal(v.Index(i).Interface())
		if err != nil {
			return count, fmt.Errorf("failed to marshal record in %s: %w", name, err)
		}

		var key struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(doc, &key); err != nil {
			return count, fmt.Errorf("failed to extract _id from record in %s: %w", name, err)
		}

		var id any
		if key.ID != "" {
			id = key.ID
		}

		query, args, err := sq.Insert(name).
			Columns("_id", "doc").
			Values(id, string(doc)).
			ToSql()
		if err != nil {
			return count, fmt.Errorf("failed to build insert for %s: %w", name, err)
		}

		if _, err := s.db.Exec(query, args...); err != nil {
			return count, fmt.Errorf("failed to insert into %s: %w", name, err)
		}
		count++
	}

	return count, nil
}
