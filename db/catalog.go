// Package db persists analysis records in a local SQLite catalog so repeated
// scans can be compared without re-decoding every file.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pekscan/types"
)

type Catalog struct {
	db *sql.DB
}

func NewCatalog(dbPath string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %s", err)
	}
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("error creating tables: %s", err)
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// createTables creates the required tables if they don't exist
func createTables(db *sql.DB) error {
	createAnalyses := `
    CREATE TABLE IF NOT EXISTS analyses (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        fileName TEXT NOT NULL,
        filePath TEXT NOT NULL UNIQUE,
        fileSize INTEGER NOT NULL,
        fileSizeFormatted TEXT NOT NULL,
        peakSamples INTEGER,
        encoding TEXT,
        maxAmplitude TEXT,
        minAmplitude TEXT,
        avgAmplitude TEXT,
        sampleRate TEXT,
        estimatedDuration TEXT,
        modified TEXT,
        error TEXT,
        analyzedAt TEXT NOT NULL
    );
    `

	if _, err := db.Exec(createAnalyses); err != nil {
		return fmt.Errorf("error creating analyses table: %s", err)
	}
	return nil
}

// SaveResults stores a batch of records in one transaction. Records are
// keyed by file path; re-analyzing a file replaces its previous row.
func (c *Catalog) SaveResults(results []types.AudioInfo) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %s", err)
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO analyses
		(fileName, filePath, fileSize, fileSizeFormatted, peakSamples, encoding,
		 maxAmplitude, minAmplitude, avgAmplitude, sampleRate, estimatedDuration,
		 modified, error, analyzedAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error preparing statement: %s", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	for _, r := range results {
		_, err := stmt.Exec(
			r.FileName, r.FilePath, r.FileSize, r.FileSizeFormatted,
			r.PeakSamples, r.Encoding,
			r.MaxAmplitude, r.MinAmplitude, r.AvgAmplitude,
			r.SampleRate, r.EstimatedDuration,
			r.Modified, r.Error, now,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error executing statement: %s", err)
		}
	}

	return tx.Commit()
}

// SaveResult stores a single record.
func (c *Catalog) SaveResult(result types.AudioInfo) error {
	return c.SaveResults([]types.AudioInfo{result})
}

const selectColumns = `
	fileName, filePath, fileSize, fileSizeFormatted, peakSamples, encoding,
	maxAmplitude, minAmplitude, avgAmplitude, sampleRate, estimatedDuration,
	modified, error
`

func scanResult(row interface{ Scan(...any) error }) (types.AudioInfo, error) {
	var r types.AudioInfo
	err := row.Scan(
		&r.FileName, &r.FilePath, &r.FileSize, &r.FileSizeFormatted,
		&r.PeakSamples, &r.Encoding,
		&r.MaxAmplitude, &r.MinAmplitude, &r.AvgAmplitude,
		&r.SampleRate, &r.EstimatedDuration,
		&r.Modified, &r.Error,
	)
	return r, err
}

// ResultByPath retrieves a stored record by file path.
func (c *Catalog) ResultByPath(path string) (types.AudioInfo, bool, error) {
	row := c.db.QueryRow(
		"SELECT "+selectColumns+" FROM analyses WHERE filePath = ?", path)

	r, err := scanResult(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.AudioInfo{}, false, nil
		}
		return types.AudioInfo{}, false, fmt.Errorf("failed to retrieve record: %s", err)
	}
	return r, true, nil
}

// ListResults returns every stored record ordered by file path.
func (c *Catalog) ListResults() ([]types.AudioInfo, error) {
	rows, err := c.db.Query(
		"SELECT " + selectColumns + " FROM analyses ORDER BY filePath")
	if err != nil {
		return nil, fmt.Errorf("error querying catalog: %s", err)
	}
	defer rows.Close()

	var results []types.AudioInfo
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %s", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
