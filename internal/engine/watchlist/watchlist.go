// Package watchlist persists a local list of YouTube videos the user
// wants to keep track of, backed by SQLite.
package watchlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// Status represents where a video sits in the user's watch flow.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusWatched    Status = "watched"
	StatusReferenced Status = "referenced"
	StatusDropped    Status = "dropped"
)

// Entry is a single watchlist row.
type Entry struct {
	ID           int64  `json:"id"`
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title,omitempty"`
	URL          string `json:"url"`
	Status       Status `json:"status"`
	Notes        string `json:"notes,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// AddInput is the input for watchlist_add.
type AddInput struct {
	VideoID      string `json:"video_id" jsonschema:"YouTube video ID (e.g. dQw4w9WgXcQ)"`
	Title        string `json:"title" jsonschema:"Video title"`
	ChannelTitle string `json:"channel_title,omitempty" jsonschema:"Channel name"`
	Status       string `json:"status,omitempty" jsonschema:"Status: queued (default), watched, referenced, dropped"`
	Notes        string `json:"notes,omitempty" jsonschema:"Free-form notes"`
}

// ListInput is the input for watchlist_list.
type ListInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status: queued, watched, referenced, dropped"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max entries to return (default 50, max 100)"`
}

// UpdateInput is the input for watchlist_update.
type UpdateInput struct {
	ID     int64  `json:"id" jsonschema:"Watchlist entry ID"`
	Status string `json:"status,omitempty" jsonschema:"New status: queued, watched, referenced, dropped"`
	Notes  string `json:"notes,omitempty" jsonschema:"New notes (replaces existing)"`
}

// Result is the output for add/update/remove operations.
type Result struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ListResult is the output for list operations.
type ListResult struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}

var (
	db     *sql.DB
	dbOnce sync.Once
	dbErr  error
)

// openDB opens (or creates) the SQLite watchlist database. The path comes
// from engine.Cfg.WatchlistPath, defaulting to ~/.go_tube/watchlist.db.
func openDB() (*sql.DB, error) {
	dbOnce.Do(func() {
		dbPath := engine.Cfg.WatchlistPath
		if dbPath == "" {
			dbPath = filepath.Join(os.Getenv("HOME"), ".go_tube", "watchlist.db")
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			dbErr = fmt.Errorf("watchlist: mkdir %s: %w", filepath.Dir(dbPath), err)
			return
		}
		d, err := sql.Open("sqlite", dbPath)
		if err != nil {
			dbErr = fmt.Errorf("watchlist: open db: %w", err)
			return
		}
		d.SetMaxOpenConns(1) // SQLite: single writer
		if err := initSchema(d); err != nil {
			dbErr = fmt.Errorf("watchlist: init schema: %w", err)
			return
		}
		db = d
	})
	return db, dbErr
}

// initSchema creates the videos table if it doesn't exist.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS videos (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id      TEXT NOT NULL,
		title         TEXT NOT NULL,
		channel_title TEXT,
		url           TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'queued',
		notes         TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`)
	return err
}

// validStatus checks if a status string is valid.
func validStatus(s string) bool {
	switch Status(s) {
	case StatusQueued, StatusWatched, StatusReferenced, StatusDropped:
		return true
	}
	return false
}

// Add saves a new video to the watchlist.
func Add(_ context.Context, input AddInput) (*Result, error) {
	engine.IncrWatchlistOps()
	if input.VideoID == "" || input.Title == "" {
		return nil, errors.New("watchlist_add: video_id and title are required")
	}

	status := strings.ToLower(input.Status)
	if status == "" {
		status = string(StatusQueued)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("watchlist_add: invalid status %q (valid: queued, watched, referenced, dropped)", status)
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO videos (video_id, title, channel_title, url, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		input.VideoID, input.Title, input.ChannelTitle,
		"https://www.youtube.com/watch?v="+input.VideoID,
		status, input.Notes, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("watchlist_add: insert: %w", err)
	}

	id, _ := res.LastInsertId()
	return &Result{
		ID:      id,
		Message: fmt.Sprintf("Video '%s' saved with status '%s' (id=%d)", input.Title, status, id),
	}, nil
}

// List returns watchlist entries, optionally filtered by status.
func List(_ context.Context, input ListInput) (*ListResult, error) {
	engine.IncrWatchlistOps()
	db, err := openDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("watchlist_list: invalid status %q", status)
		}
		rows, err = db.Query(
			`SELECT id, video_id, title, channel_title, url, status, notes, created_at, updated_at
			 FROM videos WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id, video_id, title, channel_title, url, status, notes, created_at, updated_at
			 FROM videos ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("watchlist_list: query: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var channelTitle, notes sql.NullString
		if err := rows.Scan(&e.ID, &e.VideoID, &e.Title, &channelTitle, &e.URL,
			&e.Status, &notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			continue
		}
		e.ChannelTitle = channelTitle.String
		e.Notes = notes.String
		entries = append(entries, e)
	}

	var total int
	if input.Status != "" {
		db.QueryRow(`SELECT COUNT(*) FROM videos WHERE status = ?`, strings.ToLower(input.Status)).Scan(&total) //nolint:errcheck
	} else {
		db.QueryRow(`SELECT COUNT(*) FROM videos`).Scan(&total) //nolint:errcheck
	}

	if entries == nil {
		entries = []Entry{}
	}
	return &ListResult{Entries: entries, Total: total}, nil
}

// Update changes the status and/or notes of a watchlist entry.
func Update(_ context.Context, input UpdateInput) (*Result, error) {
	engine.IncrWatchlistOps()
	if input.ID <= 0 {
		return nil, errors.New("watchlist_update: id is required")
	}
	if input.Status == "" && input.Notes == "" {
		return nil, errors.New("watchlist_update: at least one of status or notes must be provided")
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	if input.Status != "" {
		status := strings.ToLower(input.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("watchlist_update: invalid status %q", status)
		}
		if input.Notes != "" {
			_, err = db.Exec(`UPDATE videos SET status=?, notes=?, updated_at=? WHERE id=?`,
				status, input.Notes, now, input.ID)
		} else {
			_, err = db.Exec(`UPDATE videos SET status=?, updated_at=? WHERE id=?`,
				status, now, input.ID)
		}
	} else {
		_, err = db.Exec(`UPDATE videos SET notes=?, updated_at=? WHERE id=?`,
			input.Notes, now, input.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("watchlist_update: %w", err)
	}

	return &Result{
		ID:      input.ID,
		Message: fmt.Sprintf("Entry #%d updated successfully", input.ID),
	}, nil
}

// Remove deletes a watchlist entry by id.
func Remove(_ context.Context, id int64) (*Result, error) {
	engine.IncrWatchlistOps()
	if id <= 0 {
		return nil, errors.New("watchlist_remove: id is required")
	}

	db, err := openDB()
	if err != nil {
		return nil, err
	}

	res, err := db.Exec(`DELETE FROM videos WHERE id=?`, id)
	if err != nil {
		return nil, fmt.Errorf("watchlist_remove: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, fmt.Errorf("watchlist_remove: entry #%d not found", id)
	}

	return &Result{
		ID:      id,
		Message: fmt.Sprintf("Entry #%d removed", id),
	}, nil
}
