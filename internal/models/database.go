package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	sqlitecloud "github.com/sqlitecloud/sqlitecloud-go"
)

// Store persists channels and matched videos, upserting by key
type Store interface {
	UpsertChannel(channel Channel) error
	UpsertVideo(channelID string, video VideoSummary) error
}

// executor is the subset of *sqlitecloud.SQCloud the database needs
type executor interface {
	Execute(sql string) error
	ExecuteArray(sql string, values []interface{}) error
	Close() error
}

// Database represents the database connection and operations
type Database struct {
	db executor
}

// NewDatabase creates a new database connection
func NewDatabase(dbPath string) (*Database, error) {
	log.Info().Str("db", maskConnectionString(dbPath)).Msg("connecting to SQLite Cloud database")

	db, err := sqlitecloud.Connect(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite Cloud: %w", err)
	}

	return newDatabase(db)
}

func newDatabase(db executor) (*Database, error) {
	database := &Database{db: db}
	if err := database.createTables(); err != nil {
		return nil, err
	}
	return database, nil
}

// maskConnectionString hides the API key in logs
func maskConnectionString(connStr string) string {
	if before, _, found := strings.Cut(connStr, "apikey="); found {
		return before + "apikey=***"
	}
	return connStr
}

func (d *Database) createTables() error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS channels (
			channel_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			video_id TEXT PRIMARY KEY,
			channel_id TEXT NOT NULL REFERENCES channels(channel_id),
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			published_at TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_channel_id ON videos(channel_id)`,
	}

	for _, table := range tables {
		if err := d.db.Execute(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// UpsertChannel inserts a channel or refreshes its name
func (d *Database) UpsertChannel(channel Channel) error {
	sql := `INSERT INTO channels (channel_id, name, description) VALUES (?, ?, ?)
			ON CONFLICT(channel_id) DO UPDATE SET name = excluded.name, updated_at = CURRENT_TIMESTAMP`

	if err := d.db.ExecuteArray(sql, []interface{}{channel.ID, channel.Title, channel.Description}); err != nil {
		return fmt.Errorf("upsert channel %s: %w", channel.ID, err)
	}
	return nil
}

// UpsertVideo inserts a video; an existing row is left untouched
func (d *Database) UpsertVideo(channelID string, video VideoSummary) error {
	sql := `INSERT INTO videos (video_id, channel_id, title, description, published_at) VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(video_id) DO NOTHING`

	published := ""
	if !video.PublishedAt.IsZero() {
		published = video.PublishedAt.UTC().Format("2006-01-02 15:04:05")
	}
	if err := d.db.ExecuteArray(sql, []interface{}{video.ID, channelID, video.Title, video.Description, published}); err != nil {
		return fmt.Errorf("upsert video %s: %w", video.ID, err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
