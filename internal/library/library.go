// Package library stores named token sets in a local SQLite database.
package library

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/boostkit/internal/tokens"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Library errors.
var (
	ErrConfigNotFound = errors.New("saved configuration not found")
	ErrAmbiguous      = errors.New("reference matches more than one saved configuration")
	ErrInvalidName    = errors.New("saved configuration name is required")
)

const schema = `
CREATE TABLE IF NOT EXISTS configs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	tokens     TEXT NOT NULL,
	score      INTEGER NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_configs_created_at ON configs (created_at);
`

// SavedConfig is a named snapshot of a token set.
type SavedConfig struct {
	ID        string
	Name      string
	Tokens    tokens.Tokens
	Score     int
	CreatedAt time.Time
}

// Store is a saved configuration library.
type Store struct {
	db     *sql.DB
	logger hclog.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards output.
func WithLogger(l hclog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open opens or creates the library at path.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return newStore(ctx, db, opts)
}

// OpenInMemory opens a library that lives only as long as the Store.
func OpenInMemory(ctx context.Context, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return newStore(ctx, db, opts)
}

func newStore(ctx context.Context, db *sql.DB, opts []Option) (*Store, error) {
	s := &Store{
		db:     db,
		logger: hclog.NewNullLogger(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate library: %w", err)
	}
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores t under name. Image roles are not persisted.
func (s *Store) Save(ctx context.Context, name string, t tokens.Tokens, score int) (*SavedConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	t.BackgroundImage = ""
	t.LoginBgImage = ""

	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokens: %w", err)
	}

	cfg := &SavedConfig{
		ID:        uuid.New().String(),
		Name:      name,
		Tokens:    t,
		Score:     score,
		CreatedAt: s.now(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO configs (id, name, tokens, score, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		cfg.ID,
		cfg.Name,
		string(data),
		cfg.Score,
		cfg.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved configuration: %w", err)
	}

	s.logger.Debug("saved configuration", "id", cfg.ID, "name", cfg.Name, "score", cfg.Score)
	return cfg, nil
}

// Get returns the configuration with id.
func (s *Store) Get(ctx context.Context, id string) (*SavedConfig, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, tokens, score, created_at
		FROM configs WHERE id = ?
	`, id)
	return s.scan(row)
}

// Find resolves ref as an id, then as a name (newest match), then as a
// unique id prefix.
func (s *Store) Find(ctx context.Context, ref string) (*SavedConfig, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrConfigNotFound
	}

	cfg, err := s.Get(ctx, ref)
	if err == nil || !errors.Is(err, ErrConfigNotFound) {
		return cfg, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, tokens, score, created_at
		FROM configs WHERE name = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, ref)
	cfg, err = s.scan(row)
	if err == nil || !errors.Is(err, ErrConfigNotFound) {
		return cfg, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, tokens, score, created_at
		FROM configs WHERE id LIKE ? || '%'
		LIMIT 2
	`, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved configurations: %w", err)
	}
	matches, err := s.scanAll(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, ref)
	}
}

// List returns every saved configuration, newest first.
func (s *Store) List(ctx context.Context) ([]*SavedConfig, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, tokens, score, created_at
		FROM configs
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query saved configurations: %w", err)
	}
	return s.scanAll(rows)
}

// Delete removes the configuration with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM configs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete saved configuration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete saved configuration: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrConfigNotFound, id)
	}
	s.logger.Debug("deleted configuration", "id", id)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scan(row scanner) (*SavedConfig, error) {
	var (
		cfg       SavedConfig
		data      string
		createdAt string
	)
	if err := row.Scan(&cfg.ID, &cfg.Name, &data, &cfg.Score, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to scan saved configuration: %w", err)
	}

	t, unknown, err := tokens.DecodeJSON([]byte(data))
	if len(unknown) > 0 {
		s.logger.Warn("saved configuration has unknown roles", "id", cfg.ID, "roles", unknown)
	}
	if err != nil {
		s.logger.Warn("saved configuration has invalid values", "id", cfg.ID, "error", err)
	}
	cfg.Tokens = t

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for %s: %w", cfg.ID, err)
	}
	cfg.CreatedAt = ts
	return &cfg, nil
}

func (s *Store) scanAll(rows *sql.Rows) ([]*SavedConfig, error) {
	defer rows.Close()

	var out []*SavedConfig
	for rows.Next() {
		cfg, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read saved configurations: %w", err)
	}
	return out, nil
}
