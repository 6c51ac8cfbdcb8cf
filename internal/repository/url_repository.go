package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/sethvargo/go-retry"

	"shortr/internal/entities"
	"shortr/internal/shortid"
)

// ErrNotFound is returned when no mapping exists for the given key.
var ErrNotFound = errors.New("mapping not found")

// maxInsertAttempts bounds how many identifiers are tried before a create
// gives up on collisions.
const maxInsertAttempts = 5

// URLRepository defines the interface for mapping database operations
type URLRepository interface {
	FindURLByID(ctx context.Context, id string) (string, error)
	FindIDByURL(ctx context.Context, url string) (string, error)
	Insert(ctx context.Context, id, url string) error
	IncrementHits(ctx context.Context, id string) error
	GetOrCreate(ctx context.Context, url string) (string, error)
	Stats(ctx context.Context, id string) (*entities.URL, error)
}

type urlRepository struct {
	db  *sql.DB
	gen func() string
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB) URLRepository {
	return &urlRepository{db: db, gen: shortid.New}
}

// NewURLRepositoryWithGenerator creates a repository with a custom identifier
// generator.
func NewURLRepositoryWithGenerator(db *sql.DB, gen func() string) URLRepository {
	return &urlRepository{db: db, gen: gen}
}

// FindURLByID returns the original URL for an identifier.
func (r *urlRepository) FindURLByID(ctx context.Context, id string) (string, error) {
	var url string
	err := r.db.QueryRowContext(ctx, `SELECT url FROM urls WHERE id = ? LIMIT 1`, id).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to find URL: %w", err)
	}
	return url, nil
}

// FindIDByURL returns the identifier already assigned to a URL.
func (r *urlRepository) FindIDByURL(ctx context.Context, url string) (string, error) {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM urls WHERE url = ? LIMIT 1`, url).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to find identifier: %w", err)
	}
	return id, nil
}

// Insert stores a new mapping. Uniqueness violations on either column are
// surfaced to the caller.
func (r *urlRepository) Insert(ctx context.Context, id, url string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO urls (id, url) VALUES (?, ?)`, id, url); err != nil {
		return fmt.Errorf("failed to insert mapping: %w", err)
	}
	return nil
}

// IncrementHits adds one to the hit counter. Affecting zero rows is not an
// error.
func (r *urlRepository) IncrementHits(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE urls SET hits = hits + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to increment hits: %w", err)
	}
	return nil
}

// GetOrCreate resolves the identifier for a URL, inserting a fresh mapping on
// first submission, and counts one hit. The whole lookup-or-insert-then-
// increment runs in a single transaction so concurrent submissions of the
// same URL cannot produce duplicate rows.
func (r *urlRepository) GetOrCreate(ctx context.Context, url string) (string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM urls WHERE url = ? LIMIT 1`, url).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if id, err = r.insertWithRetry(ctx, tx, url); err != nil {
			return "", err
		}
	case err != nil:
		return "", fmt.Errorf("failed to look up URL: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE urls SET hits = hits + 1 WHERE id = ?`, id); err != nil {
		return "", fmt.Errorf("failed to increment hits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

// insertWithRetry inserts the URL under a freshly generated identifier,
// regenerating on identifier collisions up to maxInsertAttempts times.
func (r *urlRepository) insertWithRetry(ctx context.Context, tx *sql.Tx, url string) (string, error) {
	var id string
	backoff := retry.WithMaxRetries(maxInsertAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		id = r.gen()
		_, err := tx.ExecContext(ctx, `INSERT INTO urls (id, url) VALUES (?, ?)`, id, url)
		if isIDCollision(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert mapping: %w", err)
	}
	return id, nil
}

// isIDCollision reports whether err is a uniqueness violation on the
// identifier column rather than the URL column.
func isIDCollision(err error) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	if serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
		return true
	}
	return serr.ExtendedCode == sqlite3.ErrConstraintUnique && strings.Contains(err.Error(), "urls.id")
}

// Stats returns the full mapping row for an identifier.
func (r *urlRepository) Stats(ctx context.Context, id string) (*entities.URL, error) {
	var u entities.URL
	err := r.db.QueryRowContext(ctx,
		`SELECT id, url, hits FROM urls WHERE id = ? LIMIT 1`, id,
	).Scan(&u.ID, &u.URL, &u.Hits)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &u, nil
}
