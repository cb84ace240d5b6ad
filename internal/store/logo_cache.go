package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"
)

type Logo struct {
	Key         string
	SourceURL   string
	ContentType string
	Bytes       []byte
	FetchedAt   time.Time
}

// ErrLogoNotFound is returned by GetLogo when key is not cached.
var ErrLogoNotFound = errors.New("logo not cached")

func LogoKeyFromURL(u string) string {
	h := sha256.Sum256([]byte(u))
	return hex.EncodeToString(h[:])
}

func HasLogo(ctx context.Context, db *sql.DB, key string) (bool, error) {
	var exists int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM logos WHERE key = ? LIMIT 1;`, key).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func GetLogo(ctx context.Context, db *sql.DB, key string) (Logo, error) {
	l := Logo{Key: key}
	var fetchedAt string
	err := db.QueryRowContext(ctx,
		`SELECT source_url, content_type, bytes, fetched_at FROM logos WHERE key = ? LIMIT 1;`, key,
	).Scan(&l.SourceURL, &l.ContentType, &l.Bytes, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Logo{}, ErrLogoNotFound
	}
	if err != nil {
		return Logo{}, err
	}
	l.FetchedAt, _ = time.Parse(time.RFC3339, fetchedAt)
	return l, nil
}

func PutLogo(ctx context.Context, db *sql.DB, l Logo) error {
	if l.FetchedAt.IsZero() {
		l.FetchedAt = time.Now()
	}
	_, err := db.ExecContext(ctx, `
INSERT OR REPLACE INTO logos(key, source_url, content_type, bytes, fetched_at)
VALUES(?,?,?,?,?);`,
		l.Key,
		l.SourceURL,
		l.ContentType,
		l.Bytes,
		l.FetchedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListLogoKeys maps source URL to key for every cached logo.
func ListLogoKeys(ctx context.Context, db *sql.DB) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT source_url, key FROM logos;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var src, key string
		if err := rows.Scan(&src, &key); err != nil {
			return nil, err
		}
		out[src] = key
	}
	return out, rows.Err()
}
