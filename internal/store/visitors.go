package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Visit is one tracked page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarises the visitors table.
type Stats struct {
	TotalVisitors    int64   `json:"total_visitors"`
	UniqueVisitors   int64   `json:"unique_visitors"`
	VisitorsToday    int64   `json:"visitors_today"`
	VisitorsThisWeek int64   `json:"visitors_this_week"`
	TotalMessages    int64   `json:"total_messages"`
	RecentVisitors   []Visit `json:"recent_visitors"`
}

// RecordVisit stores a page view. The caller hashes the IP.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix(),
	)
	if err != nil {
		return errors.Wrap(err, "insert visitor")
	}
	return nil
}

// Stats computes visitor counts relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	queries := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{midnight.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{weekAgo.Unix()}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return nil, errors.Wrap(err, "count visitors")
		}
	}

	recent, err := s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisitors = recent

	return stats, nil
}

// RecentVisitors returns up to limit visits, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query visitors")
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "scan visitor")
		}
		v.Timestamp = time.Unix(ts, 0)
		visits = append(visits, v)
	}
	return visits, errors.Wrap(rows.Err(), "iterate visitors")
}

// Cleanup deletes visits recorded before cutoff and returns how many went.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, errors.Wrap(err, "delete old visitors")
	}
	return result.RowsAffected()
}
