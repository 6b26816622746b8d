package sqlite

import (
	"context"
	"fmt"
	"time"
)

// Visit is one tracked page view. HashedIP is already hashed by the caller.
type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarises traffic and contact form usage for the admin dashboard.
type Stats struct {
	TotalVisits     int64            `json:"total_visits"`
	UniqueVisitors  int64            `json:"unique_visitors"`
	VisitsToday     int64            `json:"visits_today"`
	VisitsThisWeek  int64            `json:"visits_this_week"`
	ContactOutcomes map[string]int64 `json:"contact_outcomes"`
	RecentVisits    []Visit          `json:"recent_visits"`
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.CreatedAt.IsZero() {
		v.CreatedAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, created_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, v.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// RecordContactOutcome logs that a submission ended in outcome. Message
// contents are never stored.
func (s *Store) RecordContactOutcome(ctx context.Context, outcome string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (outcome, created_at) VALUES (?, ?)`,
		outcome, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record contact outcome: %w", err)
	}
	return nil
}

// PurgeVisitsBefore deletes visit records older than cutoff.
func (s *Store) PurgeVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Stats reports counters relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time, recent int) (*Stats, error) {
	stats := &Stats{ContactOutcomes: map[string]int64{}}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visits`).Scan(&stats.TotalVisits); err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`).Scan(&stats.UniqueVisitors); err != nil {
		return nil, fmt.Errorf("count unique visitors: %w", err)
	}

	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE created_at >= ?`, startOfDay.UnixMilli(),
	).Scan(&stats.VisitsToday); err != nil {
		return nil, fmt.Errorf("count visits today: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM visits WHERE created_at >= ?`, now.Add(-7*24*time.Hour).UnixMilli(),
	).Scan(&stats.VisitsThisWeek); err != nil {
		return nil, fmt.Errorf("count visits this week: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM contact_submissions GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("count contact outcomes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var outcome string
		var n int64
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("scan contact outcome: %w", err)
		}
		stats.ContactOutcomes[outcome] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact outcomes: %w", err)
	}

	if recent > 0 {
		visits, err := s.recentVisits(ctx, recent)
		if err != nil {
			return nil, err
		}
		stats.RecentVisits = visits
	}
	return stats, nil
}

func (s *Store) recentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		 FROM visits ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent visits: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var createdAt int64
		if err := rows.Scan(&v.HashedIP, &v.UserAgent, &v.Path, &createdAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.CreatedAt = time.UnixMilli(createdAt).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
