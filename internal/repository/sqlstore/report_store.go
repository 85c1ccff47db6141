package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type reportRow struct {
	ProfileLo   string `db:"profile_lo"`
	ProfileHi   string `db:"profile_hi"`
	ID          string `db:"id"`
	Payload     string `db:"payload"`
	GeneratedAt int64  `db:"generated_at"`
}

type reportStore struct {
	db *sqlx.DB
}

// NewReportStore returns a store that keeps the latest report per pair.
func NewReportStore(db *sqlx.DB) repository.ReportStore {
	return &reportStore{db: db}
}

func (s *reportStore) Save(ctx context.Context, report *domain.CompatibilityReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	key := report.Key()
	query := s.db.Rebind(`
		INSERT INTO reports (profile_lo, profile_hi, id, payload, generated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (profile_lo, profile_hi) DO UPDATE
		SET id = excluded.id, payload = excluded.payload, generated_at = excluded.generated_at
	`)
	_, err = s.db.ExecContext(ctx, query, key.Lo, key.Hi, report.ID, string(payload), report.GeneratedAt.UnixNano())
	return err
}

func (s *reportStore) ListByProfile(ctx context.Context, profileID string) ([]*domain.CompatibilityReport, error) {
	var rows []reportRow
	query := s.db.Rebind(`
		SELECT profile_lo, profile_hi, id, payload, generated_at
		FROM reports
		WHERE profile_lo = ? OR profile_hi = ?
		ORDER BY generated_at DESC, profile_lo, profile_hi
	`)
	if err := s.db.SelectContext(ctx, &rows, query, profileID, profileID); err != nil {
		return nil, err
	}

	reports := make([]*domain.CompatibilityReport, 0, len(rows))
	for _, row := range rows {
		var r domain.CompatibilityReport
		if err := json.Unmarshal([]byte(row.Payload), &r); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", row.ID, err)
		}
		reports = append(reports, &r)
	}
	return reports, nil
}

func (s *reportStore) Delete(ctx context.Context, idA, idB string) error {
	key := domain.NewPairKey(idA, idB)
	query := s.db.Rebind(`DELETE FROM reports WHERE profile_lo = ? AND profile_hi = ?`)
	res, err := s.db.ExecContext(ctx, query, key.Lo, key.Hi)
	if err != nil {
		return err
	}
	return expectOneRow(res, domain.ErrReportNotFound)
}

func (s *reportStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM reports WHERE generated_at < ?`), cutoff.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
