package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type profileRow struct {
	ID           string `db:"id"`
	Payload      string `db:"payload"`
	CreatedAt    int64  `db:"created_at"`
	LastModified int64  `db:"last_modified"`
}

func (r profileRow) decode() (*domain.UserProfile, error) {
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(r.Payload), &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", r.ID, err)
	}
	return &p, nil
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	query := r.db.Rebind(`
		INSERT INTO profiles (id, payload, created_at, last_modified)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`)
	res, err := r.db.ExecContext(ctx, query,
		profile.ID, string(payload), profile.CreatedAt.UnixNano(), profile.LastModified.UnixNano())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrProfileExists
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var row profileRow
	query := r.db.Rebind(`SELECT id, payload, created_at, last_modified FROM profiles WHERE id = ?`)
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return row.decode()
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	query := r.db.Rebind(`UPDATE profiles SET payload = ?, last_modified = ? WHERE id = ?`)
	res, err := r.db.ExecContext(ctx, query, string(payload), profile.LastModified.UnixNano(), profile.ID)
	if err != nil {
		return err
	}
	return expectOneRow(res, domain.ErrProfileNotFound)
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM profiles WHERE id = ?`), id)
	if err != nil {
		return err
	}
	return expectOneRow(res, domain.ErrProfileNotFound)
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]*domain.UserProfile, error) {
	var rows []profileRow
	query := `SELECT id, payload, created_at, last_modified FROM profiles ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	profiles := make([]*domain.UserProfile, 0, len(rows))
	for _, row := range rows {
		p, err := row.decode()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
