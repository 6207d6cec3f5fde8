package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var ErrCVNotFound = errors.New("cv not found")

type CV struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	FileName  string    `json:"file_name,omitempty"`
	FileURL   string    `json:"file_url,omitempty"`
	FileSize  int64     `json:"file_size,omitempty"`
	IsMain    bool      `json:"is_main"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CVUpdate struct {
	Title    *string
	FileName *string
	FileURL  *string
	FileSize *int64
}

type CVRepository interface {
	Create(ctx context.Context, cv CV) (CV, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	// ListByUser orders the main CV first, then newest.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]CV, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (CV, error)
	Update(ctx context.Context, id, userID uuid.UUID, upd CVUpdate) (CV, error)
	// SetMain demotes the user's current main CV and promotes the given one.
	SetMain(ctx context.Context, id, userID uuid.UUID) (CV, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// PromoteNewest makes the user's most recent CV the main one, if any.
	PromoteNewest(ctx context.Context, userID uuid.UUID) error
}

type PostgresCVRepository struct {
	db database.DB
}

func NewPostgresCVRepository(db database.DB) *PostgresCVRepository {
	return &PostgresCVRepository{db: db}
}

const cvColumns = `id, user_id, title, COALESCE(file_name, ''), COALESCE(file_url, ''), COALESCE(file_size, 0), is_main, created_at, updated_at`

func (r *PostgresCVRepository) Create(ctx context.Context, cv CV) (CV, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO cvs (id, user_id, title, file_name, file_url, file_size, is_main)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+cvColumns,
		uuid.New(), cv.UserID, cv.Title, cv.FileName, cv.FileURL, cv.FileSize, cv.IsMain,
	)
	return scanCV(row)
}

func (r *PostgresCVRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cvs WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *PostgresCVRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]CV, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+cvColumns+` FROM cvs WHERE user_id = $1
		 ORDER BY is_main DESC, created_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CV, 0)
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCVRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (CV, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+cvColumns+` FROM cvs WHERE id = $1 AND user_id = $2`, id, userID,
	)
	cv, err := scanCV(row)
	if err != nil {
		if isNoRows(err) {
			return CV{}, ErrCVNotFound
		}
		return CV{}, err
	}
	return cv, nil
}

func (r *PostgresCVRepository) Update(ctx context.Context, id, userID uuid.UUID, upd CVUpdate) (CV, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE cvs SET
			title = COALESCE($3, title),
			file_name = COALESCE($4, file_name),
			file_url = COALESCE($5, file_url),
			file_size = COALESCE($6, file_size),
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+cvColumns,
		id, userID, upd.Title, upd.FileName, upd.FileURL, upd.FileSize,
	)
	cv, err := scanCV(row)
	if err != nil {
		if isNoRows(err) {
			return CV{}, ErrCVNotFound
		}
		return CV{}, err
	}
	return cv, nil
}

func (r *PostgresCVRepository) SetMain(ctx context.Context, id, userID uuid.UUID) (CV, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return CV{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE cvs SET is_main = FALSE, updated_at = now() WHERE user_id = $1 AND is_main`, userID,
	); err != nil {
		return CV{}, err
	}

	row := tx.QueryRow(ctx,
		`UPDATE cvs SET is_main = TRUE, updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+cvColumns,
		id, userID,
	)
	cv, err := scanCV(row)
	if err != nil {
		if isNoRows(err) {
			return CV{}, ErrCVNotFound
		}
		return CV{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return CV{}, err
	}
	return cv, nil
}

func (r *PostgresCVRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM cvs WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCVNotFound
	}
	return nil
}

func (r *PostgresCVRepository) PromoteNewest(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE cvs SET is_main = TRUE, updated_at = now()
		 WHERE id = (SELECT id FROM cvs WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1)`,
		userID,
	)
	return err
}

func scanCV(row scanner) (CV, error) {
	var cv CV
	err := row.Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.FileName, &cv.FileURL, &cv.FileSize,
		&cv.IsMain, &cv.CreatedAt, &cv.UpdatedAt)
	return cv, err
}
