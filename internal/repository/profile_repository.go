package repository

import (
	"context"
	"errors"

	"careerhub/internal/database"
	"careerhub/internal/domain/user"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileUpsert struct {
	Headline   *string
	Location   *string
	Experience *string
	Education  *string
	Skills     *string
	AvatarURL  *string
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, p ProfileUpsert) (user.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(headline, ''), COALESCE(location, ''), COALESCE(experience, ''),
		        COALESCE(education, ''), COALESCE(skills, ''), COALESCE(avatar_url, ''), created_at, updated_at
		 FROM profiles WHERE user_id = $1`, userID,
	)
	p, err := scanProfile(row)
	if err != nil {
		if isNoRows(err) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}

// Upsert merges only the provided fields, preserving the rest, on both the
// insert and the conflict path.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, p ProfileUpsert) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, user_id, headline, location, experience, education, skills, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			headline = COALESCE($3, profiles.headline),
			location = COALESCE($4, profiles.location),
			experience = COALESCE($5, profiles.experience),
			education = COALESCE($6, profiles.education),
			skills = COALESCE($7, profiles.skills),
			avatar_url = COALESCE($8, profiles.avatar_url),
			updated_at = now()
		 RETURNING id, user_id, COALESCE(headline, ''), COALESCE(location, ''), COALESCE(experience, ''),
		           COALESCE(education, ''), COALESCE(skills, ''), COALESCE(avatar_url, ''), created_at, updated_at`,
		uuid.New(), userID, p.Headline, p.Location, p.Experience, p.Education, p.Skills, p.AvatarURL,
	)
	return scanProfile(row)
}

func scanProfile(row scanner) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Headline, &p.Location, &p.Experience,
		&p.Education, &p.Skills, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
