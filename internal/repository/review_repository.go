package repository

import (
	"context"
	"errors"
	"time"

	"careerhub/internal/database"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrAlreadyReviewed = errors.New("company already reviewed by this user")
)

type Review struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	CompanyID       uuid.UUID `json:"company_id"`
	Rating          int       `json:"rating"`
	Title           string    `json:"title"`
	Comment         string    `json:"comment"`
	Pros            string    `json:"pros,omitempty"`
	Cons            string    `json:"cons,omitempty"`
	WorkLifeBalance *int      `json:"work_life_balance,omitempty"`
	SalaryBenefits  *int      `json:"salary_benefits,omitempty"`
	CareerGrowth    *int      `json:"career_growth,omitempty"`
	Management      *int      `json:"management,omitempty"`
	Culture         *int      `json:"culture,omitempty"`
	IsAnonymous     bool      `json:"is_anonymous"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReviewStats aggregates a company's ratings; facet averages are zero when no
// review sets them.
type ReviewStats struct {
	AverageRating   float64 `json:"average_rating"`
	TotalReviews    int     `json:"total_reviews"`
	WorkLifeBalance float64 `json:"work_life_balance"`
	SalaryBenefits  float64 `json:"salary_benefits"`
	CareerGrowth    float64 `json:"career_growth"`
	Management      float64 `json:"management"`
	Culture         float64 `json:"culture"`
}

type ReviewUpdate struct {
	Rating          *int
	Title           *string
	Comment         *string
	Pros            *string
	Cons            *string
	WorkLifeBalance *int
	SalaryBenefits  *int
	CareerGrowth    *int
	Management      *int
	Culture         *int
	IsAnonymous     *bool
}

const (
	ReviewSortNewest  = "newest"
	ReviewSortOldest  = "oldest"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv Review) (Review, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, sortBy string, limit, offset int) ([]Review, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Review, int, error)
	StatsByCompany(ctx context.Context, companyID uuid.UUID) (ReviewStats, error)
	Update(ctx context.Context, id, userID uuid.UUID, upd ReviewUpdate) (Review, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

const reviewColumns = `id, user_id, company_id, rating, title, comment, COALESCE(pros, ''), COALESCE(cons, ''),
	work_life_balance, salary_benefits, career_growth, management, culture, is_anonymous, created_at, updated_at`

func (r *PostgresReviewRepository) Create(ctx context.Context, rv Review) (Review, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO company_reviews
			(id, user_id, company_id, rating, title, comment, pros, cons,
			 work_life_balance, salary_benefits, career_growth, management, culture, is_anonymous)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		 RETURNING `+reviewColumns,
		uuid.New(), rv.UserID, rv.CompanyID, rv.Rating, rv.Title, rv.Comment, rv.Pros, rv.Cons,
		rv.WorkLifeBalance, rv.SalaryBenefits, rv.CareerGrowth, rv.Management, rv.Culture, rv.IsAnonymous,
	)
	created, err := scanReview(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Review{}, ErrAlreadyReviewed
		}
		return Review{}, err
	}
	return created, nil
}

func (r *PostgresReviewRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, sortBy string, limit, offset int) ([]Review, int, error) {
	limit, offset = normalizePage(limit, offset)

	orderBy := "created_at DESC"
	switch sortBy {
	case ReviewSortOldest:
		orderBy = "created_at ASC"
	case ReviewSortHighest:
		orderBy = "rating DESC"
	case ReviewSortLowest:
		orderBy = "rating ASC"
	}

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM company_reviews WHERE company_id = $1`, companyID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM company_reviews WHERE company_id = $1
		 ORDER BY `+orderBy+` LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Review, int, error) {
	limit, offset = normalizePage(limit, offset)

	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM company_reviews WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM company_reviews WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresReviewRepository) StatsByCompany(ctx context.Context, companyID uuid.UUID) (ReviewStats, error) {
	var s ReviewStats
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(rating),
		        COALESCE(AVG(work_life_balance), 0), COALESCE(AVG(salary_benefits), 0),
		        COALESCE(AVG(career_growth), 0), COALESCE(AVG(management), 0), COALESCE(AVG(culture), 0)
		 FROM company_reviews WHERE company_id = $1`, companyID,
	)
	if err := row.Scan(&s.AverageRating, &s.TotalReviews, &s.WorkLifeBalance,
		&s.SalaryBenefits, &s.CareerGrowth, &s.Management, &s.Culture); err != nil {
		return ReviewStats{}, err
	}
	return s, nil
}

func (r *PostgresReviewRepository) Update(ctx context.Context, id, userID uuid.UUID, upd ReviewUpdate) (Review, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE company_reviews SET
			rating = COALESCE($3, rating),
			title = COALESCE($4, title),
			comment = COALESCE($5, comment),
			pros = COALESCE($6, pros),
			cons = COALESCE($7, cons),
			work_life_balance = COALESCE($8, work_life_balance),
			salary_benefits = COALESCE($9, salary_benefits),
			career_growth = COALESCE($10, career_growth),
			management = COALESCE($11, management),
			culture = COALESCE($12, culture),
			is_anonymous = COALESCE($13, is_anonymous),
			updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+reviewColumns,
		id, userID, upd.Rating, upd.Title, upd.Comment, upd.Pros, upd.Cons,
		upd.WorkLifeBalance, upd.SalaryBenefits, upd.CareerGrowth, upd.Management, upd.Culture, upd.IsAnonymous,
	)
	rv, err := scanReview(row)
	if err != nil {
		if isNoRows(err) {
			return Review{}, ErrReviewNotFound
		}
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresReviewRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM company_reviews WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

func scanReview(row scanner) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.CompanyID, &rv.Rating, &rv.Title, &rv.Comment, &rv.Pros, &rv.Cons,
		&rv.WorkLifeBalance, &rv.SalaryBenefits, &rv.CareerGrowth, &rv.Management, &rv.Culture,
		&rv.IsAnonymous, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func collectReviews(rows database.Rows) ([]Review, error) {
	out := make([]Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
