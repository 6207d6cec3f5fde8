package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrUserNotFound           = errors.New("user not found")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrJobNotFound            = errors.New("job not found")
	ErrCompanyNotFound        = errors.New("company not found")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrCVNotFound             = errors.New("cv not found")
	ErrReviewNotFound         = errors.New("review not found")
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrAlertNotFound          = errors.New("job alert not found")
	ErrSavedJobNotFound       = errors.New("saved job not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrMemberNotFound         = errors.New("company member not found")

	ErrAlreadyApplied  = errors.New("already applied to this job")
	ErrAlreadyReviewed = errors.New("company already reviewed")
	ErrAlreadyMember   = errors.New("user is already a member of this company")
	ErrJobClosed       = errors.New("job is not open for applications")
	ErrInvalidStatus   = errors.New("invalid status transition")
	ErrCVLimitReached  = errors.New("cv limit reached")
)
