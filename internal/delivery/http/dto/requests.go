package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1"`
	Role     string `json:"role" validate:"omitempty,oneof=CANDIDATE RECRUITER"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileRequest struct {
	Headline   *string `json:"headline" validate:"omitempty,max=255"`
	Location   *string `json:"location" validate:"omitempty,max=255"`
	Experience *string `json:"experience"`
	Education  *string `json:"education"`
	Skills     *string `json:"skills"`
	AvatarURL  *string `json:"avatar_url" validate:"omitempty,url"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	Role     *string `json:"role" validate:"omitempty,oneof=CANDIDATE RECRUITER ADMIN"`
}

type CreateJobRequest struct {
	CompanyID    string `json:"company_id" validate:"required,uuid"`
	Title        string `json:"title" validate:"required,min=3,max=255"`
	Description  string `json:"description" validate:"required,min=10"`
	Requirements string `json:"requirements"`
	Location     string `json:"location" validate:"omitempty,max=255"`
	Type         string `json:"type" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
}

type UpdateJobRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description  *string `json:"description" validate:"omitempty,min=10"`
	Requirements *string `json:"requirements"`
	Location     *string `json:"location" validate:"omitempty,max=255"`
	Type         *string `json:"type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	IsActive     *bool   `json:"is_active"`
}

type ApplyRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CVID        string `json:"cv_id" validate:"omitempty,uuid"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=REVIEWING INTERVIEW OFFER REJECTED"`
}

type CreateCVRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	FileName string `json:"file_name" validate:"omitempty,max=255"`
	FileURL  string `json:"file_url" validate:"omitempty,url"`
	FileSize int64  `json:"file_size" validate:"omitempty,gte=0"`
}

type UpdateCVRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=255"`
	FileName *string `json:"file_name" validate:"omitempty,max=255"`
	FileURL  *string `json:"file_url" validate:"omitempty,url"`
	FileSize *int64  `json:"file_size" validate:"omitempty,gte=0"`
}

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Website     string `json:"website" validate:"omitempty,url"`
	Description string `json:"description"`
	Industry    string `json:"industry" validate:"omitempty,max=255"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	Website     *string `json:"website" validate:"omitempty,url"`
	Description *string `json:"description"`
	Industry    *string `json:"industry" validate:"omitempty,max=255"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=MANAGER MEMBER"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=OWNER MANAGER MEMBER"`
}

type CreateReviewRequest struct {
	CompanyID       string `json:"company_id" validate:"required,uuid"`
	Rating          int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title           string `json:"title" validate:"omitempty,max=255"`
	Comment         string `json:"comment" validate:"omitempty,max=5000"`
	Pros            string `json:"pros" validate:"omitempty,max=2000"`
	Cons            string `json:"cons" validate:"omitempty,max=2000"`
	WorkLifeBalance *int   `json:"work_life_balance" validate:"omitempty,gte=1,lte=5"`
	SalaryBenefits  *int   `json:"salary_benefits" validate:"omitempty,gte=1,lte=5"`
	CareerGrowth    *int   `json:"career_growth" validate:"omitempty,gte=1,lte=5"`
	Management      *int   `json:"management" validate:"omitempty,gte=1,lte=5"`
	Culture         *int   `json:"culture" validate:"omitempty,gte=1,lte=5"`
	IsAnonymous     bool   `json:"is_anonymous"`
}

type UpdateReviewRequest struct {
	Rating          *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Title           *string `json:"title" validate:"omitempty,max=255"`
	Comment         *string `json:"comment" validate:"omitempty,max=5000"`
	Pros            *string `json:"pros" validate:"omitempty,max=2000"`
	Cons            *string `json:"cons" validate:"omitempty,max=2000"`
	WorkLifeBalance *int    `json:"work_life_balance" validate:"omitempty,gte=1,lte=5"`
	SalaryBenefits  *int    `json:"salary_benefits" validate:"omitempty,gte=1,lte=5"`
	CareerGrowth    *int    `json:"career_growth" validate:"omitempty,gte=1,lte=5"`
	Management      *int    `json:"management" validate:"omitempty,gte=1,lte=5"`
	Culture         *int    `json:"culture" validate:"omitempty,gte=1,lte=5"`
	IsAnonymous     *bool   `json:"is_anonymous"`
}

type UpsertJobAlertRequest struct {
	Keywords *string `json:"keywords" validate:"omitempty,max=255"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Type     *string `json:"type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
}

type SaveJobRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// UpdateRecommendationRequest carries explicit user feedback on a stored
// recommendation. Score bounds are enforced here, not re-clamped downstream.
type UpdateRecommendationRequest struct {
	JobID  string  `json:"job_id" validate:"required,uuid"`
	Score  float64 `json:"score" validate:"gte=0,lte=1"`
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
}
