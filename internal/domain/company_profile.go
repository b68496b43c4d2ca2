package domain

import (
	"context"
	"time"
)

// Address is stored as a JSON document on the company row.
type Address struct {
	Line1         string `json:"line1,omitempty"`
	Line2         string `json:"line2,omitempty"`
	City          string `json:"city,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
}

// Company is created lazily the first time a recruiter saves their profile.
type Company struct {
	ID          int64             `json:"company_id"`
	Name        string            `json:"company_name"`
	Industry    *string           `json:"industry"`
	Size        *string           `json:"company_size"`
	Website     *string           `json:"website"`
	Description *string           `json:"description"`
	FoundedYear *int              `json:"founded_year"`
	LogoURL     *string           `json:"logo_url"`
	Address     Address           `json:"address"`
	SocialLinks map[string]string `json:"social_links"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// RecruiterProfile is keyed by the recruiter's user id.
type RecruiterProfile struct {
	RecruiterID  int64     `json:"recruiter_id"`
	CompanyID    int64     `json:"company_id"`
	FullName     *string   `json:"full_name"`
	Designation  *string   `json:"designation"`
	ContactPhone *string   `json:"contact_phone"`
	CompanyEmail string    `json:"company_email"`
	CompanyPhone string    `json:"company_phone"`
	Company      *Company  `json:"company"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RecruiterProfileInput struct {
	CompanyName  string
	CompanyEmail string
	CompanyPhone string
	Industry     string
	CompanySize  string
	Website      string
	Description  string
	FoundedYear  interface{}
	LogoURL      string
	Address      Address
	SocialLinks  map[string]string
	FullName     string
	Designation  string
	ContactPhone string
}

type RecruiterRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*RecruiterProfile, error)
	// Save creates the company and profile on first call and updates both afterwards.
	Save(ctx context.Context, profile *RecruiterProfile) (created bool, err error)
}

type RecruiterProfileUsecase interface {
	Get(ctx context.Context, userID int64) (*RecruiterProfile, error)
	Save(ctx context.Context, userID int64, in RecruiterProfileInput) (*RecruiterProfile, bool, error)
}
