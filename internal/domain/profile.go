package domain

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) IsValid() bool {
	for _, v := range Genders {
		if g == v {
			return true
		}
	}
	return false
}

// PersonalDetails is the one-per-user profile that gates every other student record.
// Dates are carried as YYYY-MM-DD strings.
type PersonalDetails struct {
	UserID          int64     `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	DOB             string    `json:"dob"`
	Gender          *string   `json:"gender"`
	InstituteRollNo string    `json:"institute_roll_no"`
	PersonalEmail   *string   `json:"personal_email"`
	CollegeEmail    *string   `json:"college_email"`
	PhoneNumber     string    `json:"phone_number"`
	ProfilePicture  *string   `json:"profile_picture,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PublicIdentity is what other authenticated users may read about a student.
type PublicIdentity struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
}

type PersonalDetailsInput struct {
	FirstName       string
	LastName        string
	DOB             string
	Gender          string
	InstituteRollNo string
	PersonalEmail   string
	CollegeEmail    string
	PhoneNumber     string
	ProfilePicture  string
}

// StudentSummary is a row of the recruiter student directory.
type StudentSummary struct {
	UserID          int64   `json:"user_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	InstituteRollNo string  `json:"institute_roll_no"`
	PersonalEmail   *string `json:"personal_email"`
	PhoneNumber     string  `json:"phone_number"`
	Gender          *string `json:"gender"`
}

type ProfileRepository interface {
	Create(ctx context.Context, details *PersonalDetails) error
	GetByUserID(ctx context.Context, userID int64) (*PersonalDetails, error)
	UpdatePicture(ctx context.Context, userID int64, dataURL string) error
	Search(ctx context.Context, term string) ([]StudentSummary, error)
}

type ProfileUsecase interface {
	Submit(ctx context.Context, userID int64, in PersonalDetailsInput) (*PersonalDetails, error)
	Get(ctx context.Context, userID int64) (*PersonalDetails, error)
	GetPublic(ctx context.Context, requester Identity, userID int64) (*PublicIdentity, error)
	UploadPicture(ctx context.Context, userID int64, filename string, data []byte) (*PersonalDetails, error)
}
