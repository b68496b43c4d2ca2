package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/imaging"
	"placement-portal-backend/pkg/security"
	"placement-portal-backend/pkg/validation"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	now         func() time.Time
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo, now: time.Now}
}

func (u *profileUsecase) Submit(ctx context.Context, userID int64, in domain.PersonalDetailsInput) (*domain.PersonalDetails, error) {
	missing := validation.MissingFields(
		validation.Field{Name: "first_name", Value: in.FirstName},
		validation.Field{Name: "last_name", Value: in.LastName},
		validation.Field{Name: "dob", Value: in.DOB},
		validation.Field{Name: "institute_roll_no", Value: in.InstituteRollNo},
		validation.Field{Name: "phone_number", Value: in.PhoneNumber},
	)
	if len(missing) > 0 {
		return nil, apperror.MissingFields("Missing required fields", missing...)
	}

	dob, err := validation.ParseDate(in.DOB)
	if err != nil {
		return nil, apperror.BadRequest("Invalid date format").WithDetails(map[string]string{"dob": "YYYY-MM-DD"})
	}
	if dob.After(u.now()) {
		return nil, apperror.BadRequest("Date of birth cannot be in the future")
	}

	gender := validation.Optional(in.Gender)
	if gender != nil && !domain.Gender(*gender).IsValid() {
		return nil, apperror.InvalidValue("Invalid gender", domain.Genders)
	}

	details := &domain.PersonalDetails{
		UserID:          userID,
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		DOB:             dob.Format(validation.DateLayout),
		Gender:          gender,
		InstituteRollNo: strings.TrimSpace(in.InstituteRollNo),
		PersonalEmail:   validation.Optional(in.PersonalEmail),
		CollegeEmail:    validation.Optional(in.CollegeEmail),
		PhoneNumber:     strings.TrimSpace(in.PhoneNumber),
		ProfilePicture:  validation.Optional(in.ProfilePicture),
	}

	if err := u.profileRepo.Create(ctx, details); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			switch domain.ConstraintName(err) {
			case "personal_details_roll_no_key":
				return nil, apperror.Conflict("Roll number already exists")
			case "personal_details_phone_key":
				return nil, apperror.Conflict("Phone number already exists")
			default:
				return nil, apperror.Conflict("Personal details already submitted")
			}
		}
		return nil, storeError(err)
	}
	return details, nil
}

func (u *profileUsecase) Get(ctx context.Context, userID int64) (*domain.PersonalDetails, error) {
	details, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Personal details not found").
				WithDetails(map[string]string{"solution": profileSetupSolution})
		}
		return nil, storeError(err)
	}
	return details, nil
}

// GetPublic exposes only the name and contact email of a student.
func (u *profileUsecase) GetPublic(ctx context.Context, requester domain.Identity, userID int64) (*domain.PublicIdentity, error) {
	if !canReadStudent(requester, userID) {
		return nil, apperror.Forbidden("Access denied")
	}
	details, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, storeError(err)
	}

	email := details.PersonalEmail
	if email == nil {
		email = details.CollegeEmail
	}
	return &domain.PublicIdentity{
		FirstName: details.FirstName,
		LastName:  details.LastName,
		Email:     email,
	}, nil
}

func (u *profileUsecase) UploadPicture(ctx context.Context, userID int64, filename string, data []byte) (*domain.PersonalDetails, error) {
	result := security.ValidateImage(filename, data)
	if !result.Valid {
		return nil, apperror.InvalidValue("Invalid image: "+result.Error, security.AllowedImageExtensions())
	}

	compressed, err := imaging.Compress(data, imaging.DefaultMaxDimension, imaging.DefaultQuality)
	if err != nil {
		return nil, apperror.BadRequest("Could not process image")
	}

	if err := u.profileRepo.UpdatePicture(ctx, userID, imaging.JPEGDataURL(compressed)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, profileRequired()
		}
		return nil, storeError(err)
	}
	return u.Get(ctx, userID)
}
