package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
	"placement-portal-backend/pkg/validation"
)

type recruiterProfileUsecase struct {
	recruiterRepo domain.RecruiterRepository
	now           func() time.Time
}

func NewRecruiterProfileUsecase(recruiterRepo domain.RecruiterRepository) domain.RecruiterProfileUsecase {
	return &recruiterProfileUsecase{recruiterRepo: recruiterRepo, now: time.Now}
}

func (u *recruiterProfileUsecase) Get(ctx context.Context, userID int64) (*domain.RecruiterProfile, error) {
	profile, err := u.recruiterRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter profile not found")
		}
		return nil, storeError(err)
	}
	return profile, nil
}

func (u *recruiterProfileUsecase) Save(ctx context.Context, userID int64, in domain.RecruiterProfileInput) (*domain.RecruiterProfile, bool, error) {
	if err := requireFields(
		validation.Field{Name: "company_name", Value: in.CompanyName},
		validation.Field{Name: "company_email", Value: in.CompanyEmail},
		validation.Field{Name: "company_phone", Value: in.CompanyPhone},
	); err != nil {
		return nil, false, err
	}

	foundedYear, err := u.foundedYear(in.FoundedYear)
	if err != nil {
		return nil, false, err
	}

	social := map[string]string{}
	for k, v := range in.SocialLinks {
		if k = strings.TrimSpace(k); k != "" && strings.TrimSpace(v) != "" {
			social[k] = strings.TrimSpace(v)
		}
	}

	profile := &domain.RecruiterProfile{
		RecruiterID:  userID,
		FullName:     validation.Optional(in.FullName),
		Designation:  validation.Optional(in.Designation),
		ContactPhone: validation.Optional(in.ContactPhone),
		CompanyEmail: strings.ToLower(strings.TrimSpace(in.CompanyEmail)),
		CompanyPhone: strings.TrimSpace(in.CompanyPhone),
		Company: &domain.Company{
			Name:        strings.TrimSpace(in.CompanyName),
			Industry:    validation.Optional(in.Industry),
			Size:        validation.Optional(in.CompanySize),
			Website:     validation.Optional(in.Website),
			Description: validation.Optional(in.Description),
			FoundedYear: foundedYear,
			LogoURL:     validation.Optional(in.LogoURL),
			Address:     trimAddress(in.Address),
			SocialLinks: social,
		},
	}

	created, err := u.recruiterRepo.Save(ctx, profile)
	if err != nil {
		return nil, false, storeError(err)
	}
	return profile, created, nil
}

func (u *recruiterProfileUsecase) foundedYear(v interface{}) (*int, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	f, ok := parseNumber(v)
	if !ok || f != math.Trunc(f) {
		return nil, apperror.BadRequest("founded_year must be a whole number")
	}
	year := int(f)
	if year < 1800 || year > u.now().Year() {
		return nil, apperror.BadRequest("founded_year must be between 1800 and the current year")
	}
	return &year, nil
}

func trimAddress(a domain.Address) domain.Address {
	return domain.Address{
		Line1:         strings.TrimSpace(a.Line1),
		Line2:         strings.TrimSpace(a.Line2),
		City:          strings.TrimSpace(a.City),
		StateProvince: strings.TrimSpace(a.StateProvince),
		Country:       strings.TrimSpace(a.Country),
		PostalCode:    strings.TrimSpace(a.PostalCode),
	}
}
