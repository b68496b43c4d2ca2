package usecase

import (
	"context"
	"errors"
	"strings"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"

	"golang.org/x/sync/errgroup"
)

type studentDirectoryUsecase struct {
	profileRepo domain.ProfileRepository
	recordRepo  domain.StudentRecordRepository
}

func NewStudentDirectoryUsecase(profileRepo domain.ProfileRepository, recordRepo domain.StudentRecordRepository) domain.StudentDirectoryUsecase {
	return &studentDirectoryUsecase{profileRepo: profileRepo, recordRepo: recordRepo}
}

func (u *studentDirectoryUsecase) Search(ctx context.Context, term string) ([]domain.StudentSummary, error) {
	students, err := u.profileRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, storeError(err)
	}
	return students, nil
}

// GetFullProfile loads the seven record collections concurrently. Any failure fails the whole read.
func (u *studentDirectoryUsecase) GetFullProfile(ctx context.Context, userID int64) (*domain.StudentProfile, error) {
	personal, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Student not found")
		}
		return nil, storeError(err)
	}

	profile := &domain.StudentProfile{Personal: personal}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		profile.Internships, err = u.recordRepo.ListInternships(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.Volunteering, err = u.recordRepo.ListVolunteering(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.Skills, err = u.recordRepo.ListSkills(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.Projects, err = u.recordRepo.ListProjects(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.Accomplishments, err = u.recordRepo.ListAccomplishments(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.ExtraCurricular, err = u.recordRepo.ListExtraCurricular(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		profile.Competitions, err = u.recordRepo.ListCompetitions(gctx, userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, storeError(err)
	}
	return profile, nil
}
