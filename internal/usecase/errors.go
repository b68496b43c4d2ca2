package usecase

import (
	"errors"

	"placement-portal-backend/internal/domain"
	"placement-portal-backend/pkg/apperror"
)

const profileSetupSolution = "Submit personal details at /api/personal-details-form"

func profileRequired() *apperror.AppError {
	return apperror.Forbidden("Complete profile setup first").
		WithDetails(map[string]string{"solution": profileSetupSolution})
}

func recruiterProfileRequired(action string) *apperror.AppError {
	return apperror.Conflict("Create a recruiter profile before " + action)
}

// storeError converts repository errors that no caller handled specifically.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return apperror.New(404, "Resource not found", err)
	case errors.Is(err, domain.ErrDuplicate):
		return apperror.New(409, "Duplicate entry", err)
	case errors.Is(err, domain.ErrForeignKey):
		return apperror.New(403, "Referenced record does not exist", err)
	case errors.Is(err, domain.ErrCheckViolation):
		return apperror.New(400, "Invalid value", err)
	}
	return apperror.Internal(err)
}

// canReadStudent allows a user to read their own records; recruiters and admins may read anyone's.
func canReadStudent(requester domain.Identity, userID int64) bool {
	return requester.ID == userID || requester.Role.CanRecruit()
}
