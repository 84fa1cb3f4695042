package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrAlreadySubmitted     = errors.New("report already submitted for this period")
	ErrCategoryNotFound     = errors.New("appointment category not found")
	ErrBarangayNotFound     = errors.New("barangay not found")
	ErrDuplicateTemplate    = errors.New("submission template already exists for this barangay and period")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrSubmissionNotPending = errors.New("submission is not in a reviewable state")
)
