package user

import (
	appErrors "sentiment-analysis-api/pkg/errors"
)

var (
	ErrUserNotFound      = appErrors.ErrUserNotFound
	ErrDuplicateUsername = appErrors.ErrDuplicateUsername
	ErrDuplicateEmail    = appErrors.ErrDuplicateEmail
	ErrUserInactive      = appErrors.ErrUserInactive
)
