package common

import (
	"errors"
)

var ErrNotFound = errors.New("not found")
var ErrAlreadyExists = errors.New("already exists")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrRegistrationDisabled = errors.New("registration is disabled")
var ErrRateLimitExceeded = errors.New("rate limit exceeded")
var ErrNoFile = errors.New("no file provided")
var ErrUnsupportedFileType = errors.New("unsupported file type")
var ErrFileTooLarge = errors.New("file too large")
var ErrDatastoreNotConfigured = errors.New("datastore not configured")
