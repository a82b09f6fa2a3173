package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsRequired = errors.New("username and password required")
	ErrInvalidOrder        = errors.New("invalid order data")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
	ErrUnauthenticated     = errors.New("user not authenticated")
	ErrRemoteUnavailable   = errors.New("remote store unavailable")
	ErrNothingToExport     = errors.New("nothing to export")
)
