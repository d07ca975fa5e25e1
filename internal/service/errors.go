package service

import (
	"errors"
	"net/http"
)

const (
	BadRequest          = http.StatusBadRequest
	ServiceUnavailable  = http.StatusServiceUnavailable
	Unauthorized        = http.StatusUnauthorized
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

var (
	ErrParamInvalid        = errors.New("invalid request parameters")
	ErrModelNotFound       = errors.New("AI model not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrOrgNotFound         = errors.New("organization not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrParentNotFound      = errors.New("parent comment not found")
	ErrRatingNotFound      = errors.New("rating not found")
	ErrNotificationMissing = errors.New("notification not found")
	ErrTagNotFound         = errors.New("tag not found")
	ErrApiKeyNotFound      = errors.New("api key not found")

	ErrSlugExists     = errors.New("model slug already exists")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
	ErrOrgNameExists  = errors.New("organization name already exists")
	ErrOrgURLExists   = errors.New("organization URL already exists")

	ErrNotCommentOwner      = errors.New("you can only modify your own comments")
	ErrNotRatingOwner       = errors.New("you can only delete your own ratings")
	ErrNotNotificationOwner = errors.New("you can only mark your own notifications as read")

	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
	ErrInvalidVerifyToken = errors.New("invalid verification token")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUnexpected         = errors.New("unexpected internal error")

	ErrSuggestUnavailable = errors.New("tag suggestion is not available")
)

// ErrorMap binds sentinel errors to response status codes.
var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrModelNotFound:       NotFound,
	ErrUserNotFound:        NotFound,
	ErrOrgNotFound:         NotFound,
	ErrCommentNotFound:     NotFound,
	ErrParentNotFound:      NotFound,
	ErrRatingNotFound:      NotFound,
	ErrNotificationMissing: NotFound,
	ErrTagNotFound:         NotFound,
	ErrApiKeyNotFound:      NotFound,

	ErrSlugExists:     Conflict,
	ErrUsernameExists: Conflict,
	ErrEmailExists:    Conflict,
	ErrOrgNameExists:  Conflict,
	ErrOrgURLExists:   Conflict,

	ErrNotCommentOwner:      Forbidden,
	ErrNotRatingOwner:       Forbidden,
	ErrNotNotificationOwner: Forbidden,
	ErrForbidden:            Forbidden,

	ErrRatingOutOfRange:   BadRequest,
	ErrInvalidCredentials: Unauthorized,
	ErrAccountDisabled:    Unauthorized,
	ErrInvalidVerifyToken: BadRequest,
	ErrUnexpected:         InternalServerError,
	ErrSuggestUnavailable: ServiceUnavailable,
}
