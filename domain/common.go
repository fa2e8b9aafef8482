package domain

import (
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindInternal     ErrorKind = "internal"
)

// Error is a failure the client is allowed to see. Anything that is not an
// *Error is treated as internal.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	MesaageUserNotAllowed     = "user not allowed"
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"
	MessageInternalError      = "internal server error"

	ErrParseUUID     = NewError(KindValidation, "failed to parse UUID")
	ErrTokenNotFound = NewError(KindUnauthorized, "failed to token not found")
	ErrTokenExpired  = NewError(KindUnauthorized, "token expired")
	ErrTokenInvalid  = NewError(KindUnauthorized, "token invalid")
	ErrAdminOnly     = NewError(KindForbidden, "admin access required")
)

type (
	PaginationResponse struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}
)

func NewPagination(page, limit int, total int64) PaginationResponse {
	return PaginationResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
	}
}
