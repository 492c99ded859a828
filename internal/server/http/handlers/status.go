package handlers

import (
	"errors"
	"net/http"

	domainErrors "github.com/polkiloo/accounts/internal/domain/errors"
	"github.com/polkiloo/accounts/internal/server/http/dto"
)

// Route identifies an account endpoint for status code mapping.
type Route string

const (
	RouteRegister Route = "register"
	RouteLogin    Route = "login"
	RouteUpdate   Route = "update"
	RouteDelete   Route = "delete"
	RouteProfile  Route = "profile"
)

type statusRule struct {
	err    error
	status int
}

var unifiedStatuses = []statusRule{
	{domainErrors.ErrEmptyRequest, http.StatusBadRequest},
	{domainErrors.ErrMissingEmail, http.StatusBadRequest},
	{domainErrors.ErrInvalidEmailFormat, http.StatusUnprocessableEntity},
	{domainErrors.ErrAlreadyExists, http.StatusConflict},
	{domainErrors.ErrNotFound, http.StatusNotFound},
	{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
}

// Codes answered by the legacy deployment. They differ per route.
var (
	legacyValidation = []statusRule{
		{domainErrors.ErrEmptyRequest, http.StatusForbidden},
		{domainErrors.ErrMissingEmail, http.StatusNotFound},
		{domainErrors.ErrInvalidEmailFormat, http.StatusMethodNotAllowed},
	}
	legacyStatuses = map[Route][]statusRule{
		RouteRegister: {
			{domainErrors.ErrAlreadyExists, http.StatusUnauthorized},
		},
		RouteLogin: {
			{domainErrors.ErrNotFound, http.StatusPaymentRequired},
			{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		},
		RouteUpdate: {
			{domainErrors.ErrNotFound, http.StatusUnauthorized},
		},
		RouteDelete: {
			{domainErrors.ErrNotFound, http.StatusUnauthorized},
			{domainErrors.ErrInvalidCredentials, http.StatusPaymentRequired},
		},
	}
)

// StatusMapper turns operation errors into HTTP status codes, either with one
// mapping for all routes or with the per-route codes of the legacy deployment.
type StatusMapper struct {
	legacy bool
}

func NewStatusMapper(legacy bool) StatusMapper {
	return StatusMapper{legacy: legacy}
}

// Status returns the code for err on route. Errors outside the domain set map
// to InternalStatus.
func (m StatusMapper) Status(route Route, err error) int {
	if m.legacy {
		if status, ok := match(legacyValidation, err); ok {
			return status
		}
		if status, ok := match(legacyStatuses[route], err); ok {
			return status
		}
	}
	if status, ok := match(unifiedStatuses, err); ok {
		return status
	}
	return m.InternalStatus()
}

// InternalStatus is the code for unexpected failures.
func (m StatusMapper) InternalStatus() int {
	if m.legacy {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func match(rules []statusRule, err error) (int, bool) {
	for _, r := range rules {
		if errors.Is(err, r.err) {
			return r.status, true
		}
	}
	return 0, false
}

// describe names the outcome of err for the response body.
func describe(err error) (dto.Outcome, string) {
	switch {
	case errors.Is(err, domainErrors.ErrEmptyRequest):
		return dto.OutcomeEmptyRequest, domainErrors.ErrEmptyRequest.Error()
	case errors.Is(err, domainErrors.ErrMissingEmail):
		return dto.OutcomeMissingEmail, domainErrors.ErrMissingEmail.Error()
	case errors.Is(err, domainErrors.ErrInvalidEmailFormat):
		return dto.OutcomeInvalidEmailFormat, domainErrors.ErrInvalidEmailFormat.Error()
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return dto.OutcomeDuplicateEmail, domainErrors.ErrAlreadyExists.Error()
	case errors.Is(err, domainErrors.ErrNotFound):
		return dto.OutcomeUserNotFound, domainErrors.ErrNotFound.Error()
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return dto.OutcomeInvalidCredentials, domainErrors.ErrInvalidCredentials.Error()
	default:
		return dto.OutcomeInternalError, "internal server error"
	}
}
