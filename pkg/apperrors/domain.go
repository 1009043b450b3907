package apperrors

import (
	"net/http"
)

// Predeclared domain errors and factories. Handlers compare against these
// with errors.Is; the HTTP layer renders Code/Domain/Message as-is.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Authorization ---

// ErrWrongRole: the principal's role can never perform this action.
var ErrWrongRole = New(
	CodeWrongRole,
	"auth",
	"Your role is not allowed to perform this action",
	http.StatusForbidden,
)

// ErrNotOwner: correct role, but the resource belongs to someone else.
// Kept distinct from ErrWrongRole so both are separable in logs and tests.
var ErrNotOwner = New(
	CodeNotOwner,
	"auth",
	"You are not the owner of this resource",
	http.StatusForbidden,
)

var ErrUnauthenticated = New(
	CodeUnauthorized,
	"auth",
	"Authentication required",
	http.StatusUnauthorized,
)

// --- Jobs ---

// ErrEmployerProfileRequired: job creation needs a completed employer
// profile. 404 with a message distinct from "job not found" so clients can
// route to profile creation.
var ErrEmployerProfileRequired = New(
	CodeProfileRequired,
	"job",
	"Employer profile not found. Please complete your profile first.",
	http.StatusNotFound,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobNotActive = New(
	CodeInvalidStatus,
	"job",
	"This job is no longer accepting applications",
	http.StatusBadRequest,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrApplicationAlreadyExists: one application per (job, applicant). 400 with
// a user-facing message distinct from a generic validation failure.
var ErrApplicationAlreadyExists = New(
	CodeAlreadyExists,
	"application",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid application status",
	http.StatusBadRequest,
)

// --- Profiles ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

// --- Auth & users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)
