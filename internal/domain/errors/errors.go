// Package errors defines the application error taxonomy and its HTTP mapping.
package errors

import (
	"net/http"

	"scanbox/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Requête invalide",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Mot de passe trop faible",
		"",
	)

	// Accounts
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email déjà utilisé",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Création de l'utilisateur impossible",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Mise à jour de l'utilisateur impossible",
		"",
	)

	// Sessions
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Identifiants invalides",
		"",
	)

	ErrWrongProvider = NewBaseError(
		http.StatusBadRequest,
		"WRONG_PROVIDER",
		"Ce compte utilise Google pour se connecter",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Non authentifié",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token invalide ou expiré",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé : admin requis",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Trop de tentatives, réessayez plus tard",
		"",
	)

	// OAuth provider flows
	ErrMissingEmail = NewBaseError(
		http.StatusBadRequest,
		"MISSING_EMAIL",
		"Email Google introuvable",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Erreur d'authentification Google",
		"",
	)

	ErrExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"EXCHANGE_FAILED",
		"Échange avec Google impossible",
		"",
	)

	// Inventory
	ErrStorageNotFound = NewBaseError(
		http.StatusNotFound,
		"STORAGE_NOT_FOUND",
		"Entrepôt introuvable",
		"",
	)

	ErrBoxNotFound = NewBaseError(
		http.StatusNotFound,
		"BOX_NOT_FOUND",
		"Boîte introuvable",
		"",
	)

	ErrLabelInvalid = NewBaseError(
		http.StatusBadRequest,
		"LABEL_INVALID",
		"Étiquette illisible",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database failure so that the
// HTTP boundary reports a generic 500 without leaking driver details.
func NewDatabaseExecuteError(err error, details string) error {
	return errors.Wrap(
		NewBaseError(http.StatusInternalServerError, "DATABASE_ERROR", "Erreur serveur", details),
		err.Error(),
	)
}
