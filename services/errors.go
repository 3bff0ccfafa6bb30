package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func validationError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

func notFoundError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

func conflictError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusConflict, Message: msg}
}

func persistenceError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}

// isNotFound reports whether err is the data layer's missing-row error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
