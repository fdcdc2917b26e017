// Package server provides the HTTP REST API for the financial diagnostic
// service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrLeadNotFound indicates the referenced lead does not exist
type ErrLeadNotFound struct {
	LeadID uuid.UUID
}

func (e *ErrLeadNotFound) Error() string {
	return fmt.Sprintf("lead not found: %s", e.LeadID)
}

// ErrDiagnosticNotFound indicates the diagnostic was not found
type ErrDiagnosticNotFound struct {
	DiagnosticID uuid.UUID
}

func (e *ErrDiagnosticNotFound) Error() string {
	return fmt.Sprintf("diagnostic not found: %s", e.DiagnosticID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrExtraction indicates the LLM extraction step failed
type ErrExtraction struct {
	Err error
}

func (e *ErrExtraction) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ErrExtraction) Unwrap() error {
	return e.Err
}

// ErrUnprocessable indicates the payload was well-formed but semantically unusable
type ErrUnprocessable struct {
	Message string
}

func (e *ErrUnprocessable) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrLeadNotFound, *ErrDiagnosticNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnprocessable:
		return http.StatusUnprocessableEntity
	case *ErrExtraction:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
