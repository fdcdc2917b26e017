package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateLeadRequest represents the request to register a new lead.
type CreateLeadRequest struct {
	Name  string `json:"name" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty"`
}

// CreateConsultationRequest represents the request to book a consultation
// for an existing lead.
type CreateConsultationRequest struct {
	LeadID string `json:"lead_id" validate:"required,uuid"`
	Topic  string `json:"topic" validate:"required,min=1"`
}

// CreateDiagnosticRequest represents the request to run a diagnostic.
// Exactly one of Transcript or Analysis must be provided: a transcript is
// sent through the extraction step first, a pre-extracted analysis skips it.
type CreateDiagnosticRequest struct {
	LeadID     string          `json:"lead_id,omitempty" validate:"omitempty,uuid"`
	Transcript string          `json:"transcript,omitempty"`
	Analysis   *AnalysisRecord `json:"analysis,omitempty"`
}

// Validate validates the CreateLeadRequest using the validator.
func (r *CreateLeadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateConsultationRequest using the validator.
func (r *CreateConsultationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateDiagnosticRequest using the validator.
func (r *CreateDiagnosticRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
