package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/finwell/score-express/internal/db"
	"github.com/finwell/score-express/internal/extraction"
	"github.com/finwell/score-express/internal/score"
	"github.com/finwell/score-express/internal/types"
)

// DiagnosticResponse represents the response for a completed diagnostic run
type DiagnosticResponse struct {
	ID              uuid.UUID             `json:"id"`
	LeadID          *uuid.UUID            `json:"lead_id,omitempty"`
	Analysis        *types.AnalysisRecord `json:"analysis"`
	DimensionScores types.DimensionScores `json:"dimension_scores"`
	TotalScore      int                   `json:"total_score"`
	Band            score.Band            `json:"score_classification"`
	Profile         score.Profile         `json:"profile"`
}

// handleCreateDiagnostic runs a full diagnostic: extraction (when a
// transcript is given), scoring, classification and persistence.
func (s *Server) handleCreateDiagnostic(w http.ResponseWriter, r *http.Request) {
	var req types.CreateDiagnosticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.runDiagnostic(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}

// runDiagnostic resolves the analysis record, scores it and persists the
// run. Errors carry their HTTP status via HTTPStatus.
func (s *Server) runDiagnostic(ctx context.Context, req *types.CreateDiagnosticRequest) (*DiagnosticResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "request", Message: err.Error()}
	}
	if (req.Transcript == "") == (req.Analysis == nil) {
		return nil, &ErrValidation{Field: "transcript", Message: "exactly one of transcript or analysis is required"}
	}

	var leadID *uuid.UUID
	if req.LeadID != "" {
		id, err := uuid.Parse(req.LeadID)
		if err != nil {
			return nil, &ErrValidation{Field: "lead_id", Message: "invalid lead ID"}
		}
		lead, err := s.db.GetLead(ctx, id)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, &ErrLeadNotFound{LeadID: id}
		}
		leadID = &id
	}

	record, err := s.resolveAnalysis(ctx, req)
	if err != nil {
		return nil, err
	}

	result := score.Evaluate(record)

	id, err := s.db.CreateDiagnostic(ctx, leadID, req.Transcript, record, result)
	if err != nil {
		return nil, err
	}

	if leadID != nil {
		if err := s.db.AppendScoreHistory(ctx, *leadID, id, result.TotalScore, result.Band.Name); err != nil {
			return nil, err
		}
	}

	return &DiagnosticResponse{
		ID:              id,
		LeadID:          leadID,
		Analysis:        record,
		DimensionScores: result.DimensionScores,
		TotalScore:      result.TotalScore,
		Band:            result.Band,
		Profile:         result.Profile,
	}, nil
}

// resolveAnalysis produces a normalized analysis record from either the
// transcript (via LLM extraction) or the pre-extracted analysis payload.
func (s *Server) resolveAnalysis(ctx context.Context, req *types.CreateDiagnosticRequest) (*types.AnalysisRecord, error) {
	if req.Transcript != "" {
		record, err := extraction.ExtractStructuredAnalysis(ctx, req.Transcript, s.apiKey)
		if err != nil {
			var parseErr *extraction.ParseError
			if errors.As(err, &parseErr) {
				return nil, &ErrUnprocessable{Message: "extraction produced an unusable record: " + parseErr.Error()}
			}
			return nil, &ErrExtraction{Err: err}
		}
		return record, nil
	}

	record := req.Analysis
	extraction.Normalize(record)
	return record, nil
}

// handleListDiagnostics lists diagnostic runs with optional filters
func (s *Server) handleListDiagnostics(w http.ResponseWriter, r *http.Request) {
	filters := db.DiagnosticFilters{
		Band:    r.URL.Query().Get("band"),
		Profile: r.URL.Query().Get("profile"),
	}

	if leadStr := r.URL.Query().Get("lead_id"); leadStr != "" {
		leadID, err := uuid.Parse(leadStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid lead_id filter")
			return
		}
		filters.LeadID = leadID
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		filters.Limit = limit
	}

	diagnostics, err := s.db.ListDiagnostics(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"diagnostics": diagnostics,
		"count":       len(diagnostics),
	})
}

// handleGetDiagnostic retrieves a single diagnostic run
func (s *Server) handleGetDiagnostic(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid diagnostic ID")
		return
	}

	diagnostic, err := s.db.GetDiagnostic(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if diagnostic == nil {
		s.errorResponse(w, http.StatusNotFound, "Diagnostic not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, diagnostic)
}

// handleDeleteDiagnostic deletes a diagnostic run
func (s *Server) handleDeleteDiagnostic(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid diagnostic ID")
		return
	}

	if err := s.db.DeleteDiagnostic(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Diagnostic not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
