package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/finwell/score-express/internal/types"
)

// ---------------------------------------------------------------------
// Lead Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	var req types.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	id, err := s.db.CreateLead(r.Context(), req.Name, req.Email, req.Phone)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetLead(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	leadID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := s.db.GetLead(r.Context(), leadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lead == nil {
		s.errorResponse(w, http.StatusNotFound, "Lead not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, lead)
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	leads, err := s.db.ListLeads(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"leads": leads,
		"count": len(leads),
	})
}

// handleListScoreHistory returns a lead's archived totals, oldest first
func (s *Server) handleListScoreHistory(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	leadID, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := s.db.GetLead(r.Context(), leadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lead == nil {
		s.errorResponse(w, http.StatusNotFound, "Lead not found")
		return
	}

	history, err := s.db.ListScoreHistory(r.Context(), leadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"lead_id": leadID.String(),
		"history": history,
		"count":   len(history),
	})
}

// ---------------------------------------------------------------------
// Consultation Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateConsultation(w http.ResponseWriter, r *http.Request) {
	var req types.CreateConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	leadID, err := uuid.Parse(req.LeadID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid lead ID")
		return
	}

	lead, err := s.db.GetLead(r.Context(), leadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if lead == nil {
		s.errorResponse(w, http.StatusNotFound, "Lead not found")
		return
	}

	id, err := s.db.CreateConsultation(r.Context(), leadID, req.Topic)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListConsultations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	consultations, err := s.db.ListConsultations(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"consultations": consultations,
		"count":         len(consultations),
	})
}
