package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/finwell/score-express/internal/extraction"
	"github.com/finwell/score-express/internal/schemas"
	"github.com/finwell/score-express/internal/score"
)

// handleScore evaluates a pre-extracted analysis record without persisting
// anything. The record is shape-checked and normalized before scoring.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(body) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Request body is required")
		return
	}

	record, err := extraction.ParseAnalysisRecord(body)
	if err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.jsonResponse(w, http.StatusBadRequest, map[string]any{
				"error":   "invalid analysis record",
				"details": ve.Errors,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis record: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score.Evaluate(record))
}
