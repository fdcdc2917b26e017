package server

import (
	"net/http"

	"golang.org/x/sync/errgroup"
)

// SummaryResponse represents the aggregated view for /admin/summary
type SummaryResponse struct {
	Leads               int            `json:"leads"`
	Diagnostics         int            `json:"diagnostics"`
	Consultations       int            `json:"consultations"`
	BandDistribution    map[string]int `json:"band_distribution"`
	ProfileDistribution map[string]int `json:"profile_distribution"`
}

// handleAdminSummary aggregates platform-wide counts and score
// distributions. The five queries are independent and run concurrently.
func (s *Server) handleAdminSummary(w http.ResponseWriter, r *http.Request) {
	var summary SummaryResponse

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		n, err := s.db.CountLeads(ctx)
		summary.Leads = n
		return err
	})
	g.Go(func() error {
		n, err := s.db.CountDiagnostics(ctx)
		summary.Diagnostics = n
		return err
	})
	g.Go(func() error {
		n, err := s.db.CountConsultations(ctx)
		summary.Consultations = n
		return err
	})
	g.Go(func() error {
		dist, err := s.db.BandDistribution(ctx)
		summary.BandDistribution = dist
		return err
	})
	g.Go(func() error {
		dist, err := s.db.ProfileDistribution(ctx)
		summary.ProfileDistribution = dist
		return err
	})

	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, &summary)
}
