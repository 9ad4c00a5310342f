package handler

import (
	"net/http"

	"github.com/osse101/PollPeak_Go/internal/awards"
	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/metrics"
)

// CeremonyResponse is the full award ceremony in presentation order.
type CeremonyResponse struct {
	Awards []domain.Award `json:"awards"`
}

// WinnersResponse lists the overall winners.
type WinnersResponse struct {
	Winners []string `json:"winners"`
}

// HandleGetAwards returns the award ceremony
func HandleGetAwards(service awards.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ceremony := service.Awards(r.Context())
		metrics.CeremoniesServed.Inc()
		respondJSON(w, http.StatusOK, CeremonyResponse{Awards: ceremony})
	}
}

// HandleGetWinners returns the overall winners derived from the ceremony
func HandleGetWinners(service awards.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, WinnersResponse{Winners: service.OverallWinners(r.Context())})
	}
}
