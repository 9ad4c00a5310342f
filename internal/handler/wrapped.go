package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PollPeak_Go/internal/metrics"
	"github.com/osse101/PollPeak_Go/internal/wrapped"
)

// DeckResponse carries a person's full slideshow.
type DeckResponse struct {
	Person string          `json:"person"`
	Slides []wrapped.Slide `json:"slides"`
}

// HandleGetWrappedSummary returns the group-wide statistics
func HandleGetWrappedSummary(service wrapped.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.Summary(r.Context()))
	}
}

// HandleGetWrappedStats returns one person's statistics
func HandleGetWrappedStats(service wrapped.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		stats, err := service.Stats(r.Context(), person)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleGetWrappedDeck returns one person's full slideshow
func HandleGetWrappedDeck(service wrapped.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		slides, err := service.Deck(r.Context(), person)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		name, _, _ := service.Resolve(r.Context(), person)
		metrics.SlidesServed.Inc()
		respondJSON(w, http.StatusOK, DeckResponse{Person: name, Slides: slides})
	}
}
