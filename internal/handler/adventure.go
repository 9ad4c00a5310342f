package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PollPeak_Go/internal/adventure"
	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/metrics"
)

// JournalResponse is one person's rendered adventure.
type JournalResponse struct {
	Person string        `json:"person"`
	Pages  []domain.Page `json:"pages"`
}

// AdventurePeopleResponse lists everyone with a recorded adventure.
type AdventurePeopleResponse struct {
	People []string `json:"people"`
}

// GuideResponse is the static solutions walkthrough.
type GuideResponse struct {
	Sections []adventure.GuideSection `json:"sections"`
}

// PredictionResponse is one person's end-of-year prediction.
type PredictionResponse struct {
	Person     string `json:"person"`
	Prediction string `json:"prediction"`
}

// PredictionsIndexResponse lists everyone a prediction was written for.
type PredictionsIndexResponse struct {
	People []string `json:"people"`
}

// HandleGetJournal renders one person's adventure journal
func HandleGetJournal(service adventure.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		pages, err := service.Journal(r.Context(), person)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		metrics.JournalsRendered.Inc()
		respondJSON(w, http.StatusOK, JournalResponse{Person: person, Pages: pages})
	}
}

// HandleGetAdventurePeople lists people with recorded adventures
func HandleGetAdventurePeople(service adventure.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, AdventurePeopleResponse{People: service.People()})
	}
}

// HandleGetGuide returns the solutions walkthrough
func HandleGetGuide(service adventure.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, GuideResponse{Sections: service.Guide()})
	}
}

// HandleGetPrediction returns one person's prediction
func HandleGetPrediction(service adventure.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		text, err := service.Prediction(r.Context(), person)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		metrics.PredictionsRequested.Inc()
		respondJSON(w, http.StatusOK, PredictionResponse{Person: person, Prediction: text})
	}
}

// HandleGetPredictions lists people with predictions
func HandleGetPredictions(service adventure.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, PredictionsIndexResponse{People: service.Predictions()})
	}
}
