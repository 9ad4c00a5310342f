package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/logger"
	"github.com/osse101/PollPeak_Go/internal/votes"
)

const LogMsgVoteLookupFailed = "Vote lookup failed, serving zero counts"

// SwitchVoteRequest is the body for the switch operation.
type SwitchVoteRequest struct {
	From string `json:"from" validate:"required,votefield"`
	To   string `json:"to" validate:"required,votefield"`
}

// VoteResponse carries the person's tally after an operation.
type VoteResponse struct {
	Person string            `json:"person"`
	Counts domain.VoteCounts `json:"counts"`
}

// HandleGetVotes returns one person's current tally. A store failure is
// logged and degrades to a zero tally so the page still renders.
func HandleGetVotes(service votes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		counts, err := service.Get(r.Context(), person)
		if err != nil {
			if errors.Is(err, domain.ErrPersonNotFound) {
				status, message := mapServiceErrorToUserMessage(err)
				respondError(w, status, message)
				return
			}
			logger.FromContext(r.Context()).Error(LogMsgVoteLookupFailed, "person", person, "error", err)
			counts = domain.VoteCounts{}
		}

		respondJSON(w, http.StatusOK, VoteResponse{Person: person, Counts: counts})
	}
}

// HandleCastVote adds one vote on the side named in the route
func HandleCastVote(service votes.Service, field domain.VoteField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		counts, err := service.Cast(r.Context(), person, field)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, VoteResponse{Person: person, Counts: counts})
	}
}

// HandleRetractVote removes one vote from the side named in the route
func HandleRetractVote(service votes.Service, field domain.VoteField) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		counts, err := service.Retract(r.Context(), person, field)
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, VoteResponse{Person: person, Counts: counts})
	}
}

// HandleSwitchVote moves one vote between sides
func HandleSwitchVote(service votes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		person := chi.URLParam(r, "person")

		var req SwitchVoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestError,
				"fields": FormatValidationError(err),
			})
			return
		}

		counts, err := service.Switch(r.Context(), person, domain.VoteField(req.From), domain.VoteField(req.To))
		if err != nil {
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, VoteResponse{Person: person, Counts: counts})
	}
}
