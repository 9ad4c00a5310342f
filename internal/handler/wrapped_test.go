package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PollPeak_Go/internal/domain"
	"github.com/osse101/PollPeak_Go/internal/wrapped"
)

func testWrappedService() wrapped.Service {
	return wrapped.NewService(&domain.PollSet{
		People:   []string{"Nour", "Aiza"},
		Honorary: []string{"Maryam"},
		Polls: []domain.Poll{
			{Name: "Best Snack", Options: []domain.Option{
				{Name: "Crisps", Voters: []string{"Nour", "Aiza"}},
				{Name: "Chocolate", Voters: []string{}},
			}},
		},
	})
}

// routeRequest dispatches through a chi router so URL params resolve.
func routeRequest(t *testing.T, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	r.Get(pattern, h)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil).WithContext(context.Background()))
	return rec
}

func TestHandleGetWrappedSummary(t *testing.T) {
	rec := routeRequest(t, "/summary", HandleGetWrappedSummary(testWrappedService()), "/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	var summary wrapped.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalPolls)
	assert.Equal(t, 2, summary.TotalVotes)
}

func TestHandleGetWrappedStats(t *testing.T) {
	t.Run("known person", func(t *testing.T) {
		rec := routeRequest(t, "/{person}/stats", HandleGetWrappedStats(testWrappedService()), "/nour/stats")

		require.Equal(t, http.StatusOK, rec.Code)
		var stats wrapped.PersonStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, "Nour", stats.Name)
		assert.Equal(t, 1, stats.VoteCount)
	})

	t.Run("unknown person", func(t *testing.T) {
		rec := routeRequest(t, "/{person}/stats", HandleGetWrappedStats(testWrappedService()), "/stranger/stats")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleGetWrappedDeck(t *testing.T) {
	rec := routeRequest(t, "/{person}", HandleGetWrappedDeck(testWrappedService()), "/Aiza")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DeckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Aiza", resp.Person)
	assert.NotEmpty(t, resp.Slides)
}
