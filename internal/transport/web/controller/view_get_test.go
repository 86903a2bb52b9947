package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/datasources/mocks"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHiddenGemsGet_ServeHTTP(t *testing.T) {
	view := domain.ClassifiedView{
		Name:       domain.HiddenGemsViewName,
		Kind:       domain.ViewKindHiddenGems,
		Entries:    []domain.ViewEntry{{Rank: 1, ItemID: "roti-bakar", FrequencyScore: 10, RankingScore: 3}},
		ComputedAt: testTime,
	}

	reader := mocks.NewMockViewReader(t)
	reader.EXPECT().GetView(mock.Anything, domain.HiddenGemsViewName).Return(view, nil)

	req := testContext()(httptest.NewRequest(http.MethodGet, "/v1/views/hidden-gems", nil))
	rec := httptest.NewRecorder()
	HiddenGemsGet{Reader: reader, CacheMaxAge: time.Minute}.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var response domain.ClassifiedView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, view, response)
}

func TestLocalFavoritesGet_ServeHTTP(t *testing.T) {
	cases := []struct {
		name        string
		locality    string
		view        domain.ClassifiedView
		getErr      error
		wantStatus  int
		wantEntries []domain.ViewEntry
		skipGet     bool
	}{
		{
			name:     "found",
			locality: "Bangsar",
			view: domain.ClassifiedView{
				Name:     domain.LocalFavoritesViewName("Bangsar"),
				Kind:     domain.ViewKindLocalFavorites,
				Locality: "Bangsar",
				Entries:  []domain.ViewEntry{{Rank: 1, ItemID: "roti-bakar"}},
			},
			wantStatus:  http.StatusOK,
			wantEntries: []domain.ViewEntry{{Rank: 1, ItemID: "roti-bakar"}},
		},
		{
			name:        "empty_view_serves_empty_entries",
			locality:    "Bangsar",
			view:        domain.ClassifiedView{Name: domain.LocalFavoritesViewName("Bangsar")},
			wantStatus:  http.StatusOK,
			wantEntries: []domain.ViewEntry{},
		},
		{
			name:       "unknown_locality",
			locality:   "Atlantis",
			getErr:     domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "reader_error",
			locality:   "Bangsar",
			getErr:     errors.New("timeout"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing_locality",
			wantStatus: http.StatusNotFound,
			skipGet:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reader := mocks.NewMockViewReader(t)
			if !tc.skipGet {
				reader.EXPECT().
					GetView(mock.Anything, domain.LocalFavoritesViewName(tc.locality)).
					Return(tc.view, tc.getErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/views/local-favorites/"+tc.locality, nil)
			req = mux.SetURLVars(testContext()(req), map[string]string{"locality": tc.locality})
			rec := httptest.NewRecorder()

			LocalFavoritesGet{Reader: reader}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var response domain.ClassifiedView
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, tc.wantEntries, response.Entries)
			}
		})
	}
}
