package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/command/mocks"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVisitCreate_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		expectReq  command.RecordVisitRequest
		execErr    error
		wantStatus int
		skipExec   bool
	}{
		{
			name:       "with_timestamp",
			body:       `{"user_id":"u1","visited_at":"2024-06-15T12:00:00Z"}`,
			expectReq:  command.RecordVisitRequest{UserID: "u1", ItemID: "roti-bakar", VisitedAt: testTime},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "without_timestamp",
			body:       `{"user_id":"u1"}`,
			expectReq:  command.RecordVisitRequest{UserID: "u1", ItemID: "roti-bakar"},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "future_timestamp",
			body:       `{"user_id":"u1","visited_at":"2999-01-01T00:00:00Z"}`,
			execErr:    &domain.InputValidationError{Field: "visited_at", Reason: "timestamp in the future"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed_timestamp",
			body:       `{"user_id":"u1","visited_at":"yesterday"}`,
			wantStatus: http.StatusBadRequest,
			skipExec:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := mocks.NewMockCommand[command.RecordVisitRequest, command.Empty](t)
			if !tc.skipExec {
				expected := any(tc.expectReq)
				if tc.execErr != nil {
					expected = mock.Anything
				}
				record.EXPECT().Execute(mock.Anything, expected).Return(command.Empty{}, tc.execErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/items/roti-bakar/visits", strings.NewReader(tc.body))
			req = mux.SetURLVars(testContext()(req), map[string]string{"item_id": "roti-bakar"})
			rec := httptest.NewRecorder()

			VisitCreate{RecordCmd: record}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
