package controller

import (
	"errors"
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

func TestRankingListPut_ServeHTTP(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		expectReq  command.SubmitRankingListRequest
		execErr    error
		wantStatus int
		skipExec   bool
	}{
		{
			name: "replaces_list",
			body: `[{"item_id":"nasi-lemak","position":1},{"item_id":"roti-bakar","position":2}]`,
			expectReq: command.SubmitRankingListRequest{
				UserID:   "u1",
				Category: "breakfast",
				Entries: []command.RankingListEntry{
					{ItemID: "nasi-lemak", Position: 1},
					{ItemID: "roti-bakar", Position: 2},
				},
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "malformed_body",
			body:       `{"item_id":`,
			wantStatus: http.StatusBadRequest,
			skipExec:   true,
		},
		{
			name: "invalid_position",
			body: `[{"item_id":"nasi-lemak","position":99}]`,
			expectReq: command.SubmitRankingListRequest{
				UserID: "u1", Category: "breakfast",
				Entries: []command.RankingListEntry{{ItemID: "nasi-lemak", Position: 99}},
			},
			execErr:    &domain.InputValidationError{ItemID: "nasi-lemak", Field: "position", Reason: "position outside 1..10"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_item",
			body: `[{"item_id":"missing","position":1}]`,
			expectReq: command.SubmitRankingListRequest{
				UserID: "u1", Category: "breakfast",
				Entries: []command.RankingListEntry{{ItemID: "missing", Position: 1}},
			},
			execErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "storage_failure",
			body: `[]`,
			expectReq: command.SubmitRankingListRequest{
				UserID: "u1", Category: "breakfast", Entries: []command.RankingListEntry{},
			},
			execErr:    errors.New("deadlock"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			submit := mocks.NewMockCommand[command.SubmitRankingListRequest, command.Empty](t)
			if !tc.skipExec {
				submit.EXPECT().Execute(mock.Anything, tc.expectReq).Return(command.Empty{}, tc.execErr)
			}

			req := httptest.NewRequest(http.MethodPut, "/v1/users/u1/rankings/breakfast", strings.NewReader(tc.body))
			req = mux.SetURLVars(testContext()(req), map[string]string{"user_id": "u1", "category": "breakfast"})
			rec := httptest.NewRecorder()

			RankingListPut{SubmitCmd: submit}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
