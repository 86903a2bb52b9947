package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	cases := []struct {
		name        string
		args        []string
		expected    options
		expectedErr bool
	}{
		{name: "defaults", args: nil, expected: options{}},
		{
			name:     "now_and_timeout",
			args:     []string{"-now", "2024-06-15T12:00:00Z", "-timeout", "90s"},
			expected: options{Now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC), Timeout: 90 * time.Second},
		},
		{name: "invalid_now", args: []string{"-now", "yesterday"}, expectedErr: true},
		{name: "invalid_timeout", args: []string{"-timeout", "soon"}, expectedErr: true},
		{name: "negative_timeout", args: []string{"-timeout", "-1m"}, expectedErr: true},
		{name: "unknown_flag", args: []string{"-verbose"}, expectedErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := parseOptions(tc.args)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Now.Equal(opts.Now))
			assert.Equal(t, tc.expected.Timeout, opts.Timeout)
		})
	}
}

func TestRecomputeRequest(t *testing.T) {
	defaults := domain.DefaultEngineConfig()

	req := recomputeRequest(defaults, options{})
	assert.Nil(t, req.Config)

	at := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	req = recomputeRequest(defaults, options{Now: at})
	require.NotNil(t, req.Config)
	assert.True(t, at.Equal(req.Config.Now))
	assert.Equal(t, defaults.Scoring, req.Config.Scoring)
	assert.Equal(t, defaults.Classifier, req.Config.Classifier)
}

func TestWriteSummary(t *testing.T) {
	summary := domain.RunSummary{
		RunID:          "run-1",
		ItemsTotal:     3,
		ItemsProcessed: 2,
		ItemsSkipped:   1,
		Skipped:        []domain.SkippedItem{{ItemID: "x", Reason: "invalid position"}},
		ViewsWritten:   2,
	}

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, summary))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded["run_id"])
	assert.EqualValues(t, 2, decoded["items_processed"])
	assert.EqualValues(t, 1, decoded["items_skipped"])
	assert.Len(t, decoded["skipped"], 1)
}
