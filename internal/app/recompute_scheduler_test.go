package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/makanrank/ranking-engine/internal/command"
	"github.com/makanrank/ranking-engine/internal/command/mocks"
	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecomputeScheduler_Run(t *testing.T) {
	recompute := mocks.NewMockCommand[command.RecomputeRankingsRequest, domain.RunSummary](t)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	runs := make(chan struct{}, 8)
	calls := 0
	recompute.EXPECT().
		Execute(mock.Anything, command.RecomputeRankingsRequest{}).
		RunAndReturn(func(context.Context, command.RecomputeRankingsRequest) (domain.RunSummary, error) {
			calls++
			select {
			case runs <- struct{}{}:
			default:
			}
			switch calls {
			case 1:
				return domain.RunSummary{}, errors.New("database unavailable")
			case 2:
				return domain.RunSummary{}, domain.ErrRecomputeInProgress
			default:
				return domain.RunSummary{RunID: "run"}, nil
			}
		})

	s := &RecomputeScheduler{
		Recompute:  recompute,
		Interval:   time.Millisecond,
		Timeout:    time.Second,
		RunOnStart: true,
	}

	done := make(chan error)
	go func() { done <- s.Run(ctx) }()

	// Failures keep the scheduler going.
	for range 3 {
		select {
		case <-runs:
		case <-time.After(5 * time.Second):
			t.Fatal("scheduler stopped running")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRecomputeScheduler_RunOnce_AppliesTimeout(t *testing.T) {
	recompute := mocks.NewMockCommand[command.RecomputeRankingsRequest, domain.RunSummary](t)

	recompute.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ command.RecomputeRankingsRequest) (domain.RunSummary, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return domain.RunSummary{}, nil
		})

	s := &RecomputeScheduler{Recompute: recompute, Interval: time.Hour, Timeout: time.Minute}
	s.runOnce(testContext())
}
