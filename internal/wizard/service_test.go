package wizard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "bizform/pkg/domain"
	dErrors "bizform/pkg/domain-errors"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store := NewMemoryStore(time.Minute)
	t.Cleanup(store.Close)
	return NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("start returns the first question", func(t *testing.T) {
		svc := newTestService(t)

		snap, err := svc.StartRun(ctx, ModeEligibility)
		require.NoError(t, err)
		assert.NotEmpty(t, snap.RunID)
		assert.Equal(t, StateNotStarted, snap.State)
		assert.Equal(t, 4, snap.TotalSteps)
		require.NotNil(t, snap.Question)
		assert.Equal(t, "activity", snap.Question.ID)
	})

	t.Run("unknown mode is invalid input", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.StartRun(ctx, Mode("adaptive"))
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	t.Run("full scored run through the service", func(t *testing.T) {
		svc := newTestService(t)

		snap, err := svc.StartRun(ctx, ModeScored)
		require.NoError(t, err)
		assert.Equal(t, 10, snap.TotalSteps)

		answers := []string{
			"under_2_4m", "none", "individuals", "no", "personal",
			"solo", "high", "personal_card", "npd_only", "stable",
		}
		for i, optionID := range answers {
			snap, err = svc.SubmitAnswer(ctx, snap.RunID, i, optionID)
			require.NoError(t, err)
		}

		assert.Equal(t, StateResult, snap.State)
		require.NotNil(t, snap.Scored)
		assert.Equal(t, id.FormNPD, snap.Scored.Form)
		assert.Nil(t, snap.Question)
	})

	t.Run("get reflects submitted answers", func(t *testing.T) {
		svc := newTestService(t)

		snap, err := svc.StartRun(ctx, ModeEligibility)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(ctx, snap.RunID, 0, "services")
		require.NoError(t, err)

		got, err := svc.GetRun(ctx, snap.RunID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Step)
		require.Len(t, got.Answers, 1)
		assert.Equal(t, "services", got.Answers[0].OptionID)
	})

	t.Run("unknown run id is not found", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.GetRun(ctx, "f2b9adfd-4e41-4f3a-9262-9a51cbd78bf0")
		require.ErrorIs(t, err, ErrRunNotFound)
		assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
	})

	t.Run("back and reset round-trip", func(t *testing.T) {
		svc := newTestService(t)

		snap, err := svc.StartRun(ctx, ModeScored)
		require.NoError(t, err)
		snap, err = svc.SubmitAnswer(ctx, snap.RunID, 0, "over_2_4m")
		require.NoError(t, err)
		assert.Less(t, snap.Scores[id.FormNPD], 0)

		snap, err = svc.GoBack(ctx, snap.RunID)
		require.NoError(t, err)
		assert.Zero(t, snap.Scores[id.FormNPD])
		assert.Zero(t, snap.Step)

		snap, err = svc.SubmitAnswer(ctx, snap.RunID, 0, "under_2_4m")
		require.NoError(t, err)
		snap, err = svc.ResetRun(ctx, snap.RunID)
		require.NoError(t, err)
		assert.Equal(t, StateNotStarted, snap.State)
		assert.Empty(t, snap.Answers)
		assert.Zero(t, snap.Scores[id.FormNPD])
	})
}
