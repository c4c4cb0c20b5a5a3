package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizform/internal/wizard"
	"bizform/pkg/testutil"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := wizard.NewMemoryStore(time.Minute)
	t.Cleanup(store.Close)
	svc := wizard.NewService(store, logger, nil)
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func startRun(t *testing.T, router chi.Router, mode string) *RunResponse {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/wizard/start", map[string]any{
		"mode": mode,
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)
	return testutil.UnmarshalResponse[RunResponse](t, rr)
}

func submitAnswer(t *testing.T, router chi.Router, runID string, step int, optionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, http.MethodPost, fmt.Sprintf("/api/wizard/%s/answer", runID), map[string]any{
		"stepIndex": step,
		"optionId":  optionID,
	})
	return testutil.DoRequest(router, req)
}

func TestHandleStart(t *testing.T) {
	router := newTestRouter(t)

	t.Run("eligibility run starts at the first question", func(t *testing.T) {
		resp := startRun(t, router, "eligibility")

		assert.NotEmpty(t, resp.RunID)
		assert.Equal(t, "not_started", resp.State)
		assert.Equal(t, 0, resp.Step)
		assert.Equal(t, 4, resp.TotalSteps)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "activity", resp.Question.ID)
		assert.Len(t, resp.Question.Options, 4)
		assert.Empty(t, resp.Answers)
	})

	t.Run("scored run exposes zeroed scores", func(t *testing.T) {
		resp := startRun(t, router, "scored")

		assert.Equal(t, 10, resp.TotalSteps)
		require.Len(t, resp.Scores, 3)
		assert.Zero(t, resp.Scores["npd"])
	})

	t.Run("missing mode is a validation error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/wizard/start", map[string]any{})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "validation_error")
	})

	t.Run("unknown mode is a validation error", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/wizard/start", map[string]any{
			"mode": "adaptive",
		})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestHandleAnswer(t *testing.T) {
	router := newTestRouter(t)

	t.Run("full eligibility run over HTTP", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		for step, optionID := range []string{"services", "under_2_4m", "none", "companies"} {
			rr := submitAnswer(t, router, run.RunID, step, optionID)
			testutil.AssertStatus(t, rr, http.StatusOK)
			run = testutil.UnmarshalResponse[RunResponse](t, rr)
		}

		assert.Equal(t, "result", run.State)
		require.NotNil(t, run.Eligible)
		assert.Equal(t, "npd", run.Eligible.Form)
		assert.Equal(t, "6%", run.Eligible.Rate)
		assert.Nil(t, run.Question)
		assert.Len(t, run.Answers, 4)
	})

	t.Run("disqualifying answer ends the run", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		rr := submitAnswer(t, router, run.RunID, 0, "resale")
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RunResponse](t, rr)

		assert.Equal(t, "disqualified", resp.State)
		require.NotNil(t, resp.Disqualified)
		assert.Equal(t, "ip", resp.Disqualified.Alternative)

		// Further answers hit the terminal-state invariant.
		rr = submitAnswer(t, router, run.RunID, 1, "under_2_4m")
		testutil.AssertStatus(t, rr, http.StatusConflict)
		testutil.AssertErrorCode(t, rr, "invariant_violation")
	})

	t.Run("scored run returns a recommendation with scores", func(t *testing.T) {
		run := startRun(t, router, "scored")

		answers := []string{
			"over_2_4m", "employees", "companies", "yes", "limited",
			"partners", "low", "business_account", "choice", "scale",
		}
		var resp *RunResponse
		for step, optionID := range answers {
			rr := submitAnswer(t, router, run.RunID, step, optionID)
			testutil.AssertStatus(t, rr, http.StatusOK)
			resp = testutil.UnmarshalResponse[RunResponse](t, rr)
		}

		assert.Equal(t, "result", resp.State)
		require.NotNil(t, resp.Recommendation)
		assert.Equal(t, "ooo", resp.Recommendation.Form)
		assert.NotEmpty(t, resp.Recommendation.Reasons)
		assert.Equal(t, 23, resp.Scores["ooo"])
	})

	t.Run("out-of-sequence step is a conflict", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		rr := submitAnswer(t, router, run.RunID, 3, "individuals")
		testutil.AssertStatus(t, rr, http.StatusConflict)
		testutil.AssertErrorCode(t, rr, "invariant_violation")
	})

	t.Run("unknown option is a bad request", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		rr := submitAnswer(t, router, run.RunID, 0, "freelancing")
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "invalid_input")
	})

	t.Run("missing stepIndex is a validation error", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		req := testutil.NewJSONRequest(t, http.MethodPost, fmt.Sprintf("/api/wizard/%s/answer", run.RunID), map[string]any{
			"optionId": "services",
		})
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertErrorCode(t, rr, "validation_error")
	})

	t.Run("unknown run id is not found", func(t *testing.T) {
		rr := submitAnswer(t, router, "22222222-2222-4222-8222-222222222222", 0, "services")
		testutil.AssertStatus(t, rr, http.StatusNotFound)
		testutil.AssertErrorCode(t, rr, "not_found")
	})
}

func TestHandleGetBackReset(t *testing.T) {
	router := newTestRouter(t)

	t.Run("get returns the current snapshot", func(t *testing.T) {
		run := startRun(t, router, "eligibility")
		submitAnswer(t, router, run.RunID, 0, "services")

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/wizard/"+run.RunID, nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RunResponse](t, rr)

		assert.Equal(t, 1, resp.Step)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "income", resp.Question.ID)
		require.Len(t, resp.Answers, 1)
		assert.Equal(t, "services", resp.Answers[0].OptionID)
	})

	t.Run("get unknown run is not found", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodGet, "/api/wizard/33333333-3333-4333-8333-333333333333", nil))
		testutil.AssertStatus(t, rr, http.StatusNotFound)
	})

	t.Run("back returns to the previous question", func(t *testing.T) {
		run := startRun(t, router, "eligibility")
		submitAnswer(t, router, run.RunID, 0, "services")

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, fmt.Sprintf("/api/wizard/%s/back", run.RunID), nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RunResponse](t, rr)

		assert.Equal(t, 0, resp.Step)
		assert.Empty(t, resp.Answers)
	})

	t.Run("back at the start is a conflict", func(t *testing.T) {
		run := startRun(t, router, "eligibility")

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, fmt.Sprintf("/api/wizard/%s/back", run.RunID), nil))
		testutil.AssertStatus(t, rr, http.StatusConflict)
	})

	t.Run("reset clears a finished run", func(t *testing.T) {
		run := startRun(t, router, "eligibility")
		submitAnswer(t, router, run.RunID, 0, "resale")

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, fmt.Sprintf("/api/wizard/%s/reset", run.RunID), nil))
		testutil.AssertStatus(t, rr, http.StatusOK)
		resp := testutil.UnmarshalResponse[RunResponse](t, rr)

		assert.Equal(t, "not_started", resp.State)
		assert.Nil(t, resp.Disqualified)
		assert.Empty(t, resp.Answers)
		require.NotNil(t, resp.Question)
		assert.Equal(t, "activity", resp.Question.ID)
	})
}
