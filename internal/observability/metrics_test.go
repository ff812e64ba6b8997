package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ippt-coach/internal/domain"
)

func scrape(t *testing.T) string {
	t.Helper()
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestRecorder_ObserveTurn(t *testing.T) {
	rec := NewRecorder()
	NewRecorder() // registering twice is safe

	rec.ObserveTurn("observe_turn_test", domain.FlowIdle, false, 5*time.Millisecond)
	rec.ObserveTurn("observe_turn_test", domain.FlowReverse, false, time.Millisecond)

	body := scrape(t)
	require.Contains(t, body, `ippt_chat_turns_total{route="observe_turn_test"} 2`)
	require.Contains(t, body, `ippt_chat_turn_duration_seconds_count{route="observe_turn_test"} 2`)
	require.Contains(t, body, `ippt_active_flow_turns_total{flow="reverse_check"}`)
	require.NotContains(t, body, `flow=""`)
}

func TestRecorder_ObserveError(t *testing.T) {
	rec := NewRecorder()
	rec.ObserveError("observe_error_test")
	rec.ObserveTurn("farewell_test", domain.FlowIdle, true, time.Millisecond)

	body := scrape(t)
	require.Contains(t, body, `ippt_chat_errors_total{reason="observe_error_test"} 1`)
	require.Contains(t, body, "ippt_chat_ends_total")
}
