package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"ippt-coach/internal/usecase"
)

type stubUseCase struct {
	out      usecase.PostOutput
	err      error
	in       usecase.PostInput
	resetErr error
	resetID  string
}

func (s *stubUseCase) Post(_ context.Context, in usecase.PostInput) (usecase.PostOutput, error) {
	s.in = in
	return s.out, s.err
}

func (s *stubUseCase) Reset(_ context.Context, sessionID string) error {
	s.resetID = sessionID
	return s.resetErr
}

func makeEvent(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/chat",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestNewHandler_ValidatesDependency(t *testing.T) {
	_, err := NewHandler(nil)
	require.Error(t, err)
}

func TestHandle_HappyPath(t *testing.T) {
	uc := &stubUseCase{out: usecase.PostOutput{Response: "Enter your age (e.g., 25).", SessionID: "sess-1"}}
	h, err := NewHandler(uc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`{"message":"male","sessionId":"sess-1"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.PostInput{Message: "male", SessionID: "sess-1"}, uc.in)

	out := parseBody[chatResponse](t, resp.Body)
	require.Equal(t, "Enter your age (e.g., 25).", out.Response)
	require.False(t, out.EndChat)
	require.Equal(t, "sess-1", out.SessionID)
	require.NotEmpty(t, resp.Headers["X-Correlation-Id"])
}

func TestHandle_EndChat(t *testing.T) {
	uc := &stubUseCase{out: usecase.PostOutput{Response: "bye", EndChat: true, SessionID: "sess-1"}}
	h, err := NewHandler(uc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`{"message":"bye","sessionId":"sess-1"}`))
	require.NoError(t, err)
	require.True(t, parseBody[chatResponse](t, resp.Body).EndChat)
	require.Contains(t, resp.Body, `"endChat":true`)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}
	h, err := NewHandler(uc)
	require.NoError(t, err)

	resp, err := h.Handle(context.Background(), makeEvent(`not-json`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.Equal(t, string(usecase.ErrorInvalidInput), out.Error)
}

func TestHandle_MapsUseCaseErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "invalid input", err: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "message_too_long"}, status: http.StatusBadRequest, code: string(usecase.ErrorInvalidInput)},
		{name: "internal", err: &usecase.Error{Code: usecase.ErrorInternal, Reason: "session_save_error"}, status: http.StatusInternalServerError, code: string(usecase.ErrorInternal)},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: string(usecase.ErrorInternal)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := &stubUseCase{err: tc.err}
			h, err := NewHandler(uc)
			require.NoError(t, err)

			resp, err := h.Handle(context.Background(), makeEvent(`{"message":"hello"}`))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			out := parseBody[errorResponse](t, resp.Body)
			require.Equal(t, tc.code, out.Error)
		})
	}
}

func TestHandle_Delete(t *testing.T) {
	uc := &stubUseCase{}
	h, err := NewHandler(uc)
	require.NoError(t, err)

	event := events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodDelete,
		Path:           "/chat/sess-9",
		PathParameters: map[string]string{"sessionId": "sess-9"},
	}
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Equal(t, "sess-9", uc.resetID)
	require.Empty(t, resp.Body)

	uc.resetErr = &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "missing_session_id"}
	resp, err = h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandle_UsesProvidedCorrelationID_CaseInsensitive(t *testing.T) {
	uc := &stubUseCase{out: usecase.PostOutput{Response: "ok", SessionID: "sess-1"}}
	h, err := NewHandler(uc)
	require.NoError(t, err)

	event := makeEvent(`{"message":"hello"}`)
	event.Headers["x-correlation-id"] = "corr-123"
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}
