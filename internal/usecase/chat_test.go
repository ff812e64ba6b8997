package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ippt-coach/internal/answers"
	"ippt-coach/internal/dialog"
	"ippt-coach/internal/domain"
	"ippt-coach/internal/scoring"
)

type mockStore struct {
	sessions  map[string]domain.Session
	loadErr   error
	saveErr   error
	deleteErr error
	loads     int
	deleted   []string
}

func newMockStore() *mockStore {
	return &mockStore{sessions: make(map[string]domain.Session)}
}

func (m *mockStore) Load(_ context.Context, id string) (domain.Session, error) {
	m.loads++
	if m.loadErr != nil {
		return domain.Session{}, m.loadErr
	}
	return m.sessions[id], nil
}

func (m *mockStore) Save(_ context.Context, id string, s domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[id] = s
	return nil
}

func (m *mockStore) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	delete(m.sessions, id)
	return nil
}

type observedTurn struct {
	route   string
	flow    domain.FlowKind
	endChat bool
}

type mockRecorder struct {
	turns  []observedTurn
	errors []string
}

func (r *mockRecorder) ObserveTurn(route string, flow domain.FlowKind, endChat bool, _ time.Duration) {
	r.turns = append(r.turns, observedTurn{route: route, flow: flow, endChat: endChat})
}

func (r *mockRecorder) ObserveError(reason string) {
	r.errors = append(r.errors, reason)
}

func newTestService(t *testing.T, store SessionStore, rec Recorder) *ChatService {
	t.Helper()
	m, err := dialog.New(answers.Default(), scoring.NewEngine(nil))
	require.NoError(t, err)
	svc, err := NewChatService(store, m, rec, 300)
	require.NoError(t, err)
	return svc
}

func expectChatError(t *testing.T, err error, code ErrorCode, reason string) {
	t.Helper()
	var usecaseErr *Error
	require.ErrorAs(t, err, &usecaseErr)
	require.Equal(t, code, usecaseErr.Code)
	require.Equal(t, reason, usecaseErr.Reason)
}

func TestNewChatService_ValidatesDependencies(t *testing.T) {
	m, err := dialog.New(answers.Default(), nil)
	require.NoError(t, err)

	_, err = NewChatService(nil, m, nil, 0)
	require.Error(t, err)

	_, err = NewChatService(newMockStore(), nil, nil, 0)
	require.Error(t, err)

	svc, err := NewChatService(newMockStore(), m, nil, 0)
	require.NoError(t, err)
	require.Equal(t, defaultMaxMessage, svc.maxMessageLen)
}

func TestPost_EmptyMessageSkipsStore(t *testing.T) {
	store := newMockStore()
	svc := newTestService(t, store, nil)

	out, err := svc.Post(context.Background(), PostInput{Message: "  \t ", SessionID: "s-1"})
	require.NoError(t, err)
	require.Equal(t, emptyMessageReply, out.Response)
	require.False(t, out.EndChat)
	require.Equal(t, "s-1", out.SessionID)
	require.Zero(t, store.loads)
}

func TestPost_MessageTooLong(t *testing.T) {
	rec := &mockRecorder{}
	svc := newTestService(t, newMockStore(), rec)

	_, err := svc.Post(context.Background(), PostInput{Message: strings.Repeat("a", 301)})
	expectChatError(t, err, ErrorInvalidInput, "message_too_long")
	require.Equal(t, []string{"message_too_long"}, rec.errors)
}

func TestPost_GeneratesSessionID(t *testing.T) {
	orig := newUUID
	newUUID = func() string { return "generated-id" }
	t.Cleanup(func() { newUUID = orig })

	store := newMockStore()
	svc := newTestService(t, store, nil)

	out, err := svc.Post(context.Background(), PostInput{Message: "check my ippt"})
	require.NoError(t, err)
	require.Equal(t, "generated-id", out.SessionID)
	require.Equal(t, domain.FlowForward, store.sessions["generated-id"].Flow.Kind)
}

func TestPost_ForwardCheckAcrossRequests(t *testing.T) {
	store := newMockStore()
	rec := &mockRecorder{}
	svc := newTestService(t, store, rec)
	ctx := context.Background()

	var out PostOutput
	for _, msg := range []string{"check my ippt", "male", "25", "20", "20"} {
		var err error
		out, err = svc.Post(ctx, PostInput{Message: msg, SessionID: "s-1"})
		require.NoError(t, err)
	}
	require.Contains(t, out.Response, "2.4km run time")
	require.Equal(t, 20, store.sessions["s-1"].Flow.Forward.SitUps)

	out, err := svc.Post(ctx, PostInput{Message: "11:30", SessionID: "s-1"})
	require.NoError(t, err)
	require.Contains(t, out.Response, "Total: 51")
	require.NotContains(t, store.sessions, "s-1")
	require.Equal(t, []string{"s-1"}, store.deleted)

	last := rec.turns[len(rec.turns)-1]
	require.Equal(t, dialog.RouteForward, last.route)
	require.Equal(t, domain.FlowIdle, last.flow)
}

func TestPost_FarewellEndsChat(t *testing.T) {
	store := newMockStore()
	store.sessions["s-1"] = domain.Session{Topic: domain.TopicState{Field: domain.FieldRunning}}
	svc := newTestService(t, store, nil)

	out, err := svc.Post(context.Background(), PostInput{Message: "bye", SessionID: "s-1"})
	require.NoError(t, err)
	require.True(t, out.EndChat)
	require.NotContains(t, store.sessions, "s-1")
}

func TestPost_StoreErrors(t *testing.T) {
	store := newMockStore()
	store.loadErr = errors.New("dynamo down")
	rec := &mockRecorder{}
	svc := newTestService(t, store, rec)

	_, err := svc.Post(context.Background(), PostInput{Message: "hello", SessionID: "s-1"})
	expectChatError(t, err, ErrorInternal, "session_load_error")
	require.ErrorContains(t, err, "dynamo down")

	store.loadErr = nil
	store.saveErr = errors.New("throttled")
	_, err = svc.Post(context.Background(), PostInput{Message: "check my ippt", SessionID: "s-1"})
	expectChatError(t, err, ErrorInternal, "session_save_error")

	store.deleteErr = errors.New("delete failed")
	_, err = svc.Post(context.Background(), PostInput{Message: "hello", SessionID: "s-1"})
	expectChatError(t, err, ErrorInternal, "session_save_error")

	require.Equal(t, []string{"session_load_error", "session_save_error", "session_save_error"}, rec.errors)
}

func TestReset(t *testing.T) {
	store := newMockStore()
	store.sessions["s-1"] = domain.Session{Topic: domain.TopicState{Field: domain.FieldHip}}
	svc := newTestService(t, store, nil)

	require.NoError(t, svc.Reset(context.Background(), "s-1"))
	require.NotContains(t, store.sessions, "s-1")

	expectChatError(t, svc.Reset(context.Background(), " "), ErrorInvalidInput, "missing_session_id")

	store.deleteErr = errors.New("boom")
	expectChatError(t, svc.Reset(context.Background(), "s-1"), ErrorInternal, "session_delete_error")
}

func TestError_Format(t *testing.T) {
	err := newError(ErrorInternal, "session_load_error", errors.New("boom"))
	require.Equal(t, "usecase: INTERNAL_ERROR (session_load_error): boom", err.Error())
	require.Equal(t, "usecase: INVALID_INPUT (x)", newError(ErrorInvalidInput, "x", nil).Error())

	var nilErr *Error
	require.Empty(t, nilErr.Error())
	require.NoError(t, nilErr.Unwrap())
}
