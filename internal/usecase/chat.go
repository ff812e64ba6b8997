package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"ippt-coach/internal/domain"
)

const (
	defaultMaxMessage = 300
	emptyMessageReply = "Sorry, I couldn't understand your question."
)

type SessionStore interface {
	Load(ctx context.Context, sessionID string) (domain.Session, error)
	Save(ctx context.Context, sessionID string, s domain.Session) error
	Delete(ctx context.Context, sessionID string) error
}

type Dialog interface {
	Step(s domain.Session, message string) (domain.Session, domain.Reply)
}

// Recorder receives one observation per handled turn and per failure.
type Recorder interface {
	ObserveTurn(route string, flow domain.FlowKind, endChat bool, elapsed time.Duration)
	ObserveError(reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTurn(string, domain.FlowKind, bool, time.Duration) {}
func (nopRecorder) ObserveError(string)                                     {}

type ChatService struct {
	store         SessionStore
	dialog        Dialog
	recorder      Recorder
	maxMessageLen int
}

type PostInput struct {
	Message   string
	SessionID string
}

type PostOutput struct {
	Response  string
	EndChat   bool
	SessionID string
}

// NewChatService wires the chat use case. A nil recorder disables metrics and
// a non-positive maxMessageLen uses the default of 300 characters.
func NewChatService(store SessionStore, dialog Dialog, rec Recorder, maxMessageLen int) (*ChatService, error) {
	if store == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if dialog == nil {
		return nil, errors.New("usecase: dialog must not be nil")
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	if maxMessageLen <= 0 {
		maxMessageLen = defaultMaxMessage
	}
	return &ChatService{store: store, dialog: dialog, recorder: rec, maxMessageLen: maxMessageLen}, nil
}

// Post handles one user message: load the session, advance the dialog, and
// persist the result. Idle sessions are deleted instead of stored.
func (s *ChatService) Post(ctx context.Context, in PostInput) (PostOutput, error) {
	start := time.Now()
	sessionID := strings.TrimSpace(in.SessionID)

	message := strings.TrimSpace(in.Message)
	if message == "" {
		return PostOutput{Response: emptyMessageReply, SessionID: sessionID}, nil
	}
	if utf8.RuneCountInString(message) > s.maxMessageLen {
		s.recorder.ObserveError("message_too_long")
		return PostOutput{}, newError(ErrorInvalidInput, "message_too_long", nil)
	}
	if sessionID == "" {
		sessionID = newUUID()
	}

	state, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.recorder.ObserveError("session_load_error")
		return PostOutput{}, newError(ErrorInternal, "session_load_error", err)
	}

	next, reply := s.dialog.Step(state, message)

	if next.IsZero() {
		err = s.store.Delete(ctx, sessionID)
	} else {
		err = s.store.Save(ctx, sessionID, next)
	}
	if err != nil {
		s.recorder.ObserveError("session_save_error")
		return PostOutput{}, newError(ErrorInternal, "session_save_error", err)
	}

	slog.Info("chat turn",
		"session_id", sessionID,
		"route", reply.Route,
		"flow", string(next.Flow.Kind),
		"turns", next.Turns,
		"end_chat", reply.EndChat,
	)
	s.recorder.ObserveTurn(reply.Route, next.Flow.Kind, reply.EndChat, time.Since(start))

	return PostOutput{
		Response:  reply.Text,
		EndChat:   reply.EndChat,
		SessionID: sessionID,
	}, nil
}

// Reset drops all state for a session.
func (s *ChatService) Reset(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return newError(ErrorInvalidInput, "missing_session_id", nil)
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.recorder.ObserveError("session_delete_error")
		return newError(ErrorInternal, "session_delete_error", err)
	}
	return nil
}

var newUUID = func() string {
	return uuid.NewString()
}
