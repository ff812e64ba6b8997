// Package server is the HTTP transport for running the chat service outside Lambda.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"ippt-coach/handler"
	"ippt-coach/internal/usecase"
)

// maxBodyBytes bounds request bodies well above the longest accepted message.
const maxBodyBytes = 16 << 10

type ChatService interface {
	Post(ctx context.Context, in usecase.PostInput) (usecase.PostOutput, error)
	Reset(ctx context.Context, sessionID string) error
}

type Server struct {
	chat    ChatService
	metrics http.Handler
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	Response  string `json:"response"`
	EndChat   bool   `json:"endChat"`
	SessionID string `json:"sessionId"`
}

// New creates a Server. metrics may be nil to leave /metrics unmounted.
func New(chat ChatService, metrics http.Handler) (*Server, error) {
	if chat == nil {
		return nil, errors.New("server: chat service must not be nil")
	}
	return &Server{chat: chat, metrics: metrics}, nil
}

// Router builds the chi router with global middleware and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/chat", func(r chi.Router) {
		r.Post("/", s.PostChat)
		r.Delete("/{sessionID}", s.DeleteChat)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// PostChat handles one chat message.
func (s *Server) PostChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, string(usecase.ErrorInvalidInput))
		return
	}

	out, err := s.chat.Post(r.Context(), usecase.PostInput{Message: req.Message, SessionID: req.SessionID})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, chatResponse{Response: out.Response, EndChat: out.EndChat, SessionID: out.SessionID})
}

// DeleteChat clears a session, as a page reload does.
func (s *Server) DeleteChat(w http.ResponseWriter, r *http.Request) {
	if err := s.chat.Reset(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := handler.StatusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "request_id", chiMiddleware.GetReqID(r.Context()), "path", r.URL.Path, "error", err)
	}
	Error(w, status, code)
}

// JSON writes v as a JSON response.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// Error writes an error body in the same shape as the Lambda transport.
func Error(w http.ResponseWriter, status int, code string) {
	JSON(w, status, map[string]string{"error": code})
}
