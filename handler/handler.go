package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"ippt-coach/internal/usecase"
)

const correlationHeader = "X-Correlation-Id"

type chatUseCase interface {
	Post(ctx context.Context, in usecase.PostInput) (usecase.PostOutput, error)
	Reset(ctx context.Context, sessionID string) error
}

type Handler struct {
	uc chatUseCase
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

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandler(uc chatUseCase) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: use case must not be nil")
	}
	return &Handler{uc: uc}, nil
}

// Handle serves POST /chat and DELETE /chat/{sessionId} behind API Gateway.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	corrID := headerValue(req.Headers, correlationHeader)
	if corrID == "" {
		corrID = uuid.NewString()
	}
	log := slog.With("correlation_id", corrID, "method", req.HTTPMethod, "path", req.Path)

	if req.HTTPMethod == http.MethodDelete {
		sessionID := req.PathParameters["sessionId"]
		if err := h.uc.Reset(ctx, sessionID); err != nil {
			return h.fail(log, corrID, err), nil
		}
		return respond(http.StatusNoContent, corrID, nil), nil
	}

	var body chatRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		log.Warn("invalid request body", "err", err)
		return respond(http.StatusBadRequest, corrID, errorResponse{Error: string(usecase.ErrorInvalidInput)}), nil
	}

	out, err := h.uc.Post(ctx, usecase.PostInput{Message: body.Message, SessionID: body.SessionID})
	if err != nil {
		return h.fail(log, corrID, err), nil
	}
	return respond(http.StatusOK, corrID, chatResponse{
		Response:  out.Response,
		EndChat:   out.EndChat,
		SessionID: out.SessionID,
	}), nil
}

func (h *Handler) fail(log *slog.Logger, corrID string, err error) events.APIGatewayProxyResponse {
	status, code := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	} else {
		log.Warn("request rejected", "err", err)
	}
	return respond(status, corrID, errorResponse{Error: code})
}

// StatusFor maps a use case error to an HTTP status and public error code.
func StatusFor(err error) (int, string) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return http.StatusInternalServerError, string(usecase.ErrorInternal)
	}
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest, string(ucErr.Code)
	default:
		return http.StatusInternalServerError, string(usecase.ErrorInternal)
	}
}

func respond(status int, corrID string, body any) events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: corrID,
		},
	}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			resp.StatusCode = http.StatusInternalServerError
			raw = []byte(`{"error":"INTERNAL_ERROR"}`)
		}
		resp.Body = string(raw)
	}
	return resp
}

// headerValue looks a header up case-insensitively; API Gateway preserves
// the client's casing.
func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
