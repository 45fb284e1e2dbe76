// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     gateway
// Description: WebSocket endpoint for interactive recognition sessions
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/pkg/core/logging"
)

// sessionTimeout closes idle sessions
const sessionTimeout = 120 * time.Second

// WebSocket upgrader with permissive settings for local tooling
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage is a client message
type WSMessage struct {
	Type    string          `json:"type"`    // "recognize", "ping"
	Payload json.RawMessage `json:"payload"` // RecognizeRequest for "recognize"
}

// WSResponse is a server message
type WSResponse struct {
	Type    string      `json:"type"`              // "welcome", "report", "error", "pong"
	Session string      `json:"session,omitempty"` // Session ID
	Payload interface{} `json:"payload,omitempty"`
}

// WSErrorPayload is the payload of an "error" response
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketHandler serves recognition sessions. Messages of one session are
// handled in order.
type WebSocketHandler struct {
	base   raql.Options
	logger *logging.Logger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(base raql.Options, logger *logging.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		base:   base,
		logger: logger,
	}
}

// ServeHTTP handles the WebSocket upgrade and the session
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.handleConnection(r.Context(), conn)
}

// handleConnection handles a single session
func (h *WebSocketHandler) handleConnection(parent context.Context, conn *websocket.Conn) {
	defer conn.Close()

	session := uuid.NewString()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	h.logger.Info("WebSocket session established",
		"session", session,
		"remote", conn.RemoteAddr().String(),
	)

	conn.SetReadLimit(maxRequestBody)
	conn.SetReadDeadline(time.Now().Add(sessionTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(sessionTimeout))
		return nil
	})

	h.sendResponse(conn, WSResponse{Type: "welcome", Session: session})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			switch {
			case errors.Is(err, websocket.ErrReadLimit):
				h.logger.Warn("WebSocket message too large", "session", session, "limit", maxRequestBody)
			case websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure):
				h.logger.Error("WebSocket read error", "session", session, "error", err)
			default:
				h.logger.Info("WebSocket session closed", "session", session)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(sessionTimeout))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong", Session: session})

		case "recognize":
			var req RecognizeRequest
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				h.sendError(conn, session, "invalid_payload", "Invalid recognize payload")
				continue
			}
			h.handleRecognize(ctx, conn, session, req)

		default:
			h.sendError(conn, session, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *WebSocketHandler) handleRecognize(ctx context.Context, conn *websocket.Conn, session string, req RecognizeRequest) {
	report, err := recognize(ctx, h.base, req)
	if report == nil {
		h.sendError(conn, session, string(mdwerror.GetCode(err)), err.Error())
		return
	}

	h.logger.Debug("Program recognized",
		"session", session,
		"runID", report.RunID,
		"failed", report.Failed,
	)
	h.sendResponse(conn, WSResponse{Type: "report", Session: session, Payload: report})
}

// sendResponse sends a response message via WebSocket
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Error("WebSocket send error", "session", resp.Session, "error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WebSocketHandler) sendError(conn *websocket.Conn, session, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type:    "error",
		Session: session,
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
