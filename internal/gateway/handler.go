// ============================================================================
// RAQL - Relational Algebra Query Language tools
// ============================================================================
//
// Package:     gateway
// Description: HTTP handlers of the recognition gateway
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	"github.com/msto63/raql/foundation/raql"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/pkg/core/health"
	"github.com/msto63/raql/pkg/core/logging"
	"github.com/msto63/raql/pkg/core/version"
)

const (
	// maxRequestBody limits the size of a recognize request and of a single
	// WebSocket message
	maxRequestBody = 1 << 20

	healthTimeout = 2 * time.Second
)

// RecognizeRequest is the body of POST /v1/recognize and the payload of a
// websocket "recognize" message. Unset fields keep the gateway defaults.
type RecognizeRequest struct {
	Program         string `json:"program"`
	CaseInsensitive *bool  `json:"case_insensitive,omitempty"`
	Verbosity       *int   `json:"verbosity,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  health.Status        `json:"status"`
	Version string               `json:"version"`
	Grammar string               `json:"grammar"`
	Uptime  string               `json:"uptime"`
	Checks  []health.CheckResult `json:"checks"`
}

// Handler serves the REST endpoints of the gateway
type Handler struct {
	base   raql.Options
	logger *logging.Logger
	health *health.Registry
}

// NewHandler creates the REST handler. base supplies the recognizer
// options every request starts from.
func NewHandler(base raql.Options, logger *logging.Logger, registry *health.Registry) *Handler {
	return &Handler{
		base:   base,
		logger: logger,
		health: registry,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.URL.Path {
	case "/healthz":
		h.handleHealth(w, r)
	case "/v1/recognize":
		h.handleRecognize(w, r)
	default:
		h.writeError(w, http.StatusNotFound, "not_found", "Endpoint not found", "")
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use GET", "")
		return
	}
	report := h.health.CheckWithTimeout(healthTimeout)
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, HealthResponse{
		Status:  report.Status,
		Version: report.Version,
		Grammar: version.Grammar,
		Uptime:  report.Uptime.Round(time.Second).String(),
		Checks:  report.Checks,
	})
}

func (h *Handler) handleRecognize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Use POST", "")
		return
	}

	var req RecognizeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON", err.Error())
		return
	}

	report, err := recognize(r.Context(), h.base, req)
	if report == nil {
		h.writeError(w, statusFor(err), string(mdwerror.GetCode(err)), "Recognition failed", err.Error())
		return
	}

	h.logger.Debug("Program recognized",
		"runID", report.RunID,
		"statements", len(report.Results),
		"failed", report.Failed,
	)
	h.writeJSON(w, http.StatusOK, report)
}

// recognize runs one request on a fresh engine. A program without any
// terminator still yields a report; only invalid options return none.
func recognize(ctx context.Context, base raql.Options, req RecognizeRequest) (*raql.Report, error) {
	engine, err := engineFor(base, req)
	if err != nil {
		return nil, err
	}
	return engine.RecognizeProgram(ctx, req.Program)
}

// engineFor applies the request overrides to the base options
func engineFor(base raql.Options, req RecognizeRequest) (*raql.Engine, error) {
	opts := base
	opts.Pause = nil
	if req.CaseInsensitive != nil {
		opts.CaseInsensitive = *req.CaseInsensitive
	}
	if req.Verbosity != nil {
		v := parser.Verbosity(*req.Verbosity)
		if v != v.Clamp() {
			return nil, mdwerror.Newf("verbosity must be between %d and %d", parser.VerbositySilent, parser.VerbosityTrace).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("gateway.engineFor")
		}
		opts.Verbosity = v
	}
	return raql.New(opts)
}

func statusFor(err error) int {
	switch mdwerror.GetCode(err) {
	case mdwerror.CodeInvalidInput:
		return http.StatusBadRequest
	case mdwerror.CodeCancelled:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message, details string) {
	h.writeJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}
