package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/iwvelando/perspective-retraites/internal/calculator"
	"github.com/iwvelando/perspective-retraites/internal/examples"
	"github.com/iwvelando/perspective-retraites/internal/session"
	"github.com/iwvelando/perspective-retraites/internal/share"
	"github.com/iwvelando/perspective-retraites/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	calc        *calculator.Calculator
	sessions    *session.Registry
	shareURL    string
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web page and the
// calculator API.
func NewHandler(logger *zap.Logger, calc *calculator.Calculator, sessions *session.Registry, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = NewConfig(nil)
	}
	if sessions == nil {
		sessions = session.NewRegistry(cfg.MaxSessions)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		calc:        calc,
		sessions:    sessions,
		shareURL:    cfg.ShareURL,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculations
	mux.HandleFunc("/api/temporal", h.handleTemporal)
	mux.HandleFunc("/api/comparison", h.handleComparison)

	// Example catalog
	mux.HandleFunc("/api/examples", h.handleExamples)
	mux.HandleFunc("/api/examples/random", h.handleRandomExample)
	mux.HandleFunc("/api/examples/{id}", h.handleExample)

	// Share text for the last result of a session
	mux.HandleFunc("/api/share", h.handleShare)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type temporalRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	calculator.TemporalRequest
}

type comparisonRequest struct {
	SessionID string `json:"sessionId,omitempty"`
	calculator.ComparisonRequest
}

type shareRequest struct {
	SessionID string `json:"sessionId"`
	Mode      string `json:"mode,omitempty"`
}

type sessionInfo struct {
	SessionID         string `json:"sessionId"`
	Mode              string `json:"mode"`
	CalculationCount  int64  `json:"calculationCount"`
	TotalCalculations int64  `json:"totalCalculations"`
	InstallPrompt     bool   `json:"installPrompt"`
}

type temporalResponse struct {
	sessionInfo
	calculator.TemporalOutcome
}

type comparisonResponse struct {
	sessionInfo
	calculator.ComparisonOutcome
}

type shareResponse struct {
	SessionID string `json:"sessionId"`
	Mode      string `json:"mode"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *handler) handleTemporal(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTemporal"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req temporalRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	var outcome calculator.TemporalOutcome
	s, err := h.sessions.Update(req.SessionID, func(s *session.Session) error {
		var calcErr error
		outcome, calcErr = h.calc.Temporal(s, req.TemporalRequest)
		return calcErr
	})
	if err != nil {
		h.respondCalculationError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, temporalResponse{
		sessionInfo:     h.describe(s),
		TemporalOutcome: outcome,
	})
}

func (h *handler) handleComparison(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleComparison"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req comparisonRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	var outcome calculator.ComparisonOutcome
	s, err := h.sessions.Update(req.SessionID, func(s *session.Session) error {
		var calcErr error
		outcome, calcErr = h.calc.Compare(s, req.ComparisonRequest)
		return calcErr
	})
	if err != nil {
		h.respondCalculationError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, comparisonResponse{
		sessionInfo:       h.describe(s),
		ComparisonOutcome: outcome,
	})
}

func (h *handler) handleExamples(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]examples.Example{
		"examples": h.calc.Examples().All(),
	})
}

func (h *handler) handleRandomExample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.calc.Examples().Pick())
}

func (h *handler) handleExample(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")
	ex, ok := h.calc.Examples().Lookup(id)
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("unknown example %q", id),
			Field: validation.FieldExample,
		}, "server.handleExample")
		return
	}

	h.writeJSON(w, http.StatusOK, ex)
}

func (h *handler) handleShare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleShare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req shareRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}

	s, ok := h.sessions.Get(req.SessionID)
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("unknown session %q", req.SessionID),
		}, op)
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = s.Mode
	}
	if err := validation.ValidateMode(mode); err != nil {
		h.respondCalculationError(w, err, op)
		return
	}

	message, err := share.Message(mode, s, h.shareURL)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, share.ErrNoResult) {
			status = http.StatusConflict
		}
		h.respondErrorWithOp(w, status, errorResponse{Error: err.Error()}, op)
		return
	}

	h.writeJSON(w, http.StatusOK, shareResponse{
		SessionID: s.ID,
		Mode:      mode,
		Message:   message,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) describe(s session.Session) sessionInfo {
	return sessionInfo{
		SessionID:         s.ID,
		Mode:              s.Mode,
		CalculationCount:  s.CalculationCount,
		TotalCalculations: h.calc.Counter().Value(),
		InstallPrompt:     s.ShouldPromptInstall(),
	}
}

// decodeBody reads a size-limited JSON body into dst. An empty body leaves
// dst untouched.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error: fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize),
			}, op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, errorResponse{
			Error: fmt.Sprintf("failed to decode request: %v", err),
		}, op)
		return false
	}
	return true
}

func (h *handler) respondCalculationError(w http.ResponseWriter, err error, op string) {
	if fieldErr, ok := validation.AsFieldError(err); ok {
		h.respondErrorWithOp(w, http.StatusBadRequest, errorResponse{
			Error:   fieldErr.Error(),
			Field:   fieldErr.Field,
			Message: fieldErr.Message(),
		}, op)
		return
	}
	h.respondErrorWithOp(w, http.StatusInternalServerError, errorResponse{Error: err.Error()}, op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, resp errorResponse, op string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", resp.Error),
		)
	} else {
		h.logger.Debug("request rejected",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", resp.Error),
			zap.String("field", resp.Field),
		)
	}

	h.writeJSON(w, status, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
