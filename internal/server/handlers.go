package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/paritylab/go-parity-classifier/internal/logger"
	"github.com/paritylab/go-parity-classifier/internal/parity"
)

const version = "1.0.0"

var errMissingNumber = errors.New("missing required query parameter: number")

// Response represents the API response
type Response struct {
	Number    int64     `json:"number"`
	Label     string    `json:"label"`
	Reason    string    `json:"reason,omitempty"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// ErrorResponse represents a request rejected before classification
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier *parity.Classifier
	logger     *logger.Logger
	quiet      bool // suppress console logging (useful for tests)
}

// NewHandler creates a new handler with dependencies
func NewHandler(cl *parity.Classifier, l *logger.Logger) *Handler {
	return &Handler{
		classifier: cl,
		logger:     l,
		quiet:      false,
	}
}

// SetQuiet enables or disables console logging
func (h *Handler) SetQuiet(quiet bool) {
	h.quiet = quiet
}

// parseNumber extracts the number query parameter. Rejecting non-integer
// input here keeps the classifier itself total over its domain.
func parseNumber(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("number")
	if raw == "" {
		return 0, errMissingNumber
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("number must be a base-10 integer, got %q", raw)
	}
	return n, nil
}

// writeError sends a JSON error response
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// HandleClassify handles the main classification endpoint
func (h *Handler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	n, err := parseNumber(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Classify the number
	result := h.classifier.Classify(n)

	// Calculate response time
	responseTime := time.Since(startTime).Milliseconds()

	// Log the result
	if h.logger != nil {
		if err := h.logger.LogResult(result, r.RemoteAddr, responseTime); err != nil {
			log.Printf("Error logging result: %v", err)
		}
	}

	// Generate message based on classification
	message := fmt.Sprintf("%d is an even number", n)
	if result.Label == parity.LabelOdd {
		message = fmt.Sprintf("%d is an odd number", n)
	}

	// Log to console (unless quiet mode)
	if !h.quiet {
		log.Printf("[%s] %s %s - n=%d - %s - %dms",
			r.RemoteAddr,
			r.Method,
			r.URL.Path,
			n,
			result.Label,
			responseTime,
		)
	}

	// Send response
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Response{
		Number:    result.Number,
		Label:     result.Label,
		Reason:    result.Reason,
		Message:   message,
		RequestID: result.RequestID,
		Timestamp: result.Timestamp,
		Version:   version,
	}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// HandleHealth handles the health check endpoint
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Version: version,
	}); err != nil {
		log.Printf("Error encoding health response: %v", err)
	}
}

// HandleDebug returns the full classification result for debugging (optional endpoint)
func (h *Handler) HandleDebug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	n, err := parseNumber(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := h.classifier.Classify(n)

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Printf("Error encoding debug response: %v", err)
	}
}
