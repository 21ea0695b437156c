package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Strength(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeRequest reads an optional JSON body. An empty body means all defaults.
func decodeRequest(w http.ResponseWriter, r *http.Request) (model.GenerateRequest, bool) {
	var req model.GenerateRequest
	if r.Body == nil {
		return req, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, true
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}
	return req, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	slog.Error("password generation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	var cfgErr *crypto.ConfigurationError
	return errors.As(err, &cfgErr)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
