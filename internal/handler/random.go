package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/randomapi/randomapi-go/internal/model"
	"github.com/randomapi/randomapi-go/internal/service"
)

// DefaultMaxBodyBytes caps the size of a custom request body.
const DefaultMaxBodyBytes = 1 << 20 // 1MB

// RandomHandler handles HTTP requests for random value generation.
type RandomHandler struct {
	service      *service.RandomService
	maxBodyBytes int64
}

// NewRandomHandler creates a new RandomHandler. A non-positive maxBodyBytes
// falls back to DefaultMaxBodyBytes.
func NewRandomHandler(svc *service.RandomService, maxBodyBytes int64) *RandomHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &RandomHandler{service: svc, maxBodyBytes: maxBodyBytes}
}

// HandleNumber handles GET /random/number requests.
func (h *RandomHandler) HandleNumber(w http.ResponseWriter, r *http.Request) {
	minVal, err := queryInt64(r, "min")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("min must be an integer"))
		return
	}
	maxVal, err := queryInt64(r, "max")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("max must be an integer"))
		return
	}

	v, err := h.service.GenerateInteger(model.IntegerRequest{Min: minVal, Max: maxVal})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// HandleDecimal handles GET /random/decimal requests.
func (h *RandomHandler) HandleDecimal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.GenerateDecimal())
}

// HandleString handles GET /random/string requests.
func (h *RandomHandler) HandleString(w http.ResponseWriter, r *http.Request) {
	var req model.StringRequest
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("length must be an integer"))
			return
		}
		req.Length = &n
	}

	v, err := h.service.GenerateString(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}

// HandleCustom handles POST /random/custom requests.
func (h *RandomHandler) HandleCustom(w http.ResponseWriter, r *http.Request) {
	var req model.CustomRequest
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return
		}
	}

	resp, err := h.service.GenerateByKind(req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// queryInt64 parses an optional integer query parameter. A missing or empty
// parameter yields nil.
func queryInt64(r *http.Request, key string) (*int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse(verr.Message))
		return
	}
	slog.Error("generation failed", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) model.ErrorResponse {
	return model.ErrorResponse{Error: msg}
}
