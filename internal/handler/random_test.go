package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomapi/randomapi-go/internal/random"
	"github.com/randomapi/randomapi-go/internal/service"
)

func newTestRouter(maxBodyBytes int64) http.Handler {
	h := NewRandomHandler(service.NewRandomService(random.NewSource(), nil), maxBodyBytes)

	r := chi.NewRouter()
	r.Get("/random/number", h.HandleNumber)
	r.Get("/random/decimal", h.HandleDecimal)
	r.Get("/random/string", h.HandleString)
	r.Post("/random/custom", h.HandleCustom)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["error"]
}

func TestHandleNumber(t *testing.T) {
	h := newTestRouter(0)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantErr    string
		lo, hi     int64
	}{
		{name: "bounded", query: "?min=1&max=6", wantStatus: http.StatusOK, lo: 1, hi: 6},
		{name: "equal bounds", query: "?min=-7&max=-7", wantStatus: http.StatusOK, lo: -7, hi: -7},
		{name: "unbounded", query: "", wantStatus: http.StatusOK, lo: 0, hi: 1<<31 - 2},
		{name: "min only", query: "?min=500", wantStatus: http.StatusOK, lo: 0, hi: 1<<31 - 2},
		{name: "min exceeds max", query: "?min=10&max=1", wantStatus: http.StatusBadRequest, wantErr: "min cannot exceed max"},
		{name: "bad min", query: "?min=abc&max=1", wantStatus: http.StatusBadRequest, wantErr: "min must be an integer"},
		{name: "bad max", query: "?min=1&max=1.5", wantStatus: http.StatusBadRequest, wantErr: "max must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/random/number"+tt.query, "")
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec))
				return
			}

			var v int64
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
			assert.GreaterOrEqual(t, v, tt.lo)
			assert.LessOrEqual(t, v, tt.hi)
		})
	}
}

func TestHandleDecimal(t *testing.T) {
	h := newTestRouter(0)
	for i := 0; i < 100; i++ {
		rec := do(t, h, http.MethodGet, "/random/decimal", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var v float64
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
		if v < 0 || v >= 1 {
			t.Fatalf("decimal = %v, want [0, 1)", v)
		}
	}
}

func TestHandleString(t *testing.T) {
	h := newTestRouter(0)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantLen    int
		wantErr    string
	}{
		{name: "default length", query: "", wantStatus: http.StatusOK, wantLen: 8},
		{name: "explicit length", query: "?length=32", wantStatus: http.StatusOK, wantLen: 32},
		{name: "max length", query: "?length=1024", wantStatus: http.StatusOK, wantLen: 1024},
		{name: "zero length", query: "?length=0", wantStatus: http.StatusBadRequest, wantErr: "length must be between 1 and 1024"},
		{name: "negative length", query: "?length=-4", wantStatus: http.StatusBadRequest, wantErr: "length must be between 1 and 1024"},
		{name: "too long", query: "?length=1025", wantStatus: http.StatusBadRequest, wantErr: "length must be between 1 and 1024"},
		{name: "not a number", query: "?length=ten", wantStatus: http.StatusBadRequest, wantErr: "length must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/random/string"+tt.query, "")
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec))
				return
			}

			var s string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&s))
			assert.Len(t, s, tt.wantLen)
			for _, ch := range s {
				assert.Contains(t, random.Alphabet, string(ch))
			}
		})
	}
}

func TestHandleCustom(t *testing.T) {
	h := newTestRouter(0)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErr    string
		check      func(t *testing.T, result any)
	}{
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantErr:    "a valid type must be specified",
		},
		{
			name:       "empty object",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "a valid type must be specified",
		},
		{
			name:       "malformed json",
			body:       `{"type":`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "wrong field type",
			body:       `{"type":"number","min":"one","max":2}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "invalid request body",
		},
		{
			name:       "bogus type",
			body:       `{"type":"bogus"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "type must be 'number', 'decimal', or 'string'",
		},
		{
			name:       "number missing bounds",
			body:       `{"type":"number"}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "min and max are required for type=number",
		},
		{
			name:       "number min exceeds max",
			body:       `{"type":"number","min":5,"max":3}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "min cannot exceed max",
		},
		{
			name:       "number equal bounds",
			body:       `{"type":"number","min":1,"max":1}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, result any) {
				assert.Equal(t, float64(1), result)
			},
		},
		{
			name:       "decimal zero places",
			body:       `{"type":"decimal","decimals":0}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, result any) {
				assert.Contains(t, []any{float64(0), float64(1)}, result)
			},
		},
		{
			name:       "decimal out of range places",
			body:       `{"type":"decimal","decimals":20}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "decimals must be between 0 and 15",
		},
		{
			name:       "string default",
			body:       `{"type":"STRING"}`,
			wantStatus: http.StatusOK,
			check: func(t *testing.T, result any) {
				s, ok := result.(string)
				require.True(t, ok)
				assert.Len(t, s, 8)
			},
		},
		{
			name:       "string too long",
			body:       `{"type":"string","length":2048}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "length must be between 1 and 1024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/random/custom", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, rec))
				return
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Contains(t, body, "result")
			tt.check(t, body["result"])
		})
	}
}

func TestHandleCustom_BodyTooLarge(t *testing.T) {
	h := newTestRouter(64)

	body := `{"type":"string","length":8,"padding":"` + strings.Repeat("x", 128) + `"}`
	rec := do(t, h, http.MethodPost, "/random/custom", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "request body too large", decodeError(t, rec))
}
