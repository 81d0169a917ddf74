package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/namegen_api/models"
	"github.com/vit0-9/namegen_api/pkg/llm"
	"github.com/vit0-9/namegen_api/pkg/naming"
	"github.com/vit0-9/namegen_api/pkg/store"
	"github.com/vit0-9/namegen_api/pkg/suggestions"
	"github.com/vit0-9/namegen_api/pkg/utils/domain"
)

type stubGenerator struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubGenerator) Name() string          { return s.name }
func (s *stubGenerator) Flavor() naming.Flavor { return naming.FlavorConcise }
func (s *stubGenerator) Generate(context.Context, string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type testServer struct {
	router    *gin.Engine
	generator *stubGenerator
	store     *store.MemoryStore
}

func newTestServer(t *testing.T, gen *stubGenerator, fallbackEnabled bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	reg := llm.NewRegistry(gen.name)
	require.NoError(t, reg.Register(gen))
	fb, err := suggestions.NewFallback()
	require.NoError(t, err)
	svc := suggestions.NewService(reg, fb, suggestions.Options{Timeout: time.Second, FallbackEnabled: fallbackEnabled})

	generations := store.NewMemoryStore()
	router := gin.New()
	router.Use(RequestID(), Recovery())

	api := router.Group("/api")
	api.GET("/health", NewHealthHandler().HealthCheckHandler)
	api.POST("/generate-domains", NewGenerationHandlers(svc, generations).GenerateDomainsHandler)
	api.POST("/check-domain", NewDomainHandlers(domain.NewService(domain.NewSimulator(), svc)).CheckDomainHandler)

	return &testServer{router: router, generator: gen, store: generations}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

const liveReply = `[
 {"name":"ResumeRocket","style":"Descriptive","domain":"resumerocket.com","rationale":"Fast & clear."},
 {"name":"Hire Me Maybe","style":"Humorous","domain":"hirememaybe.com","rationale":"A pop song pun."},
 {"name":"Bad","style":"Abstract","domain":"bad.com","rationale":"dropped"}
]`

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini"}, true)

	w := srv.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestGenerateDomainsSuccess(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini", reply: liveReply}, true)

	w := srv.do(t, http.MethodPost, "/api/generate-domains", map[string]string{
		"productDescription": "AI-powered resume builder for Gen Z professionals",
		"tonePreference":     "Funny",
		"stylePreference":    "Open to All",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.GenerateDomainsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Domains, 2)
	assert.False(t, resp.Demo)
	for _, d := range resp.Domains {
		assert.Contains(t, suggestions.Styles, d.Style)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Domain)
		assert.NotEmpty(t, d.Rationale)
	}
	assert.Contains(t, w.Body.String(), "Fast & clear.")
	assert.NotContains(t, w.Body.String(), `"demo"`)

	records := srv.store.List()
	require.Len(t, records, 1)
	assert.Equal(t, "gemini", records[0].Provider)
	assert.Contains(t, records[0].GeneratedDomains, "resumerocket.com")
}

func TestGenerateDomainsValidation(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini", reply: liveReply}, true)

	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		body    any
		field   string
		message string
	}{
		{name: "too short", body: map[string]string{"productDescription": "x"}, field: "productDescription", message: "Product description must be at least 10 characters"},
		{name: "too long", body: map[string]string{"productDescription": string(long)}, field: "productDescription", message: "Product description too long"},
		{name: "missing", body: map[string]string{}, field: "productDescription", message: "Product description is required"},
		{name: "bad tone", body: map[string]string{"productDescription": "a valid description", "tonePreference": "Sarcastic"}, field: "tonePreference"},
		{name: "bad style", body: map[string]string{"productDescription": "a valid description", "stylePreference": "Three words"}, field: "stylePreference"},
		{name: "wrong type", body: `{"productDescription": 12}`, field: "productDescription"},
		{name: "malformed", body: `{"productDescription":`, field: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, http.MethodPost, "/api/generate-domains", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid request", resp.Error)
			require.NotEmpty(t, resp.Details)
			assert.Equal(t, tt.field, resp.Details[0].Field)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Details[0].Message)
			}
		})
	}

	assert.Zero(t, srv.generator.calls)
	assert.Empty(t, srv.store.List())
}

func TestGenerateDomainsFallsBackToDemo(t *testing.T) {
	for name, err := range map[string]error{
		"auth":  &llm.ProviderError{Provider: "gemini", Kind: llm.ErrAuth},
		"quota": &llm.ProviderError{Provider: "gemini", Kind: llm.ErrQuota, StatusCode: 429},
	} {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, &stubGenerator{name: "gemini", err: err}, true)

			w := srv.do(t, http.MethodPost, "/api/generate-domains", map[string]string{
				"productDescription": "AI-powered resume builder for Gen Z professionals",
			})
			require.Equal(t, http.StatusOK, w.Code)

			var resp models.GenerateDomainsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Demo)
			assert.NotEmpty(t, resp.Message)
			assert.Len(t, resp.Domains, suggestions.FallbackSetSize)
		})
	}
}

func TestGenerateDomainsErrorsWithoutFallback(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		retryAfter int
	}{
		{name: "auth", err: &llm.ProviderError{Kind: llm.ErrAuth}, status: http.StatusUnauthorized},
		{name: "quota default hint", err: &llm.ProviderError{Kind: llm.ErrQuota}, status: http.StatusTooManyRequests, retryAfter: 60},
		{name: "quota provider hint", err: &llm.ProviderError{Kind: llm.ErrQuota, RetryAfter: 1500 * time.Millisecond}, status: http.StatusTooManyRequests, retryAfter: 2},
		{name: "other", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &stubGenerator{name: "gemini", err: tt.err}, false)

			w := srv.do(t, http.MethodPost, "/api/generate-domains", map[string]string{
				"productDescription": "AI-powered resume builder for Gen Z professionals",
			})
			require.Equal(t, tt.status, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.retryAfter, resp.RetryAfter)
			assert.Empty(t, srv.store.List())
		})
	}
}

func TestCheckDomainWellKnown(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini", reply: liveReply}, true)

	w := srv.do(t, http.MethodPost, "/api/check-domain", map[string]string{"domain": "facebook.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CheckDomainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsAvailable)
	require.NotEmpty(t, resp.Alternatives)
	assert.LessOrEqual(t, len(resp.Alternatives), domain.MaxAlternatives)
	assert.NotContains(t, resp.Alternatives, "facebook.com")
	for _, alt := range resp.Alternatives {
		assert.Contains(t, alt, "facebook")
	}
	assert.Zero(t, srv.generator.calls)
}

func TestCheckDomainWithAIAlternatives(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini", reply: liveReply}, true)

	w := srv.do(t, http.MethodPost, "/api/check-domain", map[string]string{
		"domain":             "google.com",
		"productDescription": "AI-powered resume builder for Gen Z professionals",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CheckDomainResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsAvailable)
	assert.Contains(t, resp.Alternatives, "google.net")
	assert.Contains(t, resp.Alternatives, "resumerocket.com")
	assert.Equal(t, 1, srv.generator.calls)
}

func TestCheckDomainValidation(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini"}, true)

	w := srv.do(t, http.MethodPost, "/api/check-domain", map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "domain", resp.Details[0].Field)
}

func TestCheckDomainInvalidDomainDegrades(t *testing.T) {
	srv := newTestServer(t, &stubGenerator{name: "gemini"}, true)

	w := srv.do(t, http.MethodPost, "/api/check-domain", map[string]string{"domain": "not a domain"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"isAvailable":false,"alternatives":[]}`, w.Body.String())
}

func TestRecoveryAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
