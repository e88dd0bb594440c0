package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shri8977/FUTURE-FS-01/config"
	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/middleware"
	"github.com/shri8977/FUTURE-FS-01/internal/delivery/http/response"
	v1 "github.com/shri8977/FUTURE-FS-01/internal/delivery/http/v1"
	"github.com/shri8977/FUTURE-FS-01/internal/domain"
	"github.com/shri8977/FUTURE-FS-01/internal/usecase"
	"github.com/shri8977/FUTURE-FS-01/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) SendContactMessage(ctx context.Context, req *domain.ContactSubmission) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockContactUC) RelayConfigured() bool {
	return m.Called().Bool(0)
}

type MockProjectUC struct {
	mock.Mock
}

func (m *MockProjectUC) List(ctx context.Context, filter string) ([]domain.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

type testServer struct {
	router    *gin.Engine
	contactUC *MockContactUC
	projectUC *MockProjectUC
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>Portfolio</h1>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "script.js"), []byte("console.log('hi')"), 0o600))

	contactUC := new(MockContactUC)
	projectUC := new(MockProjectUC)
	cfg := &config.Config{
		GinMode:        gin.TestMode,
		StaticDir:      staticDir,
		AllowedOrigins: []string{"https://portfolio.example"},
	}

	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: projectUC,
		HealthUC:  usecase.NewHealthUsecase(contactUC),
		Config:    cfg,
	})
	return &testServer{router: router, contactUC: contactUC, projectUC: projectUC}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestSendSuccess(t *testing.T) {
	s := newTestServer(t)
	s.contactUC.On("SendContactMessage", mock.Anything, &domain.ContactSubmission{
		Name: "Ada", Email: "ada@example.com", Message: "Hello",
	}).Return(nil).Once()

	w := s.do(postJSON("/send", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Message sent successfully!", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.Nil(t, resp.Data)
	s.contactUC.AssertExpectations(t)
}

func TestSendVersionedAlias(t *testing.T) {
	s := newTestServer(t)
	s.contactUC.On("SendContactMessage", mock.Anything, mock.Anything).Return(nil).Once()

	w := s.do(postJSON("/v1/contact/send", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode(t, w).Success)
}

func TestSendDispatchFailureIsStructured(t *testing.T) {
	s := newTestServer(t)
	s.contactUC.On("SendContactMessage", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: %w", domain.ErrDispatchFailed, errors.New("535 auth rejected for me@example.com"))).Once()

	w := s.do(postJSON("/send", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to send message", resp.Message)
	assert.NotContains(t, w.Body.String(), "535")
	assert.NotContains(t, w.Body.String(), "me@example.com")
}

func TestSendInvalidPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed json", `{"name":`, "Invalid request body"},
		{"missing fields", `{}`, "Name is required; Email is required; Message is required"},
		{"blank name", `{"name":"   ","email":"ada@example.com","message":"Hi"}`, "Name is required"},
		{"bad email", `{"name":"Ada","email":"ada@example","message":"Hi"}`, "Email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			w := s.do(postJSON("/send", tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
			s.contactUC.AssertNotCalled(t, "SendContactMessage", mock.Anything, mock.Anything)
		})
	}
}

func TestSendUsecaseValidationError(t *testing.T) {
	s := newTestServer(t)
	s.contactUC.On("SendContactMessage", mock.Anything, mock.Anything).
		Return(apperror.BadRequest("Please enter a valid email.")).Once()

	w := s.do(postJSON("/send", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter a valid email.", decode(t, w).Message)
}

func TestSendPropagatesRequestID(t *testing.T) {
	s := newTestServer(t)
	const id = "6f1c1c9e-8f39-4c5e-9d57-3a1e5b8f2c10"

	s.contactUC.On("SendContactMessage", mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Value(domain.KeyRequestID) == id
	}), mock.Anything).Return(nil).Once()

	req := postJSON("/send", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	req.Header.Set(middleware.RequestIDHeader, id)
	w := s.do(req)

	assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, id, decode(t, w).RequestID)
	s.contactUC.AssertExpectations(t)
}

func TestThemeEndpoints(t *testing.T) {
	s := newTestServer(t)

	t.Run("defaults to light", func(t *testing.T) {
		w := s.do(httptest.NewRequest(http.MethodGet, "/v1/theme", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"theme":"light"`)
		assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", w.Header().Get("Accept-CH"))
	})

	t.Run("honours the client hint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/theme", nil)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
		w := s.do(req)
		assert.Contains(t, w.Body.String(), `"theme":"dark"`)
	})

	t.Run("cookie wins over hint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/theme", nil)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
		req.AddCookie(&http.Cookie{Name: domain.ThemeKey, Value: "light"})
		w := s.do(req)
		assert.Contains(t, w.Body.String(), `"theme":"light"`)
	})

	t.Run("toggle sets cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/theme/toggle", nil)
		req.AddCookie(&http.Cookie{Name: domain.ThemeKey, Value: "dark"})
		w := s.do(req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"theme":"light"`)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "color-theme=light")
	})

	t.Run("toggle flips the hinted theme without a cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/theme/toggle", nil)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", `"dark"`)
		w := s.do(req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"theme":"light"`)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "color-theme=light")
	})

	t.Run("put validates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/v1/theme", bytes.NewBufferString(`{"theme":"sepia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := s.do(req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Theme must be one of: light, dark", decode(t, w).Message)

		req = httptest.NewRequest(http.MethodPut, "/v1/theme", bytes.NewBufferString(`{"theme":"dark"}`))
		req.Header.Set("Content-Type", "application/json")
		w = s.do(req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "color-theme=dark")
	})
}

func TestProjectsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.projectUC.On("List", mock.Anything, "web").Return([]domain.Project{{ID: "shop", Title: "Shop", Categories: []string{"web"}}}, nil).Once()
	s.projectUC.On("List", mock.Anything, "broken").Return(nil, errors.New("catalog unreadable")).Once()

	w := s.do(httptest.NewRequest(http.MethodGet, "/v1/projects?filter=web", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"shop"`)

	w = s.do(httptest.NewRequest(http.MethodGet, "/v1/projects?filter=broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "catalog unreadable")
}

func TestHealthAndStatic(t *testing.T) {
	s := newTestServer(t)
	s.contactUC.On("RelayConfigured").Return(true)

	w := s.do(httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"relay":"configured"`)

	w = s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>Portfolio</h1>")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = s.do(httptest.NewRequest(http.MethodGet, "/script.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/send", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	w := s.do(req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/send", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = s.do(req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestShippedSiteAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	contactUC := new(MockContactUC)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProjectUC: new(MockProjectUC),
		HealthUC:  usecase.NewHealthUsecase(contactUC),
		Config:    &config.Config{GinMode: gin.TestMode, StaticDir: filepath.Join("..", "..", "..", "..", "public")},
	})

	get := func(path string) string {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		return w.Body.String()
	}

	page := get("/")
	assert.Contains(t, page, `id="contact-form"`)
	assert.Contains(t, page, `href="#contact"`)

	script := get("/script.js")
	assert.Contains(t, script, "scrollIntoView({ behavior: 'smooth' })", "nav links scroll smoothly")
	assert.Contains(t, script, "this.load() === 'dark'", "toggle flips the visible theme")
	assert.Contains(t, script, "button.disabled = true", "submit is guarded while in flight")

	assert.Contains(t, get("/styles.css"), "scroll-behavior: smooth")
}
