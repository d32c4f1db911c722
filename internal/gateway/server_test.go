package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/pkg/config"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := signSessionID("secret", "session-1", time.Hour)
	require.NoError(t, err)

	id, err := parseSessionID("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := signSessionID("secret", "session-1", time.Hour)
	require.NoError(t, err)

	_, err = parseSessionID("other", token)
	assert.Error(t, err)

	_, err = parseSessionID("secret", "not-a-token")
	assert.Error(t, err)
}

// fakeBackend stands in for the notes REST API.
func fakeBackend(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/check-auth", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.AuthCheckResponse{Authenticated: false})
	})
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(dto.LoginResponse{User: &models.User{ID: 1, Username: "sam", IsAdmin: true}})
	})
	mux.HandleFunc("/api/subjects", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.VocabResponse{Subjects: []string{"Math"}})
	})
	mux.HandleFunc("/api/courses", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.VocabResponse{Courses: []string{"MATH201"}})
	})
	mux.HandleFunc("/api/semesters", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.VocabResponse{Semesters: []string{"Fall 2025"}})
	})
	mux.HandleFunc("/api/notes", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.RequestURI())
		json.NewEncoder(w).Encode(models.PageResult{
			Notes:       []models.NoteRecord{{ID: 1, Title: "Algebra Notes", Subject: "Math", Course: "MATH201", Semester: "Fall 2025", UserID: 2, FileName: "a.pdf", IsApproved: true}},
			CurrentPage: 1,
			Pages:       1,
			Total:       1,
		})
	})
	mux.HandleFunc("/api/admin/notes/42/reject", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
	})
	mux.HandleFunc("/api/admin/all-notes", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		json.NewEncoder(w).Encode(dto.AdminNotesResponse{Notes: nil})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		Env:  config.EnvDevelopment,
		Port: 0,
		Backend: config.BackendConfig{
			BaseURL:   backendURL,
			APIPrefix: "/api",
			Timeout:   2 * time.Second,
			PerPage:   12,
		},
		Session: config.SessionConfig{
			Secret:     "test_secret",
			CookieName: "notes_session",
			TTL:        time.Hour,
		},
		Log:     config.LogConfig{Level: "error"},
		Metrics: config.MetricsConfig{Enabled: true},
	}
}

func TestHomePageCreatesSessionAndRenders(t *testing.T) {
	backend, _ := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Share and discover study notes")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "notes_session=")
	// anonymous visitor: login visible, logout hidden
	assert.Contains(t, rec.Body.String(), `href="/login"`)
	assert.NotContains(t, rec.Body.String(), "Logout")
}

func TestBrowsePageRendersBackendNotes(t *testing.T) {
	backend, calls := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/browse", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Algebra Notes")
	// vocabulary loaded at session startup feeds the filter selects
	assert.Contains(t, rec.Body.String(), `<option value="Math">Math</option>`)

	var sawList bool
	for _, call := range *calls {
		if strings.HasPrefix(call, "GET /api/notes?") {
			sawList = true
			assert.Contains(t, call, "page=1")
			assert.Contains(t, call, "per_page=12")
		}
	}
	assert.True(t, sawList, "browse must load the public listing")
}

func TestLoginFlowThroughGateway(t *testing.T) {
	backend, _ := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	// establish the session cookie first
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookie := rec.Result().Cookies()[0]

	form := url.Values{"username": {"sam"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Login successful!")
	// navigated home, now authenticated: admin nav visible for an admin
	assert.Contains(t, body, `href="/admin"`)
	assert.Contains(t, body, "Logout")
}

func TestRejectWithoutConfirmationSendsNoDelete(t *testing.T) {
	backend, calls := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/admin/notes/42/reject", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)

	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	for _, call := range *calls {
		assert.NotContains(t, call, "DELETE", "declined rejection must not reach the backend")
	}
}

func TestUnknownViewDeactivatesEverything(t *testing.T) {
	backend, _ := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/view/no-such-page", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `class="page"`)
}

func TestHealthzAndMetricsEndpoints(t *testing.T) {
	backend, _ := fakeBackend(t)
	srv := New(testConfig(backend.URL), zap.NewNop())

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gateway_http_requests_total")
}
