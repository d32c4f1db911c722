package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
	"github.com/campusnotes/notes-client/pkg/config"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(config.BackendConfig{
		BaseURL:   server.URL,
		APIPrefix: "/api",
		Timeout:   2 * time.Second,
		PerPage:   12,
	}, nil, nil)
	require.NoError(t, err)
	return client, server
}

func TestLoginDecodesUserAndKeepsSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sam", req.Username)

		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
		json.NewEncoder(w).Encode(dto.LoginResponse{User: &models.User{ID: 3, Username: "sam"}})
	})
	mux.HandleFunc("/api/auth/check-auth", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc" {
			json.NewEncoder(w).Encode(dto.AuthCheckResponse{Authenticated: false})
			return
		}
		json.NewEncoder(w).Encode(dto.AuthCheckResponse{Authenticated: true, User: &models.User{ID: 3, Username: "sam"}})
	})
	client, _ := newTestClient(t, mux)

	user, err := client.Login(context.Background(), dto.LoginRequest{Username: "sam", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)

	// the session cookie from login is presented on subsequent calls
	checked, err := client.CheckAuth(context.Background())
	require.NoError(t, err)
	require.NotNil(t, checked)
	assert.Equal(t, "sam", checked.Username)
}

func TestLoginFailureCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "bad password"})
	}))

	_, err := client.Login(context.Background(), dto.LoginRequest{Username: "sam", Password: "nope"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrBackend.Code, appErr.Code)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "bad password", appErr.Message)
}

func TestCheckAuthUnauthenticatedReturnsNilUser(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.AuthCheckResponse{Authenticated: false})
	}))

	user, err := client.CheckAuth(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestListNotesSendsPaginationAndFilters(t *testing.T) {
	var got map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes", r.URL.Path)
		got = map[string]string{}
		for key := range r.URL.Query() {
			got[key] = r.URL.Query().Get(key)
		}
		json.NewEncoder(w).Encode(models.PageResult{CurrentPage: 2, Pages: 3, Total: 30})
	}))

	result, err := client.ListNotes(context.Background(), 2, 12, models.FilterSet{
		models.FilterSubject: "Math",
		models.FilterSearch:  "",
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"page":     "2",
		"per_page": "12",
		"subject":  "Math",
	}, got, "empty filter values must be pruned from the query")
	assert.Equal(t, 2, result.CurrentPage)
}

func TestNetworkFailureMapsToNetworkError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.ListNotes(context.Background(), 1, 12, nil)
	require.Error(t, err)
	assert.True(t, appErrors.IsNetwork(err))
}

func TestUploadBuildsMultipartWithUserID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Summary", r.FormValue("title"))
		assert.Equal(t, "7", r.FormValue("user_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "summary.pdf", header.Filename)
		w.WriteHeader(http.StatusCreated)
	}))

	userID := 7
	err := client.Upload(context.Background(),
		map[string]string{"title": "Summary"},
		"summary.pdf", strings.NewReader("bytes"), &userID)
	require.NoError(t, err)
}

func TestRejectNoteUsesDelete(t *testing.T) {
	var method, path string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
	}))

	require.NoError(t, client.RejectNote(context.Background(), 42))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/admin/notes/42/reject", path)
}

func TestVocabEndpoints(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/subjects", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.VocabResponse{Subjects: []string{"Math", "Physics"}})
	})
	mux.HandleFunc("/api/semesters", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(dto.VocabResponse{Semesters: []string{"Fall 2025"}})
	})
	client, _ := newTestClient(t, mux)

	subjects, err := client.Subjects(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "Physics"}, subjects)

	semesters, err := client.Semesters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Fall 2025"}, semesters)
}

func TestDownloadStreamsBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes/9/download", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))

	body, contentType, err := client.Download(context.Background(), 9)
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "application/pdf", contentType)
	raw := make([]byte, 8)
	_, err = io.ReadFull(body, raw)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(raw))
}
