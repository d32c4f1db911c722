package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/pkg/config"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

// Observer receives one event per backend call. Implementations must be
// cheap; the client invokes it synchronously.
type Observer interface {
	ObserveBackendRequest(method, endpoint string, status int, duration time.Duration)
}

// Client speaks to the notes REST backend. Session credentials live in the
// cookie jar, so one Client corresponds to one backend session.
type Client struct {
	http     *http.Client
	baseURL  string
	log      *zap.Logger
	observer Observer
}

// New constructs a Client for the configured backend. The cookie jar is
// created per client; authenticated calls carry whatever session cookie the
// backend issued on login.
func New(cfg config.BackendConfig, log *zap.Logger, observer Observer) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	base := strings.TrimRight(cfg.BaseURL, "/") + cfg.APIPrefix

	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout, Jar: jar},
		baseURL:  strings.TrimRight(base, "/"),
		log:      log,
		observer: observer,
	}, nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do performs a request and maps transport failures to the network error
// class. The response body is the caller's to close.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	if c.observer != nil {
		c.observer.ObserveBackendRequest(method, path, status, duration)
	}

	if err != nil {
		c.log.Warn("backend_request_failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, 0, appErrors.ErrNetwork.Message)
	}

	return resp, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when non-nil). Non-2xx responses become backend errors
// carrying the server-provided message when one exists.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode payload")
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	resp, err := c.do(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return backendError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBackend.Code, resp.StatusCode, "decode response")
	}
	return nil
}

// backendError drains the response looking for the {error: "..."} body and
// surfaces the server message verbatim when present.
func backendError(resp *http.Response) error {
	message := ""
	var payload dto.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil {
		message = payload.Error
	}
	if message == "" {
		return appErrors.New(appErrors.ErrBackend.Code, resp.StatusCode, appErrors.ErrBackend.Message)
	}
	return appErrors.New(appErrors.ErrBackend.Code, resp.StatusCode, message)
}
