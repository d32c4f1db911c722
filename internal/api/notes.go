package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/campusnotes/notes-client/internal/models"
	appErrors "github.com/campusnotes/notes-client/pkg/errors"
)

// ListNotes fetches a page of the public listing with the given filters
// merged into the query string.
func (c *Client) ListNotes(ctx context.Context, page, perPage int, filters models.FilterSet) (*models.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	for key, value := range filters.Prune() {
		query.Set(key, value)
	}

	var res models.PageResult
	if err := c.doJSON(ctx, http.MethodGet, "/notes", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListMyNotes fetches a page of the caller's own notes. Filters never apply
// to this listing.
func (c *Client) ListMyNotes(ctx context.Context, page, perPage int) (*models.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var res models.PageResult
	if err := c.doJSON(ctx, http.MethodGet, "/my-notes", query, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Upload posts a multipart submission: form fields, the file, and the
// uploader's ID when one is set. Acceptance rules (type, size) are entirely
// the backend's.
func (c *Client) Upload(ctx context.Context, fields map[string]string, fileName string, file io.Reader, userID *int) error {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "write form field")
		}
	}
	if userID != nil {
		if err := writer.WriteField("user_id", strconv.Itoa(*userID)); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "write user id")
		}
	}

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "create file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "copy file")
	}
	if err := writer.Close(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "finalize multipart body")
	}

	resp, err := c.do(ctx, http.MethodPost, "/upload", nil, buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return backendError(resp)
	}
	return nil
}

// Download streams a note's file. The caller owns the returned body.
func (c *Client) Download(ctx context.Context, noteID int) (io.ReadCloser, string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/notes/%d/download", noteID), nil, nil, "")
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, "", backendError(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
