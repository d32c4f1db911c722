package api

import (
	"context"
	"net/http"

	"github.com/campusnotes/notes-client/internal/dto"
)

// Subjects returns the known subject filter values.
func (c *Client) Subjects(ctx context.Context) ([]string, error) {
	var res dto.VocabResponse
	if err := c.doJSON(ctx, http.MethodGet, "/subjects", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Subjects, nil
}

// Courses returns the known course filter values.
func (c *Client) Courses(ctx context.Context) ([]string, error) {
	var res dto.VocabResponse
	if err := c.doJSON(ctx, http.MethodGet, "/courses", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Courses, nil
}

// Semesters returns the known semester filter values.
func (c *Client) Semesters(ctx context.Context) ([]string, error) {
	var res dto.VocabResponse
	if err := c.doJSON(ctx, http.MethodGet, "/semesters", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Semesters, nil
}
