package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/campusnotes/notes-client/internal/dto"
	"github.com/campusnotes/notes-client/internal/models"
)

// AdminNotes fetches the full moderation listing. Unpaginated.
func (c *Client) AdminNotes(ctx context.Context) ([]models.NoteRecord, error) {
	var res dto.AdminNotesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/admin/all-notes", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Notes, nil
}

// ApproveNote marks a pending note as approved.
func (c *Client) ApproveNote(ctx context.Context, noteID int) error {
	return c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/admin/notes/%d/approve", noteID), nil, nil, nil)
}

// RejectNote deletes a submission. Irreversible from the client's side.
func (c *Client) RejectNote(ctx context.Context, noteID int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/admin/notes/%d/reject", noteID), nil, nil, nil)
}
