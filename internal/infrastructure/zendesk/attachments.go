package zendesk

import (
	"context"
	"fmt"
	"io"
	"net/http"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type attachmentJSON struct {
	ID          int64  `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
}

type attachmentListResponse struct {
	Attachments []attachmentJSON `json:"attachments"`
}

// ListAttachments returns the attachment descriptors of a ticket. An
// empty slice is a valid result; a 404 maps to ErrTicketNotFound.
func (c *Client) ListAttachments(ctx context.Context, ticketID int64) ([]domain.Attachment, error) {
	url := fmt.Sprintf("%s/tickets/%d/attachments.json", c.baseURL, ticketID)

	req, err := c.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var payload attachmentListResponse
	status, err := c.send(req, &payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: ticket %d", domain.ErrTicketNotFound, ticketID)
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("%w: list attachments returned %d", domain.ErrUpstreamUnavailable, status)
	}

	attachments := make([]domain.Attachment, 0, len(payload.Attachments))
	for _, a := range payload.Attachments {
		attachments = append(attachments, domain.Attachment{
			ID:          a.ID,
			FileName:    a.FileName,
			URL:         a.URL,
			ContentType: a.ContentType,
		})
	}
	return attachments, nil
}

// Download fetches the raw bytes of one attachment.
func (c *Client) Download(ctx context.Context, att domain.Attachment) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, att.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, fmt.Errorf("%w: download %s returned %d", domain.ErrUpstreamUnavailable, att.FileName, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read attachment: %v", domain.ErrUpstreamUnavailable, err)
	}
	return data, nil
}
