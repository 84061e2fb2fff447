package zendesk

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type commentJSON struct {
	Body   string `json:"body"`
	Public bool   `json:"public"`
}

type ticketJSON struct {
	Status  string      `json:"status"`
	Comment commentJSON `json:"comment"`
}

type ticketUpdateRequest struct {
	Ticket ticketJSON `json:"ticket"`
}

// UpdateTicket sets the ticket status and posts the comment.
func (c *Client) UpdateTicket(ctx context.Context, update domain.TicketUpdate) error {
	body := ticketUpdateRequest{Ticket: ticketJSON{
		Status: string(update.Status),
		Comment: commentJSON{
			Body:   update.CommentBody,
			Public: update.CommentPublic,
		},
	}}

	url := fmt.Sprintf("%s/tickets/%d.json", c.baseURL, update.TicketID)
	req, err := c.newRequest(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}

	status, err := c.send(req, nil)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return fmt.Errorf("%w: ticket update returned %d", domain.ErrUpstreamUnavailable, status)
	}
	return nil
}
