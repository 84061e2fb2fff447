package upload

import (
	"context"
	"log"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type ticketUpdater interface {
	UpdateTicket(ctx context.Context, update domain.TicketUpdate) error
}

// TicketReporter writes the result of a run back onto the originating
// ticket as a private comment.
type TicketReporter struct {
	tickets ticketUpdater
}

func NewTicketReporter(tickets ticketUpdater) *TicketReporter {
	return &TicketReporter{tickets: tickets}
}

// Report covers every (outcome, errorDetails) combination: a completed
// outcome solves the ticket, everything else reopens it with the most
// specific description available. A failing ticket update is logged and
// swallowed; the run's result was already decided by the pipeline.
func (r *TicketReporter) Report(ctx context.Context, ticketID int64, outcome *domain.SyncOutcome, errorDetails string) {
	update := domain.TicketUpdate{
		TicketID:      ticketID,
		Status:        domain.TicketOpen,
		CommentPublic: false,
	}

	switch {
	case outcome == nil && errorDetails != "":
		update.CommentBody = errorDetails
	case outcome == nil:
		update.CommentBody = "Error processing user upload"
	case outcome.Status == domain.SyncCompleted:
		update.Status = domain.TicketSolved
		update.CommentBody = "User upload processed.\nDetails:\n " + outcome.Details
	default:
		details := outcome.Details
		if details == "" {
			details = errorDetails
		}
		update.CommentBody = "User upload failed.\nDetails:\n " + details
	}

	if err := r.tickets.UpdateTicket(ctx, update); err != nil {
		log.Printf("update ticket %d failed: %v", ticketID, err)
	}
}
