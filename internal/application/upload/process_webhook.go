package upload

import (
	"context"
	"errors"
	"fmt"
	"log"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

// AttachmentFetcher lists and downloads a ticket's attachments. The live
// implementation talks to Zendesk; a fixture variant serves local files.
type AttachmentFetcher interface {
	ListAttachments(ctx context.Context, ticketID int64) ([]domain.Attachment, error)
	Download(ctx context.Context, att domain.Attachment) ([]byte, error)
}

type TabularParser interface {
	Parse(data []byte) (domain.Table, error)
}

type userSyncer interface {
	SyncUsers(ctx context.Context, rows domain.Table) domain.SyncOutcome
}

type ticketReporter interface {
	Report(ctx context.Context, ticketID int64, outcome *domain.SyncOutcome, errorDetails string)
}

type ProcessTicketUploadInput struct {
	Event domain.WebhookEvent
}

type ProcessTicketUpload interface {
	Execute(ctx context.Context, in ProcessTicketUploadInput) error
}

type processTicketUpload struct {
	fetcher  AttachmentFetcher
	parser   TabularParser
	syncer   userSyncer
	reporter ticketReporter
}

func NewProcessTicketUpload(fetcher AttachmentFetcher, parser TabularParser, syncer userSyncer, reporter ticketReporter) ProcessTicketUpload {
	return &processTicketUpload{
		fetcher:  fetcher,
		parser:   parser,
		syncer:   syncer,
		reporter: reporter,
	}
}

// Execute runs one webhook event through fetch, parse, clean, sync, and
// report. Anticipated failures end in exactly one ticket update and a nil
// return; only unclassified errors propagate to the caller.
func (uc *processTicketUpload) Execute(ctx context.Context, in ProcessTicketUploadInput) error {
	if in.Event.TicketID <= 0 {
		return ErrMissingTicketID
	}

	attachments, err := uc.fetcher.ListAttachments(ctx, in.Event.TicketID)
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) || errors.Is(err, domain.ErrTicketNotFound) {
			log.Printf("list attachments for ticket %d: %v", in.Event.TicketID, err)
			uc.reporter.Report(ctx, in.Event.TicketID, nil, "Could not list ticket attachments")
			return nil
		}
		return fmt.Errorf("list attachments: %w", err)
	}

	if len(attachments) == 0 {
		uc.reporter.Report(ctx, in.Event.TicketID, nil, "No attachments found in this ticket")
		return nil
	}

	// Only the first attachment is processed.
	data, err := uc.fetcher.Download(ctx, attachments[0])
	if err != nil {
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			log.Printf("download attachment for ticket %d: %v", in.Event.TicketID, err)
			uc.reporter.Report(ctx, in.Event.TicketID, nil, "Could not download attachment")
			return nil
		}
		return fmt.Errorf("download attachment: %w", err)
	}

	table, err := uc.parser.Parse(data)
	if err != nil {
		log.Printf("parse attachment for ticket %d: %v", in.Event.TicketID, err)
		uc.reporter.Report(ctx, in.Event.TicketID, nil, "Could not read attachment as excel or csv")
		return nil
	}

	cleaned := domain.Clean(table)
	outcome := uc.syncer.SyncUsers(ctx, cleaned)
	uc.reporter.Report(ctx, in.Event.TicketID, &outcome, "")
	return nil
}
