package upload

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("helpdesk api unavailable")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrUnparsableFormat    = errors.New("attachment is not a readable csv or spreadsheet")
)
