package upload

type WebhookEvent struct {
	TicketID int64
}
