package echo

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/ticket-user-upload/internal/application/upload"
	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type WebhookHandler struct {
	useCase app.ProcessTicketUpload
}

type webhookRequest struct {
	TicketID int64 `json:"ticket_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func NewWebhookHandler(useCase app.ProcessTicketUpload) *WebhookHandler {
	return &WebhookHandler{useCase: useCase}
}

// HandleWebhook answers 200 for every handled outcome, business failures
// included: those are reported on the ticket, not in the webhook
// response. Only unexpected failures answer 500.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
	}

	log.Printf("webhook received for ticket %d", req.TicketID)

	err := h.useCase.Execute(c.Request().Context(), app.ProcessTicketUploadInput{
		Event: domain.WebhookEvent{TicketID: req.TicketID},
	})
	if err != nil {
		if errors.Is(err, app.ErrMissingTicketID) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ticket_id is required"})
		}
		log.Printf("process webhook for ticket %d: %v", req.TicketID, err)
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal server error"})
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Webhook processed successfully"})
}
