package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, webhookHandler *WebhookHandler) {
	server.POST("/webhook", webhookHandler.HandleWebhook)
}
