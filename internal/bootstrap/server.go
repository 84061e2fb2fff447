package bootstrap

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	app "github.com/mohammadpnp/ticket-user-upload/internal/application/upload"
	httpecho "github.com/mohammadpnp/ticket-user-upload/internal/interfaces/http/echo"
)

func NewHTTPServer(useCase app.ProcessTicketUpload) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	webhookHandler := httpecho.NewWebhookHandler(useCase)
	httpecho.RegisterRoutes(server, webhookHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
