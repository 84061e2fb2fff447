package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/mohammadpnp/ticket-user-upload/internal/application/upload"
	"github.com/mohammadpnp/ticket-user-upload/internal/bootstrap"
	"github.com/mohammadpnp/ticket-user-upload/internal/config"
	"github.com/mohammadpnp/ticket-user-upload/internal/infrastructure/source"
	"github.com/mohammadpnp/ticket-user-upload/internal/infrastructure/tabular"
	"github.com/mohammadpnp/ticket-user-upload/internal/infrastructure/zendesk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	client := zendesk.NewClient(cfg.Zendesk.BaseURL(), cfg.Zendesk.Email, cfg.Zendesk.APIToken, cfg.Zendesk.Timeout())

	var fetcher app.AttachmentFetcher = client
	if cfg.FixturePath != "" {
		log.Printf("fixture mode: serving %s as the ticket attachment", cfg.FixturePath)
		fetcher = source.NewFixtureFetcher(cfg.FixturePath)
	}

	useCase := app.NewProcessTicketUpload(
		fetcher,
		tabular.NewLoader(),
		app.NewUserSync(client),
		app.NewTicketReporter(client),
	)

	server := bootstrap.NewHTTPServer(useCase)

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
}
