package echo_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/ticket-user-upload/internal/application/upload"
	httpecho "github.com/mohammadpnp/ticket-user-upload/internal/interfaces/http/echo"
)

type fakeProcessUseCase struct {
	err      error
	called   bool
	ticketID int64
}

func (f *fakeProcessUseCase) Execute(ctx context.Context, in app.ProcessTicketUploadInput) error {
	f.called = true
	f.ticketID = in.Event.TicketID
	return f.err
}

func postWebhook(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader([]byte(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHandlerSuccess(t *testing.T) {
	t.Parallel()

	e := echo.New()
	useCase := &fakeProcessUseCase{}
	httpecho.RegisterRoutes(e, httpecho.NewWebhookHandler(useCase))

	rec := postWebhook(e, `{"ticket_id":42}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !useCase.called {
		t.Fatal("expected use case to be called")
	}
	if useCase.ticketID != 42 {
		t.Fatalf("unexpected ticket id: %d", useCase.ticketID)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["message"] != "Webhook processed successfully" {
		t.Fatalf("unexpected message: %#v", got["message"])
	}
}

func TestWebhookHandlerBadJSON(t *testing.T) {
	t.Parallel()

	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.NewWebhookHandler(&fakeProcessUseCase{}))

	rec := postWebhook(e, `{"ticket_id":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWebhookHandlerMissingTicketID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.NewWebhookHandler(&fakeProcessUseCase{err: app.ErrMissingTicketID}))

	rec := postWebhook(e, `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWebhookHandlerUnexpectedError(t *testing.T) {
	t.Parallel()

	e := echo.New()
	httpecho.RegisterRoutes(e, httpecho.NewWebhookHandler(&fakeProcessUseCase{err: errors.New("boom")}))

	rec := postWebhook(e, `{"ticket_id":42}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	if got["message"] != "Internal server error" {
		t.Fatalf("unexpected message: %#v", got["message"])
	}
}
