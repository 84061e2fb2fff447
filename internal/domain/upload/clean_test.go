package upload_test

import (
	"reflect"
	"testing"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

func TestCleanFirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"DisplayName", "EmailAddress"},
		Rows: []domain.Record{
			{"DisplayName": "Alice", "EmailAddress": "a@x.com"},
			{"DisplayName": "Bob", "EmailAddress": "a@x.com"},
			{"DisplayName": "Carol", "EmailAddress": "c@x.com"},
		},
	}

	got := domain.Clean(table)

	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if got.Rows[0]["DisplayName"] != "Alice" {
		t.Fatalf("expected first occurrence to survive, got %q", got.Rows[0]["DisplayName"])
	}
	if got.Rows[1]["EmailAddress"] != "c@x.com" {
		t.Fatalf("unexpected second row: %#v", got.Rows[1])
	}
}

func TestCleanDeduplicatesIgnoringEmailCase(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"EmailAddress"},
		Rows: []domain.Record{
			{"EmailAddress": "a@x.com"},
			{"EmailAddress": "A@X.COM"},
		},
	}

	got := domain.Clean(table)

	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got.Rows))
	}
	if got.Rows[0]["EmailAddress"] != "a@x.com" {
		t.Fatalf("expected first spelling kept, got %q", got.Rows[0]["EmailAddress"])
	}
}

func TestCleanSubstitutesSentinelForMissingEmail(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"DisplayName", "EmailAddress"},
		Rows: []domain.Record{
			{"DisplayName": "Alice", "EmailAddress": ""},
			{"DisplayName": "Bob", "EmailAddress": "b@x.com"},
		},
	}

	got := domain.Clean(table)

	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if got.Rows[0]["EmailAddress"] != domain.MissingEmailSentinel {
		t.Fatalf("expected sentinel, got %q", got.Rows[0]["EmailAddress"])
	}
}

func TestCleanCollapsesRowsWithoutEmail(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"DisplayName", "EmailAddress"},
		Rows: []domain.Record{
			{"DisplayName": "Alice", "EmailAddress": ""},
			{"DisplayName": "Bob", "EmailAddress": "   "},
		},
	}

	got := domain.Clean(table)

	if len(got.Rows) != 1 {
		t.Fatalf("expected 1 row after collapsing missing emails, got %d", len(got.Rows))
	}
	if got.Rows[0]["DisplayName"] != "Alice" {
		t.Fatalf("expected first row to survive, got %q", got.Rows[0]["DisplayName"])
	}
}

func TestCleanTrimsValuesAndHeaders(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{" DisplayName ", "EmailAddress"},
		Rows: []domain.Record{
			{" DisplayName ": "  Alice  ", "EmailAddress": " a@x.com "},
		},
	}

	got := domain.Clean(table)

	if got.Columns[0] != "DisplayName" {
		t.Fatalf("expected trimmed header, got %q", got.Columns[0])
	}
	if got.Rows[0]["DisplayName"] != "Alice" {
		t.Fatalf("expected trimmed value, got %q", got.Rows[0]["DisplayName"])
	}
	if got.Rows[0]["EmailAddress"] != "a@x.com" {
		t.Fatalf("expected trimmed email, got %q", got.Rows[0]["EmailAddress"])
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"DisplayName", "EmailAddress"},
		Rows: []domain.Record{
			{"DisplayName": " Alice ", "EmailAddress": "a@x.com"},
			{"DisplayName": "Bob", "EmailAddress": "a@x.com"},
			{"DisplayName": "Carol", "EmailAddress": ""},
			{"DisplayName": "Dave", "EmailAddress": ""},
			{"DisplayName": "Eve", "EmailAddress": "e@x.com"},
		},
	}

	once := domain.Clean(table)
	twice := domain.Clean(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("clean is not idempotent:\nonce:  %#v\ntwice: %#v", once, twice)
	}
}

func TestCleanWithoutEmailColumnKeepsRows(t *testing.T) {
	t.Parallel()

	table := domain.Table{
		Columns: []string{"DisplayName"},
		Rows: []domain.Record{
			{"DisplayName": "Alice"},
			{"DisplayName": "Alice"},
		},
	}

	got := domain.Clean(table)

	if len(got.Rows) != 2 {
		t.Fatalf("expected rows untouched without a key column, got %d", len(got.Rows))
	}
}

func TestCleanEmptyTable(t *testing.T) {
	t.Parallel()

	got := domain.Clean(domain.Table{Columns: []string{"EmailAddress"}})

	if len(got.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(got.Rows))
	}
}
