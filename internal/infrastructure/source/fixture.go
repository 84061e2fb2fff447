package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

// FixtureFetcher serves a local file as the single attachment of any
// ticket. It stands in for the live Zendesk fetcher when running
// locally against a test spreadsheet.
type FixtureFetcher struct {
	Path string
}

func NewFixtureFetcher(path string) *FixtureFetcher {
	return &FixtureFetcher{Path: path}
}

func (f *FixtureFetcher) ListAttachments(ctx context.Context, ticketID int64) ([]domain.Attachment, error) {
	_ = ctx

	if _, err := os.Stat(f.Path); err != nil {
		return nil, fmt.Errorf("stat fixture %s: %w", f.Path, err)
	}

	return []domain.Attachment{{
		ID:       1,
		FileName: filepath.Base(f.Path),
		URL:      f.Path,
	}}, nil
}

func (f *FixtureFetcher) Download(ctx context.Context, att domain.Attachment) ([]byte, error) {
	_ = ctx

	data, err := os.ReadFile(att.URL)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", att.URL, err)
	}
	return data, nil
}
