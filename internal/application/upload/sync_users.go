package upload

import (
	"context"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type userDirectory interface {
	CreateOrUpdateUsers(ctx context.Context, users []domain.UserPayload) (domain.JobStatus, error)
}

// UserSync turns cleaned rows into one bulk create-or-update call.
type UserSync struct {
	directory userDirectory
}

func NewUserSync(directory userDirectory) *UserSync {
	return &UserSync{directory: directory}
}

// SyncUsers never returns an error: transport failures and non-completed
// job statuses are both folded into the outcome so the caller can report
// them on the ticket.
func (s *UserSync) SyncUsers(ctx context.Context, rows domain.Table) domain.SyncOutcome {
	nameColumn, _ := rows.Column("DisplayName", "name")
	emailColumn, _ := rows.Column("EmailAddress", "email")

	users := make([]domain.UserPayload, 0, len(rows.Rows))
	for _, row := range rows.Rows {
		users = append(users, domain.UserPayload{
			Name:         row[nameColumn],
			Email:        row[emailColumn],
			Verified:     true,
			CustomFields: []domain.CustomField{},
		})
	}

	job, err := s.directory.CreateOrUpdateUsers(ctx, users)
	if err != nil {
		return domain.SyncOutcome{Status: domain.SyncFailed, Details: err.Error()}
	}

	switch job.Status {
	case "completed":
		return domain.SyncOutcome{Status: domain.SyncCompleted, Details: job.Details}
	case "":
		return domain.SyncOutcome{Status: domain.SyncUnknown, Details: job.Details}
	default:
		return domain.SyncOutcome{Status: domain.SyncFailed, Details: job.Details}
	}
}
