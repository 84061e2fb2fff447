package zendesk

import (
	"context"
	"fmt"
	"net/http"

	domain "github.com/mohammadpnp/ticket-user-upload/internal/domain/upload"
)

type customFieldJSON struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type userJSON struct {
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Verified       bool              `json:"verified"`
	RemotePhotoURL string            `json:"remote_photo_url"`
	CustomFields   []customFieldJSON `json:"custom_fields"`
}

type userEnvelope struct {
	User userJSON `json:"user"`
}

type bulkUsersRequest struct {
	Users []userEnvelope `json:"users"`
}

type jobStatusJSON struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// The live API wraps the job descriptor in a job_status envelope; some
// deployments answer with the bare object, so both are accepted.
type bulkUsersResponse struct {
	JobStatus jobStatusJSON `json:"job_status"`
	Status    string        `json:"status"`
	Details   string        `json:"details"`
}

// CreateOrUpdateUsers submits one atomic bulk create-or-update call and
// returns the upstream job status. An empty users slice is a valid
// request; upstream behavior is surfaced as-is.
func (c *Client) CreateOrUpdateUsers(ctx context.Context, users []domain.UserPayload) (domain.JobStatus, error) {
	body := bulkUsersRequest{Users: make([]userEnvelope, 0, len(users))}
	for _, u := range users {
		fields := make([]customFieldJSON, 0, len(u.CustomFields))
		for _, f := range u.CustomFields {
			fields = append(fields, customFieldJSON{ID: f.ID, Value: f.Value})
		}
		body.Users = append(body.Users, userEnvelope{User: userJSON{
			Name:           u.Name,
			Email:          u.Email,
			Verified:       u.Verified,
			RemotePhotoURL: u.RemotePhotoURL,
			CustomFields:   fields,
		}})
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/users/create_or_update_many.json", body)
	if err != nil {
		return domain.JobStatus{}, err
	}

	var payload bulkUsersResponse
	status, err := c.send(req, &payload)
	if err != nil {
		return domain.JobStatus{}, err
	}
	if !is2xx(status) {
		return domain.JobStatus{}, fmt.Errorf("%w: bulk user sync returned %d", domain.ErrUpstreamUnavailable, status)
	}

	if payload.JobStatus.Status != "" {
		return domain.JobStatus{Status: payload.JobStatus.Status, Details: payload.JobStatus.Details}, nil
	}
	return domain.JobStatus{Status: payload.Status, Details: payload.Details}, nil
}
