package upload

type SyncStatus string

const (
	SyncCompleted SyncStatus = "completed"
	SyncFailed    SyncStatus = "failed"
	SyncUnknown   SyncStatus = "unknown"
)

// SyncOutcome describes the result of one bulk user sync.
type SyncOutcome struct {
	Status  SyncStatus
	Details string
}

// JobStatus is the raw job descriptor returned by the helpdesk bulk API.
type JobStatus struct {
	Status  string
	Details string
}

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketSolved TicketStatus = "solved"
)

// TicketUpdate is the terminal artifact of one orchestration run: a status
// change plus a comment posted back onto the originating ticket.
type TicketUpdate struct {
	TicketID      int64
	Status        TicketStatus
	CommentBody   string
	CommentPublic bool
}

type CustomField struct {
	ID    int64
	Value string
}

// UserPayload is one entry of the bulk create-or-update request.
type UserPayload struct {
	Name           string
	Email          string
	Verified       bool
	RemotePhotoURL string
	CustomFields   []CustomField
}
