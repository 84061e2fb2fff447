package upload

type Attachment struct {
	ID          int64
	FileName    string
	URL         string
	ContentType string
}
