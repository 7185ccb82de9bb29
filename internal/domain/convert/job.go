package convert

// Status describes a conversion job's lifecycle phase.
type Status string

const (
	StatusStarting   Status = "starting"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
	StatusNotFound   Status = "not_found"
)

// Terminal reports whether the status ends a job's lifecycle.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Download describes a finished artifact available for retrieval.
type Download struct {
	Filename string
	URL      string
	Size     int64
}

// Job is a whole-value snapshot of a conversion job. Records are
// replaced wholesale on every update, never mutated field by field,
// so a concurrent reader can never observe a half-written state.
type Job struct {
	ID       string
	Status   Status
	Progress int
	Message  string
	Download *Download
}

// NotFoundJob is the record returned for unknown or expired job ids.
// Polling an expired job is a normal occurrence, not an error.
func NotFoundJob(id string) Job {
	return Job{ID: id, Status: StatusNotFound, Message: "Job not found or expired"}
}
