package convert

import (
	domain "clipd/internal/domain/convert"
)

// reduce applies a non-terminal-success engine event to the previous
// record and returns the next whole-value record. Terminal success is
// resolved separately because it needs the artifact store.
func reduce(prev domain.Job, ev domain.Event) domain.Job {
	switch ev.Kind {
	case domain.EventStart:
		next := prev
		next.Status = domain.StatusProcessing
		next.Progress = 5
		next.Message = "Downloading and processing video segments..."
		return next
	case domain.EventProgress:
		mapped, msg := domain.MapProgress(ev.Percent)
		next := prev
		next.Status = domain.StatusProcessing
		next.Progress = int(mapped)
		next.Message = msg
		return next
	case domain.EventFailed:
		return failed(prev.ID, ev.Detail)
	default:
		return prev
	}
}

func failed(jobID, detail string) domain.Job {
	return domain.Job{
		ID:      jobID,
		Status:  domain.StatusError,
		Message: "Conversion failed: " + detail,
	}
}

func completed(jobID string, dl domain.Download) domain.Job {
	return domain.Job{
		ID:       jobID,
		Status:   domain.StatusCompleted,
		Progress: 100,
		Message:  "Conversion completed",
		Download: &dl,
	}
}
