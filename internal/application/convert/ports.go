package convert

import (
	"context"

	domain "clipd/internal/domain/convert"
)

// Engine is the application port for the external transcoding process.
// Convert returns the run's finite event stream; the channel closes
// after exactly one terminal event.
type Engine interface {
	Convert(ctx context.Context, spec domain.EngineSpec) <-chan domain.Event
}

// ArtifactStore is the application port for output file management.
type ArtifactStore interface {
	OutputPath(name string) string
	Finalize(path string) (int64, error)
	Describe(path string, size int64) domain.Download
}
