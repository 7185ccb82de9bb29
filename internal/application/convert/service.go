package convert

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "clipd/internal/domain/convert"
)

// Availability is the startup preflight verdict on the transcoding
// engine, computed once and injected; it is never re-checked while
// the process runs.
type Availability struct {
	OK     bool
	Detail string
}

// Request describes one conversion submission.
type Request struct {
	SourceURL string
	Filename  string
	StartTime *float64
	EndTime   *float64
	Quality   string
}

// Service orchestrates conversion jobs: validation, dispatch, engine
// event handling and registry bookkeeping.
type Service struct {
	engine Engine
	store  ArtifactStore
	jobs   *Registry
	avail  Availability
	logger *zap.Logger
}

// NewService creates the conversion orchestrator with injected ports.
func NewService(engine Engine, store ArtifactStore, jobs *Registry, avail Availability, logger *zap.Logger) *Service {
	return &Service{engine: engine, store: store, jobs: jobs, avail: avail, logger: logger}
}

// Submit validates the request, registers the initial job record and
// dispatches the engine invocation in the background, returning the
// job id immediately. There is no cap on concurrently running
// conversions and no timeout or cancellation once dispatched; any
// failure is terminal for its job, never retried.
func (s *Service) Submit(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.SourceURL) == "" || strings.TrimSpace(req.Filename) == "" {
		return "", domain.ErrValidation
	}
	if !s.avail.OK {
		return "", domain.ErrEngineUnavailable
	}

	jobID := uuid.NewString()
	outputName := domain.SanitizeFilename(req.Filename, jobID)

	spec := domain.EngineSpec{
		InputURL:   req.SourceURL,
		OutputPath: s.store.OutputPath(outputName),
		CRF:        domain.ResolveQuality(req.Quality),
	}
	if req.StartTime != nil && req.EndTime != nil {
		spec.Trim = &domain.TrimWindow{
			Seek:     *req.StartTime,
			Duration: *req.EndTime - *req.StartTime,
		}
	}

	s.jobs.Create(domain.Job{ID: jobID, Status: domain.StatusStarting, Message: "Starting conversion..."})
	s.logger.Info("conversion accepted",
		zap.String("job_id", jobID),
		zap.String("source", req.SourceURL),
		zap.String("output", outputName),
		zap.Int("crf", spec.CRF))

	go s.run(jobID, spec)
	return jobID, nil
}

// Status returns the current job snapshot; unknown or expired ids
// yield the not-found record.
func (s *Service) Status(jobID string) domain.Job {
	return s.jobs.Get(jobID)
}

// run outlives the submitting request. The engine invocation is bound
// only by the engine's own behavior.
func (s *Service) run(jobID string, spec domain.EngineSpec) {
	for ev := range s.engine.Convert(context.Background(), spec) {
		switch ev.Kind {
		case domain.EventDone:
			s.jobs.Replace(s.finish(jobID, spec.OutputPath))
		case domain.EventFailed:
			s.logger.Warn("conversion failed",
				zap.String("job_id", jobID),
				zap.String("detail", ev.Detail))
			s.jobs.Replace(reduce(s.jobs.Get(jobID), ev))
		default:
			s.jobs.Replace(reduce(s.jobs.Get(jobID), ev))
		}
	}
}

// finish resolves engine-reported success into completed or error: a
// missing or zero-byte output is a failure even though the engine
// exited cleanly.
func (s *Service) finish(jobID, outputPath string) domain.Job {
	size, err := s.store.Finalize(outputPath)
	if err != nil {
		s.logger.Warn("conversion output unusable",
			zap.String("job_id", jobID),
			zap.String("path", outputPath),
			zap.Error(err))
		return failed(jobID, domain.ErrEmptyOutput.Error())
	}

	s.logger.Info("conversion completed",
		zap.String("job_id", jobID),
		zap.Int64("size", size))
	return completed(jobID, s.store.Describe(outputPath, size))
}
