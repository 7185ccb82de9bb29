package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	appconvert "clipd/internal/application/convert"
	convertdomain "clipd/internal/domain/convert"
)

type converterUseCases interface {
	Submit(ctx context.Context, req appconvert.Request) (string, error)
	Status(jobID string) convertdomain.Job
}

type artifactStore interface {
	OutputPath(name string) string
	Delete(name string) error
}

// Handler wires HTTP handlers with the conversion use cases.
type Handler struct {
	converter converterUseCases
	store     artifactStore
	engineOK  bool
}

// NewHandler creates the HTTP handler set. engineOK is the startup
// preflight verdict, surfaced on /health and already enforced by the
// orchestrator on submission.
func NewHandler(converter converterUseCases, store artifactStore, engineOK bool) *Handler {
	return &Handler{converter: converter, store: store, engineOK: engineOK}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"ffmpeg_available": h.engineOK,
	})
}

type convertRequest struct {
	M3U8URL   string   `json:"m3u8_url"`
	Filename  string   `json:"filename"`
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	Quality   string   `json:"quality,omitempty"`
}

// Convert handles POST /convert: accepted submissions return the job
// id immediately, the conversion itself runs in the background.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	jobID, err := h.converter.Submit(r.Context(), appconvert.Request{
		SourceURL: req.M3U8URL,
		Filename:  req.Filename,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Quality:   req.Quality,
	})
	if err != nil {
		switch {
		case errors.Is(err, convertdomain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, convertdomain.ErrEngineUnavailable):
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"success": true,
		"job_id":  jobID,
	})
}

// Progress handles GET /progress/{id}. Unknown and expired ids come
// back as a normal not_found snapshot, not an HTTP error.
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	job := h.converter.Status(mux.Vars(r)["id"])

	payload := map[string]interface{}{
		"status":   job.Status,
		"progress": job.Progress,
		"message":  job.Message,
	}
	if job.Download != nil {
		payload["filename"] = job.Download.Filename
		payload["download_url"] = job.Download.URL
		payload["size"] = job.Download.Size
	}
	writeJSON(w, http.StatusOK, payload)
}

// Download handles GET /downloads/{filename} with Range support.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	if !validDownloadName(name) {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	streamFile(w, r, h.store.OutputPath(name), "video/mp4")
}

// DeleteDownload handles DELETE /downloads/{filename}.
func (h *Handler) DeleteDownload(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(mux.Vars(r)["filename"])
	switch {
	case errors.Is(err, convertdomain.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "invalid filename")
	case errors.Is(err, convertdomain.ErrNotFound):
		writeError(w, http.StatusNotFound, "file not found")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}

func validDownloadName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "error": message})
}
