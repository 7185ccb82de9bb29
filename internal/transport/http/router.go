package http

import (
	"github.com/gorilla/mux"
)

// NewRouter configures the API routes and artifact download serving.
func NewRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods("GET")
	r.HandleFunc("/convert", handler.Convert).Methods("POST")
	r.HandleFunc("/progress/{id}", handler.Progress).Methods("GET")
	r.HandleFunc("/downloads/{filename}", handler.Download).Methods("GET")
	r.HandleFunc("/downloads/{filename}", handler.DeleteDownload).Methods("DELETE")
	return r
}
