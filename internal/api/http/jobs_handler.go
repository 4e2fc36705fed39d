package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"library-circulation/internal/jobs"
	"library-circulation/internal/logger"
)

// JobsHandler exposes health checks and on-demand job triggers.
type JobsHandler struct {
	jobs *jobs.JobRunner
}

// NewJobsHandler creates a handler backed by the given job runner.
func NewJobsHandler(jobRunner *jobs.JobRunner) *JobsHandler {
	return &JobsHandler{jobs: jobRunner}
}

// HandleHealth reports process liveness.
func (h *JobsHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// HandleTriggerJob runs a named job immediately.
func (h *JobsHandler) HandleTriggerJob(w http.ResponseWriter, r *http.Request) {
	jobName := mux.Vars(r)["name"]

	switch jobName {
	case "expire-reservations":
		h.jobs.ExpireReservations()
	case "report-overdue-loans":
		h.jobs.ReportOverdueLoans()
	case "all-nightly":
		h.jobs.RunAllNightlyJobs()
	default:
		logger.Warn("Unknown job trigger requested", "job", jobName)
		http.Error(w, "unknown job: "+jobName, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "completed", "job": jobName})
}

// RegisterJobRoutes registers the health and job-trigger endpoints.
func RegisterJobRoutes(router *mux.Router, jobRunner *jobs.JobRunner) {
	handler := NewJobsHandler(jobRunner)
	router.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")
	router.HandleFunc("/jobs/{name}", handler.HandleTriggerJob).Methods("POST")
}
