package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/garage-service/internal/middleware"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/service"
)

// JobHandler serves the job lifecycle surface for all three roles
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create handles a customer's service request submission
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	var req models.CreateJobRequest
	if !decodeBody(w, r, &req) {
		return
	}

	job, err := h.jobs.CreateRequest(r.Context(), claims.UserID, req.VehiclePlate, req.IssueDescription)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"job_id":      job.ID,
		"customer_id": claims.UserID,
	}).Info("service request created")

	writeJSON(w, http.StatusCreated, job)
}

// Mine lists the requesting customer's jobs
func (h *JobHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	jobs, err := h.jobs.ListForCustomer(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// Assigned lists the jobs assigned to the requesting mechanic
func (h *JobHandler) Assigned(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	jobs, err := h.jobs.ListForMechanic(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// UpdateStatus handles a mechanic's status update on an assigned job
func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	var req models.UpdateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	jobID := chi.URLParam(r, "jobID")
	job, err := h.jobs.UpdateStatus(r.Context(), jobID, claims.UserID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"job_id": job.ID,
		"status": job.Status,
	}).Info("job status updated")

	writeJSON(w, http.StatusOK, job)
}

// LogPart handles a mechanic logging parts consumed against an assigned job
func (h *JobHandler) LogPart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	var req models.LogPartRequest
	if !decodeBody(w, r, &req) {
		return
	}

	jobID := chi.URLParam(r, "jobID")
	job, err := h.jobs.LogPartUsage(r.Context(), jobID, claims.UserID, req.PartID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"job_id":   job.ID,
		"part_id":  req.PartID,
		"quantity": req.Quantity,
	}).Info("part usage logged")

	writeJSON(w, http.StatusOK, job)
}

// Assign handles an admin assigning a mechanic to a job
func (h *JobHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req models.AssignMechanicRequest
	if !decodeBody(w, r, &req) {
		return
	}

	jobID := chi.URLParam(r, "jobID")
	job, err := h.jobs.AssignMechanic(r.Context(), jobID, req.MechanicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	log.WithFields(log.Fields{
		"job_id":      job.ID,
		"mechanic_id": req.MechanicID,
	}).Info("mechanic assigned")

	writeJSON(w, http.StatusOK, job)
}

// Dashboard serves the admin aggregate view: jobs, mechanics and parts
func (h *JobHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.jobs.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}
