package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ukydev/garage-service/internal/events"
	"github.com/ukydev/garage-service/internal/models"
	"github.com/ukydev/garage-service/internal/store"
)

// JobService owns the job record lifecycle: creation, assignment, status
// transitions and parts consumption. Every mutation runs as one serialized
// read-modify-write cycle against the document store.
type JobService struct {
	store     store.DocumentStore
	inventory *InventoryService
	publisher events.Publisher
}

// NewJobService creates a new job lifecycle service
func NewJobService(documentStore store.DocumentStore, inventory *InventoryService, publisher events.Publisher) *JobService {
	return &JobService{
		store:     documentStore,
		inventory: inventory,
		publisher: publisher,
	}
}

// CreateRequest records a new customer service request. The job starts
// Pending and unassigned with an empty parts log.
func (s *JobService) CreateRequest(ctx context.Context, customerID, vehiclePlate, issueDescription string) (*models.JobRecord, error) {
	if vehiclePlate == "" {
		return nil, validationErr("vehicle plate is required")
	}
	if issueDescription == "" {
		return nil, validationErr("issue description is required")
	}

	job := models.JobRecord{
		ID:               uuid.NewString(),
		CustomerID:       customerID,
		VehiclePlate:     vehiclePlate,
		IssueDescription: issueDescription,
		Status:           models.StatusPending,
		PartsUsed:        []models.PartUsage{},
		CreatedAt:        time.Now(),
	}

	err := s.store.Update(ctx, func(doc *models.Document) error {
		doc.Jobs = append(doc.Jobs, job)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		Type:      events.EventJobCreated,
		JobID:     job.ID,
		Status:    string(job.Status),
		Timestamp: job.CreatedAt,
	})
	return &job, nil
}

// AssignMechanic assigns a mechanic to a job and moves it to Assigned.
// Reassignment overwrites the prior assignee; no history is kept.
func (s *JobService) AssignMechanic(ctx context.Context, jobID, mechanicID string) (*models.JobRecord, error) {
	var updated models.JobRecord

	err := s.store.Update(ctx, func(doc *models.Document) error {
		job := doc.FindJob(jobID)
		if job == nil {
			return notFoundErr("job %s does not exist", jobID)
		}
		mechanic := doc.FindUser(mechanicID)
		if mechanic == nil || mechanic.Role != models.RoleMechanic {
			return notFoundErr("mechanic %s does not exist", mechanicID)
		}
		job.AssignedMechanicID = mechanicID
		job.Status = models.StatusAssigned
		updated = *job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		Type:       events.EventJobAssigned,
		JobID:      updated.ID,
		Status:     string(updated.Status),
		MechanicID: mechanicID,
	})
	return &updated, nil
}

// UpdateStatus sets a job's status on behalf of its assigned mechanic.
// Transitions are permissive: any of the mechanic-settable statuses may
// follow any prior status. Dispatched stamps the dispatch time.
func (s *JobService) UpdateStatus(ctx context.Context, jobID, requesterID string, status models.JobStatus) (*models.JobRecord, error) {
	if !models.IsMechanicSettableStatus(status) {
		return nil, validationErr("status %q cannot be set by a mechanic", status)
	}

	var updated models.JobRecord

	err := s.store.Update(ctx, func(doc *models.Document) error {
		job := doc.FindJob(jobID)
		if job == nil {
			return notFoundErr("job %s does not exist", jobID)
		}
		if job.AssignedMechanicID != requesterID {
			return forbiddenErr("job %s is not assigned to you", jobID)
		}
		job.Status = status
		if status == models.StatusDispatched {
			now := time.Now()
			job.DispatchedAt = &now
		}
		updated = *job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		Type:       events.EventJobStatus,
		JobID:      updated.ID,
		Status:     string(updated.Status),
		MechanicID: requesterID,
	})
	return &updated, nil
}

// LogPartUsage consumes stock against a job on behalf of its assigned
// mechanic. The stock decrement and the job's parts log are mutated in the
// same cycle, so a rejection leaves both untouched. Entries for the same
// part coalesce into one line with an accumulated quantity.
func (s *JobService) LogPartUsage(ctx context.Context, jobID, requesterID, partID string, quantity int) (*models.JobRecord, error) {
	if quantity < 1 {
		return nil, validationErr("quantity must be a positive integer")
	}

	var updated models.JobRecord

	err := s.store.Update(ctx, func(doc *models.Document) error {
		job := doc.FindJob(jobID)
		if job == nil {
			return notFoundErr("job %s does not exist", jobID)
		}
		if doc.FindPart(partID) == nil {
			return notFoundErr("part %s does not exist", partID)
		}
		if job.AssignedMechanicID != requesterID {
			return forbiddenErr("job %s is not assigned to you", jobID)
		}

		part, err := s.inventory.Consume(doc, partID, quantity)
		if err != nil {
			return err
		}

		logged := false
		for i := range job.PartsUsed {
			if job.PartsUsed[i].PartID == partID {
				job.PartsUsed[i].Quantity += quantity
				logged = true
				break
			}
		}
		if !logged {
			job.PartsUsed = append(job.PartsUsed, models.PartUsage{
				PartID:   partID,
				PartName: part.PartName,
				Quantity: quantity,
			})
		}
		updated = *job
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		Type:       events.EventJobPartLogged,
		JobID:      updated.ID,
		MechanicID: requesterID,
		PartID:     partID,
		Quantity:   quantity,
	})
	return &updated, nil
}

// ListForCustomer returns the customer's jobs as summaries, in storage order.
func (s *JobService) ListForCustomer(ctx context.Context, customerID string) ([]models.JobSummary, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := []models.JobSummary{}
	for _, job := range doc.Jobs {
		if job.CustomerID != customerID {
			continue
		}
		summaries = append(summaries, models.JobSummary{
			JobID:     job.ID,
			Vehicle:   job.VehiclePlate,
			Issue:     job.IssueDescription,
			Status:    job.Status,
			CreatedAt: job.CreatedAt,
		})
	}
	return summaries, nil
}

// ListForMechanic returns the jobs assigned to a mechanic, enriched with
// the customer's display name and mobile.
func (s *JobService) ListForMechanic(ctx context.Context, mechanicID string) ([]models.MechanicJob, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	jobs := []models.MechanicJob{}
	for _, job := range doc.Jobs {
		if job.AssignedMechanicID != mechanicID {
			continue
		}
		enriched := models.MechanicJob{JobRecord: job}
		if customer := doc.FindUser(job.CustomerID); customer != nil {
			enriched.CustomerName = customer.FullName
			enriched.CustomerMobile = customer.Mobile
		}
		jobs = append(jobs, enriched)
	}
	return jobs, nil
}

// ListAllWithNames returns every job enriched with resolved customer and
// mechanic display names, for administrative review.
func (s *JobService) ListAllWithNames(ctx context.Context) ([]models.AdminJob, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return adminJobs(doc), nil
}

// Dashboard returns the aggregate state served to admins: all jobs with
// names, the mechanic roster and the parts inventory, from one snapshot.
func (s *JobService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Dashboard{
		Jobs:      adminJobs(doc),
		Mechanics: doc.Mechanics(),
		Parts:     doc.Parts,
	}, nil
}

func adminJobs(doc *models.Document) []models.AdminJob {
	jobs := []models.AdminJob{}
	for _, job := range doc.Jobs {
		enriched := models.AdminJob{JobRecord: job}
		if customer := doc.FindUser(job.CustomerID); customer != nil {
			enriched.CustomerName = customer.FullName
		}
		if job.AssignedMechanicID != "" {
			if mechanic := doc.FindUser(job.AssignedMechanicID); mechanic != nil {
				enriched.MechanicName = mechanic.FullName
			}
		}
		jobs = append(jobs, enriched)
	}
	return jobs
}
