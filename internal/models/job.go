package models

import (
	"time"
)

// JobStatus represents the lifecycle status of a job record.
type JobStatus string

const (
	StatusPending          JobStatus = "Pending"
	StatusAssigned         JobStatus = "Assigned"
	StatusInProgress       JobStatus = "In Progress"
	StatusReadyForDispatch JobStatus = "Ready for Dispatch"
	StatusDispatched       JobStatus = "Dispatched"
)

// IsMechanicSettableStatus checks whether a status may be set by a mechanic
// through the status update operation. Transitions are deliberately
// permissive: any of the three may follow any prior status.
func IsMechanicSettableStatus(status JobStatus) bool {
	switch status {
	case StatusInProgress, StatusReadyForDispatch, StatusDispatched:
		return true
	default:
		return false
	}
}

// PartUsage is one coalesced line of parts consumed against a job. PartName
// is captured at logging time and not re-resolved later, so renaming a part
// does not rewrite historical logs.
type PartUsage struct {
	PartID   string `json:"part_id" bson:"part_id"`
	PartName string `json:"part_name" bson:"part_name"`
	Quantity int    `json:"quantity" bson:"quantity"`
}

// JobRecord represents one customer service request through its full
// lifecycle. Records are never deleted in normal operation.
type JobRecord struct {
	ID                 string      `json:"id" bson:"id"`
	CustomerID         string      `json:"customer_id" bson:"customer_id"`
	VehiclePlate       string      `json:"vehicle_plate" bson:"vehicle_plate"`
	IssueDescription   string      `json:"issue_description" bson:"issue_description"`
	Status             JobStatus   `json:"status" bson:"status"`
	AssignedMechanicID string      `json:"assigned_mechanic_id,omitempty" bson:"assigned_mechanic_id,omitempty"`
	PartsUsed          []PartUsage `json:"parts_used" bson:"parts_used"`
	CreatedAt          time.Time   `json:"created_at" bson:"created_at"`
	DispatchedAt       *time.Time  `json:"dispatched_at,omitempty" bson:"dispatched_at,omitempty"`
}

// CreateJobRequest represents a customer's service request submission
type CreateJobRequest struct {
	VehiclePlate     string `json:"vehicle_plate"`
	IssueDescription string `json:"issue_description"`
}

// UpdateStatusRequest represents a mechanic's status update
type UpdateStatusRequest struct {
	Status JobStatus `json:"status"`
}

// LogPartRequest represents a mechanic logging parts consumed against a job
type LogPartRequest struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// AssignMechanicRequest represents an admin assigning a mechanic to a job
type AssignMechanicRequest struct {
	MechanicID string `json:"mechanic_id"`
}

// JobSummary is the customer-facing view of a job.
type JobSummary struct {
	JobID     string    `json:"job_id"`
	Vehicle   string    `json:"vehicle"`
	Issue     string    `json:"issue"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// MechanicJob is a job enriched with the customer's contact details,
// served to the assigned mechanic.
type MechanicJob struct {
	JobRecord
	CustomerName   string `json:"customer_name"`
	CustomerMobile string `json:"customer_mobile"`
}

// AdminJob is a job enriched with resolved customer and mechanic display
// names, for administrative review.
type AdminJob struct {
	JobRecord
	CustomerName string `json:"customer_name"`
	MechanicName string `json:"mechanic_name,omitempty"`
}

// Dashboard bundles the aggregate state served to admins.
type Dashboard struct {
	Jobs      []AdminJob `json:"jobs"`
	Mechanics []User     `json:"mechanics"`
	Parts     []Part     `json:"parts"`
}
