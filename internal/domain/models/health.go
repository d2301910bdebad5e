package models

import "errors"

// HealthRecordType enumerates the supported kinds of health events.
type HealthRecordType string

const (
	HealthCheckup     HealthRecordType = "checkup"
	HealthVaccination HealthRecordType = "vaccination"
	HealthTreatment   HealthRecordType = "treatment"
)

// HealthRecordStatus enumerates the lifecycle of a health event.
type HealthRecordStatus string

const (
	HealthScheduled HealthRecordStatus = "scheduled"
	HealthCompleted HealthRecordStatus = "completed"
	HealthCancelled HealthRecordStatus = "cancelled"
)

// HealthRecord captures a checkup, vaccination or treatment performed on an animal.
type HealthRecord struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	AnimalID        string             `json:"animalId" bson:"animalId" binding:"required"`
	AnimalTagNumber string             `json:"animalTagNumber" bson:"animalTagNumber"`
	Type            HealthRecordType   `json:"type" bson:"type" binding:"required"`
	Date            string             `json:"date" bson:"date" binding:"required"`
	Description     string             `json:"description" bson:"description" binding:"required"`
	PerformedBy     string             `json:"performedBy" bson:"performedBy"`
	Status          HealthRecordStatus `json:"status" bson:"status" binding:"required"`
	Notes           string             `json:"notes" bson:"notes"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
}

// Validate checks the enum and required-field invariants before a write.
func (h HealthRecord) Validate() error {
	if h.AnimalID == "" {
		return errors.New("animalId must not be empty")
	}
	if h.Description == "" {
		return errors.New("description must not be empty")
	}
	if h.Date == "" {
		return errors.New("date must not be empty")
	}
	switch h.Type {
	case HealthCheckup, HealthVaccination, HealthTreatment:
	default:
		return errors.New("type must be checkup, vaccination or treatment")
	}
	switch h.Status {
	case HealthScheduled, HealthCompleted, HealthCancelled:
	default:
		return errors.New("status must be scheduled, completed or cancelled")
	}
	return nil
}
