package models

import "errors"

// MilkQuality enumerates the milk grading scale.
type MilkQuality string

const (
	QualityA MilkQuality = "A"
	QualityB MilkQuality = "B"
	QualityC MilkQuality = "C"
)

// MilkRecord captures a single milking entry, quantity in liters.
type MilkRecord struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	AnimalID  string      `json:"animalId" bson:"animalId" binding:"required"`
	Quantity  float64     `json:"quantity" bson:"quantity"`
	Date      string      `json:"date" bson:"date" binding:"required"`
	Quality   MilkQuality `json:"quality" bson:"quality" binding:"required"`
	Notes     string      `json:"notes" bson:"notes"`
	CreatedBy string      `json:"createdBy" bson:"createdBy"`
	CreatedAt int64       `json:"createdAt" bson:"createdAt"`
}

// Validate checks the enum and range invariants before a write.
func (m MilkRecord) Validate() error {
	if m.AnimalID == "" {
		return errors.New("animalId must not be empty")
	}
	if m.Quantity < 0 {
		return errors.New("quantity must not be negative")
	}
	if m.Date == "" {
		return errors.New("date must not be empty")
	}
	switch m.Quality {
	case QualityA, QualityB, QualityC:
		return nil
	default:
		return errors.New("quality must be A, B or C")
	}
}
