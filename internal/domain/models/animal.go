package models

import "errors"

// AnimalStatus enumerates the health states an animal can be in.
type AnimalStatus string

const (
	AnimalHealthy     AnimalStatus = "healthy"
	AnimalSick        AnimalStatus = "sick"
	AnimalQuarantined AnimalStatus = "quarantined"
)

// AnimalGender enumerates the accepted gender values.
type AnimalGender string

const (
	GenderMale   AnimalGender = "male"
	GenderFemale AnimalGender = "female"
)

// Animal represents a single animal in the herd registry.
type Animal struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	TagNumber string       `json:"tagNumber" bson:"tagNumber" binding:"required"`
	Breed     string       `json:"breed" bson:"breed" binding:"required"`
	BirthDate string       `json:"birthDate" bson:"birthDate" binding:"required"`
	Gender    AnimalGender `json:"gender" bson:"gender" binding:"required"`
	Status    AnimalStatus `json:"status" bson:"status" binding:"required"`
	Notes     string       `json:"notes" bson:"notes"`
	CreatedBy string       `json:"createdBy" bson:"createdBy"`
	CreatedAt int64        `json:"createdAt" bson:"createdAt"`
}

// Validate checks the enum and required-field invariants before a write.
func (a Animal) Validate() error {
	if a.TagNumber == "" {
		return errors.New("tagNumber must not be empty")
	}
	if a.Breed == "" {
		return errors.New("breed must not be empty")
	}
	if a.BirthDate == "" {
		return errors.New("birthDate must not be empty")
	}
	switch a.Gender {
	case GenderMale, GenderFemale:
	default:
		return errors.New("gender must be male or female")
	}
	return ValidateAnimalStatus(a.Status)
}

// ValidateAnimalStatus reports whether the status belongs to the animal enum.
func ValidateAnimalStatus(status AnimalStatus) error {
	switch status {
	case AnimalHealthy, AnimalSick, AnimalQuarantined:
		return nil
	default:
		return errors.New("status must be healthy, sick or quarantined")
	}
}
