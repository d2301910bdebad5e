package models

import "errors"

// FeedStatus enumerates feed inventory levels.
type FeedStatus string

const (
	FeedGood     FeedStatus = "Good"
	FeedLow      FeedStatus = "Low"
	FeedCritical FeedStatus = "Critical"
)

// FeedRecord captures a feed inventory line, stock in kilograms.
type FeedRecord struct {
	ID               string     `json:"id" bson:"_id,omitempty"`
	Name             string     `json:"name" bson:"name" binding:"required"`
	Stock            float64    `json:"stock" bson:"stock"`
	Status           FeedStatus `json:"status" bson:"status" binding:"required"`
	LastUpdated      string     `json:"lastUpdated" bson:"lastUpdated"`
	NutritionalValue string     `json:"nutritionalValue" bson:"nutritionalValue" binding:"required"`
	CreatedBy        string     `json:"createdBy" bson:"createdBy"`
	CreatedAt        int64      `json:"createdAt" bson:"createdAt"`
}

// Validate checks the enum and required-field invariants before a write.
func (f FeedRecord) Validate() error {
	if f.Name == "" {
		return errors.New("name must not be empty")
	}
	if f.NutritionalValue == "" {
		return errors.New("nutritionalValue must not be empty")
	}
	switch f.Status {
	case FeedGood, FeedLow, FeedCritical:
		return nil
	default:
		return errors.New("status must be Good, Low or Critical")
	}
}

// NutritionSchedule captures a recurring feeding slot for part of the herd.
type NutritionSchedule struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Time      string `json:"time" bson:"time" binding:"required"`
	Type      string `json:"type" bson:"type" binding:"required"`
	Quantity  string `json:"quantity" bson:"quantity"`
	HerdSize  int    `json:"herdSize" bson:"herdSize"`
	CreatedBy string `json:"createdBy" bson:"createdBy"`
	CreatedAt int64  `json:"createdAt" bson:"createdAt"`
}

// Validate checks the required-field and range invariants before a write.
func (n NutritionSchedule) Validate() error {
	if n.Time == "" {
		return errors.New("time must not be empty")
	}
	if n.Type == "" {
		return errors.New("type must not be empty")
	}
	if n.HerdSize < 0 {
		return errors.New("herdSize must not be negative")
	}
	return nil
}
