package repository

import "context"

// Collection names used by the application.
const (
	CollectionAnimals            = "animals"
	CollectionHealthRecords      = "healthRecords"
	CollectionMilkRecords        = "milkRecords"
	CollectionFeedRecords        = "feedRecords"
	CollectionNutritionSchedules = "nutritionSchedules"
	CollectionFinancialRecords   = "financialRecords"
	CollectionUsers              = "users"
	CollectionDailyReports       = "dailyReports"
)

// RecordStore is the boundary to the live document store. Snapshots are always
// full collection states ordered by createdAt descending, never deltas.
type RecordStore interface {
	// Snapshot decodes the current full collection state into out, which must
	// be a pointer to a slice of the collection's record type.
	Snapshot(ctx context.Context, collection string, out any) error
	// Create appends a record and returns the store-assigned id.
	Create(ctx context.Context, collection string, doc any) (string, error)
	// Update patches the named fields of an existing record.
	Update(ctx context.Context, collection string, id string, fields map[string]any) error
	// Delete removes a record permanently.
	Delete(ctx context.Context, collection string, id string) error
	// Watch returns a subscription that signals once immediately and then on
	// every add, update or delete in the collection. Callers re-fetch a
	// Snapshot on each signal.
	Watch(ctx context.Context, collection string) (*Subscription, error)
}

// Subscription is a handle to a live collection feed. Cancel stops delivery;
// the events channel is closed afterwards.
type Subscription struct {
	events chan struct{}
	cancel context.CancelFunc
}

// NewSubscription builds a subscription around an event channel and a cancel
// function. Implementations (and test stubs) own the channel and must close
// it once delivery stops.
func NewSubscription(events chan struct{}, cancel context.CancelFunc) *Subscription {
	if cancel == nil {
		cancel = func() {}
	}
	return &Subscription{events: events, cancel: cancel}
}

// Events yields a signal per collection change.
func (s *Subscription) Events() <-chan struct{} {
	return s.events
}

// Cancel stops the subscription and any further recomputation driven by it.
func (s *Subscription) Cancel() {
	s.cancel()
}
