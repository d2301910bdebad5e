package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// stubStore is an in-memory Store whose change feeds the test drives by hand.
type stubStore struct {
	mu       sync.Mutex
	data     map[string]any
	events   map[string]chan struct{}
	watchErr error
}

func newStubStore() *stubStore {
	s := &stubStore{
		data:   make(map[string]any),
		events: make(map[string]chan struct{}),
	}
	for _, coll := range watchedCollections {
		ch := make(chan struct{}, 8)
		ch <- struct{}{} // initial signal, matching the store contract
		s.events[coll] = ch
	}
	return s
}

func (s *stubStore) Snapshot(_ context.Context, collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.data[collection]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *stubStore) Watch(_ context.Context, collection string) (*repository.Subscription, error) {
	if s.watchErr != nil {
		return nil, s.watchErr
	}
	return repository.NewSubscription(s.events[collection], nil), nil
}

func (s *stubStore) set(collection string, value any) {
	s.mu.Lock()
	s.data[collection] = value
	s.mu.Unlock()
}

func (s *stubStore) signal(collection string) {
	s.events[collection] <- struct{}{}
}

func startService(t *testing.T, store *stubStore) *Service {
	t.Helper()

	svc := NewService(store, nil)
	svc.now = func() time.Time { return testNow }

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	require.NoError(t, svc.Start(ctx))
	t.Cleanup(svc.Close)

	return svc
}

func TestServiceLoadsInitialSnapshots(t *testing.T) {
	store := newStubStore()
	store.set(repository.CollectionAnimals, []models.Animal{
		{TagNumber: "A-1", Status: models.AnimalSick},
		{TagNumber: "A-2", Status: models.AnimalHealthy},
	})
	store.set(repository.CollectionMilkRecords, []models.MilkRecord{{Quantity: 12, Date: "2024-03-02"}})
	store.set(repository.CollectionHealthRecords, []models.HealthRecord{})
	store.set(repository.CollectionFinancialRecords, []models.FinancialRecord{})

	svc := startService(t, store)

	require.Eventually(t, func() bool {
		return !svc.Current().Stats.Loading
	}, time.Second, 5*time.Millisecond)

	update := svc.Current()
	assert.Equal(t, 2, update.Stats.TotalAnimals)
	assert.Equal(t, 12.0, update.Stats.MilkThisMonthLiters)
	require.Len(t, update.Alerts, 1)
	assert.Equal(t, "A-1 needs medical attention", update.Alerts[0].Description)
}

func TestServiceRecomputesOnChange(t *testing.T) {
	store := newStubStore()
	store.set(repository.CollectionAnimals, []models.Animal{})
	store.set(repository.CollectionMilkRecords, []models.MilkRecord{})
	store.set(repository.CollectionHealthRecords, []models.HealthRecord{})
	store.set(repository.CollectionFinancialRecords, []models.FinancialRecord{})

	svc := startService(t, store)

	require.Eventually(t, func() bool {
		return !svc.Current().Stats.Loading
	}, time.Second, 5*time.Millisecond)

	store.set(repository.CollectionAnimals, []models.Animal{{TagNumber: "A-9", Status: models.AnimalHealthy}})
	store.signal(repository.CollectionAnimals)

	require.Eventually(t, func() bool {
		return svc.Current().Stats.TotalAnimals == 1
	}, time.Second, 5*time.Millisecond)
}

func TestServiceSubscribePushesUpdates(t *testing.T) {
	store := newStubStore()
	store.set(repository.CollectionAnimals, []models.Animal{})
	store.set(repository.CollectionMilkRecords, []models.MilkRecord{})
	store.set(repository.CollectionHealthRecords, []models.HealthRecord{})
	store.set(repository.CollectionFinancialRecords, []models.FinancialRecord{})

	svc := startService(t, store)

	require.Eventually(t, func() bool {
		return !svc.Current().Stats.Loading
	}, time.Second, 5*time.Millisecond)

	updates, cancel := svc.Subscribe()
	defer cancel()

	// The channel is primed with the current state.
	select {
	case update := <-updates:
		assert.False(t, update.Stats.Loading)
	case <-time.After(time.Second):
		t.Fatal("no primed update received")
	}

	store.set(repository.CollectionFinancialRecords, []models.FinancialRecord{
		{Amount: 75, Type: models.FinanceIncome, Date: "2024-03-10"},
	})
	store.signal(repository.CollectionFinancialRecords)

	require.Eventually(t, func() bool {
		select {
		case update := <-updates:
			return update.Stats.MonthlyRevenue == 75.0
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestServiceUnsubscribeClosesChannel(t *testing.T) {
	store := newStubStore()
	svc := startService(t, store)

	updates, cancel := svc.Subscribe()
	cancel()
	cancel() // cancelling twice is harmless

	// Drain the primed update, then observe the close.
	for {
		if _, ok := <-updates; !ok {
			return
		}
	}
}

func TestServiceStartFailsWhenWatchFails(t *testing.T) {
	store := newStubStore()
	store.watchErr = errors.New("change streams unavailable")

	svc := NewService(store, nil)
	assert.Error(t, svc.Start(context.Background()))
}
