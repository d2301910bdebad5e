// Package dashboard keeps a live view of the four dashboard collections and
// republishes recomputed stats and alerts whenever the store signals a change.
package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/service/stats"
)

// Store is the slice of the record store the watcher needs.
type Store interface {
	Snapshot(ctx context.Context, collection string, out any) error
	Watch(ctx context.Context, collection string) (*repository.Subscription, error)
}

// Update is the payload pushed to stream subscribers after each recompute.
type Update struct {
	Stats  stats.DashboardStats `json:"stats"`
	Alerts []stats.Alert        `json:"alerts"`
}

// Service subscribes to the dashboard collections and recomputes the derived
// metrics on a single goroutine. Snapshots are replaced wholesale on every
// change; there is no incremental aggregation state.
type Service struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	mu        sync.Mutex
	animals   []models.Animal
	milk      []models.MilkRecord
	health    []models.HealthRecord
	financial []models.FinancialRecord
	stats     stats.DashboardStats
	alerts    []stats.Alert
	subs      map[int]chan Update
	nextSubID int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService wires a dashboard watcher. Nothing runs until Start.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
		stats:  stats.DashboardStats{Loading: true},
		subs:   make(map[int]chan Update),
		done:   make(chan struct{}),
	}
}

var watchedCollections = []string{
	repository.CollectionAnimals,
	repository.CollectionMilkRecords,
	repository.CollectionHealthRecords,
	repository.CollectionFinancialRecords,
}

// Start opens one subscription per dashboard collection and launches the
// recompute loop. The initial published state reports loading until every
// collection has delivered its first snapshot.
func (s *Service) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	refresh := make(chan string)

	for _, coll := range watchedCollections {
		sub, err := s.store.Watch(ctx, coll)
		if err != nil {
			cancel()
			s.cancel = nil
			return err
		}

		go func(coll string, sub *repository.Subscription) {
			defer sub.Cancel()
			for {
				select {
				case <-ctx.Done():
					return
				case _, ok := <-sub.Events():
					if !ok {
						return
					}
					select {
					case refresh <- coll:
					case <-ctx.Done():
						return
					}
				}
			}
		}(coll, sub)
	}

	go s.run(ctx, refresh)
	return nil
}

func (s *Service) run(ctx context.Context, refresh <-chan string) {
	defer close(s.done)

	for {
		select {
		case <-ctx.Done():
			return
		case coll := <-refresh:
			if err := s.reload(ctx, coll); err != nil {
				s.logger.Error("snapshot reload failed",
					zap.String("collection", coll), zap.Error(err))
				continue
			}
			s.recompute()
		}
	}
}

func (s *Service) reload(ctx context.Context, collection string) error {
	switch collection {
	case repository.CollectionAnimals:
		animals := make([]models.Animal, 0)
		if err := s.store.Snapshot(ctx, collection, &animals); err != nil {
			return err
		}
		s.mu.Lock()
		s.animals = animals
		s.mu.Unlock()
	case repository.CollectionMilkRecords:
		milk := make([]models.MilkRecord, 0)
		if err := s.store.Snapshot(ctx, collection, &milk); err != nil {
			return err
		}
		s.mu.Lock()
		s.milk = milk
		s.mu.Unlock()
	case repository.CollectionHealthRecords:
		health := make([]models.HealthRecord, 0)
		if err := s.store.Snapshot(ctx, collection, &health); err != nil {
			return err
		}
		s.mu.Lock()
		s.health = health
		s.mu.Unlock()
	case repository.CollectionFinancialRecords:
		financial := make([]models.FinancialRecord, 0)
		if err := s.store.Snapshot(ctx, collection, &financial); err != nil {
			return err
		}
		s.mu.Lock()
		s.financial = financial
		s.mu.Unlock()
	}
	return nil
}

func (s *Service) recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = stats.ComputeDashboardStats(s.animals, s.milk, s.health, s.financial, s.now())
	s.alerts = stats.ComputeAlerts(s.animals, s.health)

	update := Update{Stats: s.stats, Alerts: s.alerts}
	for _, ch := range s.subs {
		// Coalesce: replace a pending update the subscriber has not read yet.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- update:
		default:
		}
	}
}

// Current returns the latest computed stats and alerts.
func (s *Service) Current() Update {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Update{Stats: s.stats, Alerts: s.alerts}
}

// Subscribe registers a stream consumer. The channel is primed with the
// current state; the returned function cancels the subscription.
func (s *Service) Subscribe() (<-chan Update, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan Update, 1)
	ch <- Update{Stats: s.stats, Alerts: s.alerts}
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
}

// Close cancels all subscriptions and waits for the recompute loop to exit.
func (s *Service) Close() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}
