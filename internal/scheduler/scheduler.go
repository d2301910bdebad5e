package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/farmdash/internal/config"
	"github.com/mamadbah2/farmdash/internal/domain/models"
	"github.com/mamadbah2/farmdash/internal/repository"
	"github.com/mamadbah2/farmdash/internal/repository/sheets"
	"github.com/mamadbah2/farmdash/internal/service/stats"
	"github.com/mamadbah2/farmdash/pkg/clients/notify"
)

// Scheduler manages the daily report job. The exporter and notifier sinks are
// optional; a failing sink is logged, never fatal.
type Scheduler struct {
	cron     *cron.Cron
	store    repository.RecordStore
	exporter sheets.Exporter
	notifier notify.Client
	cfg      config.Config
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, store repository.RecordStore, exporter sheets.Exporter, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local",
			zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		store:    store,
		exporter: exporter,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Start registers the daily report job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.runDailyReport); err != nil {
		s.logger.Error("failed to schedule daily report", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyReport() {
	s.logger.Info("generating daily report")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, alerts, err := s.buildReport(ctx)
	if err != nil {
		s.logger.Error("failed to build daily report", zap.Error(err))
		return
	}

	if _, err := s.store.Create(ctx, repository.CollectionDailyReports, report); err != nil {
		s.logger.Error("failed to persist daily report", zap.Error(err))
	}

	if s.exporter != nil {
		if err := s.exporter.AppendDailyReport(ctx, report); err != nil {
			s.logger.Error("failed to export daily report", zap.Error(err))
		}
	}

	if s.notifier != nil && len(alerts) > 0 {
		payload := notify.AlertPayload{
			Source:  "farmdash",
			SentAt:  report.CreatedAt,
			Alerts:  alerts,
			Summary: fmt.Sprintf("%d animals need attention", len(alerts)),
		}
		if err := s.notifier.SendAlerts(ctx, payload); err != nil {
			s.logger.Error("failed to push alerts", zap.Error(err))
		}
	}

	s.logger.Info("daily report completed", zap.Int("alerts", len(alerts)))
}

func (s *Scheduler) buildReport(ctx context.Context) (models.DailyReport, []stats.Alert, error) {
	animals := make([]models.Animal, 0)
	if err := s.store.Snapshot(ctx, repository.CollectionAnimals, &animals); err != nil {
		return models.DailyReport{}, nil, fmt.Errorf("load animals: %w", err)
	}

	milk := make([]models.MilkRecord, 0)
	if err := s.store.Snapshot(ctx, repository.CollectionMilkRecords, &milk); err != nil {
		return models.DailyReport{}, nil, fmt.Errorf("load milk records: %w", err)
	}

	health := make([]models.HealthRecord, 0)
	if err := s.store.Snapshot(ctx, repository.CollectionHealthRecords, &health); err != nil {
		return models.DailyReport{}, nil, fmt.Errorf("load health records: %w", err)
	}

	financial := make([]models.FinancialRecord, 0)
	if err := s.store.Snapshot(ctx, repository.CollectionFinancialRecords, &financial); err != nil {
		return models.DailyReport{}, nil, fmt.Errorf("load financial records: %w", err)
	}

	now := s.now()
	dashboard := stats.ComputeDashboardStats(animals, milk, health, financial, now)
	financials := stats.ComputeFinancialMetrics(financial, now)
	alerts := stats.ComputeAlerts(animals, health)

	report := models.DailyReport{
		Date:            now.Truncate(24 * time.Hour),
		TotalAnimals:    dashboard.TotalAnimals,
		NewAnimals:      dashboard.NewAnimalsThisMonth,
		MilkLiters:      dashboard.MilkThisMonthLiters,
		HealthAlerts:    dashboard.HealthAlerts,
		MonthlyRevenue:  financials.MonthlyRevenue,
		MonthlyExpenses: financials.MonthlyExpenses,
		NetProfit:       financials.NetProfit,
		CreatedAt:       now,
	}

	return report, alerts, nil
}
