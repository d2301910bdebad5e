package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmdash/internal/domain/models"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func millisIn(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 10, 0, 0, 0, time.UTC).UnixMilli()
}

func TestComputeDashboardStatsLoadingUntilAllSnapshotsArrive(t *testing.T) {
	got := ComputeDashboardStats(nil, []models.MilkRecord{}, []models.HealthRecord{}, []models.FinancialRecord{}, testNow)
	assert.True(t, got.Loading)

	got = ComputeDashboardStats([]models.Animal{}, []models.MilkRecord{}, nil, []models.FinancialRecord{}, testNow)
	assert.True(t, got.Loading)

	got = ComputeDashboardStats([]models.Animal{}, []models.MilkRecord{}, []models.HealthRecord{}, []models.FinancialRecord{}, testNow)
	assert.False(t, got.Loading)
	assert.Equal(t, 0, got.TotalAnimals)
}

func TestComputeDashboardStats(t *testing.T) {
	animals := []models.Animal{
		{TagNumber: "A-1", Status: models.AnimalHealthy, CreatedAt: millisIn(2024, time.March, 2)},
		{TagNumber: "A-2", Status: models.AnimalSick, CreatedAt: millisIn(2024, time.February, 20)},
		{TagNumber: "A-3", Status: models.AnimalHealthy, CreatedAt: millisIn(2024, time.March, 14)},
	}
	milk := []models.MilkRecord{
		{Quantity: 10.25, Date: "2024-03-01"},
		{Quantity: 5, Date: "2024-03-10"},
		{Quantity: 99, Date: "2024-02-28"},
		{Quantity: 7, Date: "not-a-date"},
	}
	health := []models.HealthRecord{
		{AnimalID: "a1", Status: models.HealthCompleted},
		{AnimalID: "a2", Status: "sick"},
		{AnimalID: "a3", Status: "quarantined"},
	}
	financial := []models.FinancialRecord{
		{Amount: 100, Type: models.FinanceIncome, Date: "2024-03-05"},
		{Amount: 50.5, Type: models.FinanceIncome, Date: "2024-03-20"},
		{Amount: 75, Type: models.FinanceIncome, Date: "2024-01-05"},
		{Amount: 40, Type: models.FinanceExpense, Date: "2024-03-05"},
	}

	got := ComputeDashboardStats(animals, milk, health, financial, testNow)

	assert.False(t, got.Loading)
	assert.Equal(t, 3, got.TotalAnimals)
	assert.Equal(t, 2, got.NewAnimalsThisMonth)
	assert.Equal(t, 15.3, got.MilkThisMonthLiters)
	assert.Equal(t, 2, got.HealthAlerts)
	assert.Equal(t, 150.5, got.MonthlyRevenue)
}

// The alert count reads the status attribute off health records even though
// their lifecycle values are scheduled/completed/cancelled, so a snapshot
// using only lifecycle values always counts zero.
func TestComputeDashboardStatsHealthAlertsIgnoreLifecycleStatuses(t *testing.T) {
	health := []models.HealthRecord{
		{Status: models.HealthScheduled},
		{Status: models.HealthCompleted},
		{Status: models.HealthCancelled},
	}

	got := ComputeDashboardStats([]models.Animal{}, []models.MilkRecord{}, health, []models.FinancialRecord{}, testNow)
	assert.Equal(t, 0, got.HealthAlerts)
}

func TestMonthFilterIgnoresYear(t *testing.T) {
	milk := []models.MilkRecord{
		{Quantity: 4, Date: "2019-03-10"},
		{Quantity: 6, Date: "2024-03-10"},
		{Quantity: 8, Date: "2024-04-10"},
	}

	got := ComputeDashboardStats([]models.Animal{}, milk, []models.HealthRecord{}, []models.FinancialRecord{}, testNow)
	assert.Equal(t, 10.0, got.MilkThisMonthLiters)
}

func TestComputeAlertsCapsAndOrder(t *testing.T) {
	health := []models.HealthRecord{
		{AnimalID: "h1", Status: "sick"},
		{AnimalID: "h2", Status: models.HealthCompleted},
		{AnimalID: "h3", Status: "quarantined"},
		{AnimalID: "h4", Status: "sick"},
	}
	animals := []models.Animal{
		{TagNumber: "T-1", Status: models.AnimalSick},
		{TagNumber: "T-2", Status: models.AnimalHealthy},
		{TagNumber: "T-3", Status: models.AnimalSick},
		{TagNumber: "T-4", Status: models.AnimalSick},
	}

	alerts := ComputeAlerts(animals, health)
	require.Len(t, alerts, 4)

	assert.Equal(t, "Health Alert", alerts[0].Title)
	assert.Equal(t, "Animal #h1 needs attention", alerts[0].Description)
	assert.Equal(t, "Animal #h3 needs attention", alerts[1].Description)
	assert.Equal(t, "Animal Health Check Required", alerts[2].Title)
	assert.Equal(t, "T-1 needs medical attention", alerts[2].Description)
	assert.Equal(t, "T-3 needs medical attention", alerts[3].Description)
}

func TestComputeAlertsNoDeduplicationAcrossSources(t *testing.T) {
	health := []models.HealthRecord{{AnimalID: "a1", AnimalTagNumber: "T-1", Status: "sick"}}
	animals := []models.Animal{{ID: "a1", TagNumber: "T-1", Status: models.AnimalSick}}

	alerts := ComputeAlerts(animals, health)
	require.Len(t, alerts, 2)
}

func TestComputeAlertsEmpty(t *testing.T) {
	assert.Empty(t, ComputeAlerts(nil, nil))
}

func TestComputeFinancialMetrics(t *testing.T) {
	financial := []models.FinancialRecord{
		{Amount: 100, Type: models.FinanceIncome, Date: "2024-03-01"},
		{Amount: 40, Type: models.FinanceExpense, Date: "2024-03-02"},
		{Amount: 1000, Type: models.FinanceIncome, Date: "2024-02-01"},
	}

	got := ComputeFinancialMetrics(financial, testNow)
	assert.Equal(t, 100.0, got.MonthlyRevenue)
	assert.Equal(t, 40.0, got.MonthlyExpenses)
	assert.Equal(t, 60.0, got.NetProfit)
	assert.Equal(t, 8.0, got.OutstandingBills)
}

func TestComputeFinancialMetricsEmpty(t *testing.T) {
	got := ComputeFinancialMetrics(nil, testNow)
	assert.Equal(t, FinancialMetrics{}, got)
}

func TestComputeMilkMetrics(t *testing.T) {
	milk := []models.MilkRecord{
		{Quantity: 10, Quality: models.QualityA},
		{Quantity: 5, Quality: models.QualityB},
	}

	got := ComputeMilkMetrics(milk)
	assert.Equal(t, 15.0, got.TotalProduction)
	assert.Equal(t, 50.0, got.QualityAPercentage)
	assert.Equal(t, 2, got.TotalRecords)
}

func TestComputeMilkMetricsEmpty(t *testing.T) {
	got := ComputeMilkMetrics(nil)
	assert.Equal(t, MilkMetrics{}, got)
}

func TestComputeMilkMetricsNotMonthFiltered(t *testing.T) {
	milk := []models.MilkRecord{
		{Quantity: 10, Quality: models.QualityA, Date: "2020-01-01"},
		{Quantity: 20, Quality: models.QualityC, Date: "1999-12-31"},
	}

	got := ComputeMilkMetrics(milk)
	assert.Equal(t, 30.0, got.TotalProduction)
}

func TestCountByRole(t *testing.T) {
	users := []models.User{
		{Role: models.RoleAdmin},
		{Role: models.RoleWorker},
		{Role: models.RoleWorker},
		{Role: "intern"},
	}

	assert.Equal(t, 1, CountByRole(users, models.RoleAdmin))
	assert.Equal(t, 0, CountByRole(users, models.RoleVeterinarian))
	assert.Equal(t, 2, CountByRole(users, models.RoleWorker))

	census := ComputeRoleCensus(users)
	assert.Equal(t, RoleCensus{Admins: 1, Veterinarians: 0, Workers: 2}, census)
}

func TestComputeHealthTypeCounts(t *testing.T) {
	health := []models.HealthRecord{
		{Type: models.HealthCheckup},
		{Type: models.HealthCheckup},
		{Type: models.HealthVaccination},
		{Type: models.HealthTreatment},
	}

	got := ComputeHealthTypeCounts(health)
	assert.Equal(t, HealthTypeCounts{Checkups: 2, Vaccinations: 1, Treatments: 1}, got)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	animals := []models.Animal{{TagNumber: "A-1", Status: models.AnimalSick, CreatedAt: millisIn(2024, time.March, 1)}}
	milk := []models.MilkRecord{{Quantity: 3.33, Quality: models.QualityA, Date: "2024-03-03"}}
	health := []models.HealthRecord{{AnimalID: "a1", Status: "quarantined"}}
	financial := []models.FinancialRecord{{Amount: 12.345, Type: models.FinanceIncome, Date: "2024-03-04"}}

	first := ComputeDashboardStats(animals, milk, health, financial, testNow)
	second := ComputeDashboardStats(animals, milk, health, financial, testNow)
	assert.Equal(t, first, second)

	assert.Equal(t, ComputeAlerts(animals, health), ComputeAlerts(animals, health))
	assert.Equal(t, ComputeFinancialMetrics(financial, testNow), ComputeFinancialMetrics(financial, testNow))
	assert.Equal(t, ComputeMilkMetrics(milk), ComputeMilkMetrics(milk))
}

func TestRoundingHelpers(t *testing.T) {
	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, 1.4, Round1(1.44))
	assert.Equal(t, 10.13, Round2(10.125))
}
