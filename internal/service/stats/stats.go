// Package stats derives the dashboard's summary metrics and alerts from raw
// record snapshots. Every function is pure and synchronous: it takes full
// snapshots plus the computation time and returns values, so a recompute on
// an unchanged snapshot is bit-identical.
package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/mamadbah2/farmdash/internal/domain/models"
)

const dateLayout = "2006-01-02"

// OutstandingBillsRate is the fixed heuristic applied to monthly expenses to
// estimate outstanding bills. It is not a real liability figure.
const OutstandingBillsRate = 0.2

// maxAlertsPerSource caps each alert source on the dashboard.
const maxAlertsPerSource = 2

// Animal-style status values read off health records when counting dashboard
// alerts. Health records using the scheduled/completed/cancelled lifecycle
// never match, so the count stays 0 unless a record carries one of these.
const (
	healthStatusSick        models.HealthRecordStatus = "sick"
	healthStatusQuarantined models.HealthRecordStatus = "quarantined"
)

// DashboardStats holds the four dashboard summary cells. When Loading is true
// a snapshot has not arrived yet and the numeric fields are placeholders.
type DashboardStats struct {
	Loading             bool    `json:"loading"`
	TotalAnimals        int     `json:"totalAnimals"`
	NewAnimalsThisMonth int     `json:"newAnimalsThisMonth"`
	MilkThisMonthLiters float64 `json:"milkThisMonthLiters"`
	HealthAlerts        int     `json:"healthAlerts"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
}

// Alert is a single dashboard alert entry.
type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// FinancialMetrics summarizes the current calendar month's transactions.
type FinancialMetrics struct {
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
	MonthlyExpenses  float64 `json:"monthlyExpenses"`
	NetProfit        float64 `json:"netProfit"`
	OutstandingBills float64 `json:"outstandingBills"`
}

// MilkMetrics summarizes the full milk record snapshot, not month-filtered.
type MilkMetrics struct {
	TotalProduction    float64 `json:"totalProduction"`
	QualityAPercentage float64 `json:"qualityAPercentage"`
	TotalRecords       int     `json:"totalRecords"`
}

// HealthTypeCounts is the per-type census of health records.
type HealthTypeCounts struct {
	Checkups     int `json:"checkups"`
	Vaccinations int `json:"vaccinations"`
	Treatments   int `json:"treatments"`
}

// RoleCensus counts users per role. Roles outside the fixed set of three are
// excluded from every bucket.
type RoleCensus struct {
	Admins        int `json:"admins"`
	Veterinarians int `json:"veterinarians"`
	Workers       int `json:"workers"`
}

// ComputeDashboardStats derives the four dashboard cells from the snapshots.
// A nil snapshot means the collection has not loaded yet; in that case all
// cells report the loading placeholder.
func ComputeDashboardStats(animals []models.Animal, milk []models.MilkRecord, health []models.HealthRecord, financial []models.FinancialRecord, now time.Time) DashboardStats {
	if animals == nil || milk == nil || health == nil || financial == nil {
		return DashboardStats{Loading: true}
	}

	var newAnimals int
	for _, a := range animals {
		if createdInMonth(a.CreatedAt, now) {
			newAnimals++
		}
	}

	var milkTotal float64
	for _, m := range milk {
		if dateInMonth(m.Date, now) {
			milkTotal += m.Quantity
		}
	}

	var alerts int
	for _, h := range health {
		if h.Status == healthStatusSick || h.Status == healthStatusQuarantined {
			alerts++
		}
	}

	var revenue float64
	for _, f := range financial {
		if f.Type == models.FinanceIncome && dateInMonth(f.Date, now) {
			revenue += f.Amount
		}
	}

	return DashboardStats{
		TotalAnimals:        len(animals),
		NewAnimalsThisMonth: newAnimals,
		MilkThisMonthLiters: Round1(milkTotal),
		HealthAlerts:        alerts,
		MonthlyRevenue:      Round2(revenue),
	}
}

// ComputeAlerts builds the dashboard alert list: up to two entries derived
// from health records, then up to two from sick animals, in that fixed order.
// No de-duplication is performed when both sources reference the same animal.
func ComputeAlerts(animals []models.Animal, health []models.HealthRecord) []Alert {
	alerts := make([]Alert, 0, 2*maxAlertsPerSource)

	for _, h := range health {
		if h.Status != healthStatusSick && h.Status != healthStatusQuarantined {
			continue
		}
		alerts = append(alerts, Alert{
			Title:       "Health Alert",
			Description: fmt.Sprintf("Animal #%s needs attention", h.AnimalID),
			Severity:    "error",
		})
		if len(alerts) == maxAlertsPerSource {
			break
		}
	}

	var fromAnimals int
	for _, a := range animals {
		if a.Status != models.AnimalSick {
			continue
		}
		alerts = append(alerts, Alert{
			Title:       "Animal Health Check Required",
			Description: fmt.Sprintf("%s needs medical attention", a.TagNumber),
			Severity:    "warning",
		})
		fromAnimals++
		if fromAnimals == maxAlertsPerSource {
			break
		}
	}

	return alerts
}

// ComputeFinancialMetrics sums the current month's income and expenses.
// Outstanding bills are estimated as a fixed share of monthly expenses.
func ComputeFinancialMetrics(financial []models.FinancialRecord, now time.Time) FinancialMetrics {
	var revenue, expenses float64
	for _, f := range financial {
		if !dateInMonth(f.Date, now) {
			continue
		}
		switch f.Type {
		case models.FinanceIncome:
			revenue += f.Amount
		case models.FinanceExpense:
			expenses += f.Amount
		}
	}

	return FinancialMetrics{
		MonthlyRevenue:   Round2(revenue),
		MonthlyExpenses:  Round2(expenses),
		NetProfit:        Round2(revenue - expenses),
		OutstandingBills: Round2(expenses * OutstandingBillsRate),
	}
}

// ComputeMilkMetrics summarizes the full milk snapshot. An empty snapshot
// yields all zeroes, never a division by zero.
func ComputeMilkMetrics(milk []models.MilkRecord) MilkMetrics {
	if len(milk) == 0 {
		return MilkMetrics{}
	}

	var total float64
	var gradeA int
	for _, m := range milk {
		total += m.Quantity
		if m.Quality == models.QualityA {
			gradeA++
		}
	}

	return MilkMetrics{
		TotalProduction:    Round2(total),
		QualityAPercentage: Round1(float64(gradeA) / float64(len(milk)) * 100),
		TotalRecords:       len(milk),
	}
}

// ComputeHealthTypeCounts counts health records per event type.
func ComputeHealthTypeCounts(health []models.HealthRecord) HealthTypeCounts {
	var counts HealthTypeCounts
	for _, h := range health {
		switch h.Type {
		case models.HealthCheckup:
			counts.Checkups++
		case models.HealthVaccination:
			counts.Vaccinations++
		case models.HealthTreatment:
			counts.Treatments++
		}
	}
	return counts
}

// CountByRole counts the users holding the given role.
func CountByRole(users []models.User, role models.Role) int {
	var n int
	for _, u := range users {
		if u.Role == role {
			n++
		}
	}
	return n
}

// ComputeRoleCensus builds the three-role census shown on the users page.
func ComputeRoleCensus(users []models.User) RoleCensus {
	return RoleCensus{
		Admins:        CountByRole(users, models.RoleAdmin),
		Veterinarians: CountByRole(users, models.RoleVeterinarian),
		Workers:       CountByRole(users, models.RoleWorker),
	}
}

// Round1 rounds to one decimal place, the contract for liter values.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, the contract for currency values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// dateInMonth reports whether the record's calendar-date string falls in the
// same month as now. Only the month is compared, never the year, matching the
// dashboard's original period semantics. Strings longer than a plain date are
// truncated and unparseable dates never contribute.
func dateInMonth(value string, now time.Time) bool {
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return parsed.Month() == now.Month()
}

// createdInMonth reports whether a millisecond creation timestamp falls in
// the same month as now, evaluated in now's location.
func createdInMonth(millis int64, now time.Time) bool {
	if millis == 0 {
		return false
	}
	return time.UnixMilli(millis).In(now.Location()).Month() == now.Month()
}
