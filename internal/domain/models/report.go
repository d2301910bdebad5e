package models

import "time"

// DailyReport is the aggregated end-of-day snapshot persisted by the scheduler.
type DailyReport struct {
	Date            time.Time `bson:"date" json:"date"`
	TotalAnimals    int       `bson:"total_animals" json:"total_animals"`
	NewAnimals      int       `bson:"new_animals" json:"new_animals"`
	MilkLiters      float64   `bson:"milk_liters" json:"milk_liters"`
	HealthAlerts    int       `bson:"health_alerts" json:"health_alerts"`
	MonthlyRevenue  float64   `bson:"monthly_revenue" json:"monthly_revenue"`
	MonthlyExpenses float64   `bson:"monthly_expenses" json:"monthly_expenses"`
	NetProfit       float64   `bson:"net_profit" json:"net_profit"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
