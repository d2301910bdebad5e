package models

import "errors"

// FinancialRecordType distinguishes money coming in from money going out.
type FinancialRecordType string

const (
	FinanceIncome  FinancialRecordType = "income"
	FinanceExpense FinancialRecordType = "expense"
)

// FinancialRecord captures a single income or expense transaction.
type FinancialRecord struct {
	ID          string              `json:"id" bson:"_id,omitempty"`
	Description string              `json:"description" bson:"description" binding:"required"`
	Amount      float64             `json:"amount" bson:"amount"`
	Date        string              `json:"date" bson:"date" binding:"required"`
	Type        FinancialRecordType `json:"type" bson:"type" binding:"required"`
	Category    string              `json:"category" bson:"category" binding:"required"`
	CreatedBy   string              `json:"createdBy" bson:"createdBy"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
}

// Validate checks the enum and range invariants before a write.
func (f FinancialRecord) Validate() error {
	if f.Description == "" {
		return errors.New("description must not be empty")
	}
	if f.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if f.Date == "" {
		return errors.New("date must not be empty")
	}
	if f.Category == "" {
		return errors.New("category must not be empty")
	}
	switch f.Type {
	case FinanceIncome, FinanceExpense:
		return nil
	default:
		return errors.New("type must be income or expense")
	}
}
