package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a tagged ledger entry for money spent outside of purchases.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary key (UUID)
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"` // >= 0
	Tags        []Tag           `json:"tags"`   // Resolved; dangling references already dropped
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// HasTag reports whether the expense carries the given tag.
func (e Expense) HasTag(tagID string) bool {
	for _, t := range e.Tags {
		if t.TagID == tagID {
			return true
		}
	}
	return false
}
