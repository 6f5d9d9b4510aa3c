package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestItemForMaterial(t *testing.T) {
	p := domain.Purchase{
		Items: []domain.PurchaseItem{
			{MaterialName: "Loose Copper", TotalPrice: decimal.NewFromInt(100)},
			{MaterialID: strPtr("mat-1"), MaterialName: "Copper", TotalPrice: decimal.NewFromInt(200)},
			{MaterialID: strPtr("mat-1"), MaterialName: "Copper", TotalPrice: decimal.NewFromInt(300)},
		},
	}

	// First matching item wins when the material repeats.
	item := p.ItemForMaterial("mat-1")
	assert.NotNil(t, item)
	assert.True(t, item.TotalPrice.Equal(decimal.NewFromInt(200)))

	assert.Nil(t, p.ItemForMaterial("mat-2"))
	assert.Nil(t, domain.Purchase{}.ItemForMaterial("mat-1"))
}

func TestItemsTotal(t *testing.T) {
	p := domain.Purchase{
		Items: []domain.PurchaseItem{
			{TotalPrice: decimal.RequireFromString("10.50")},
			{TotalPrice: decimal.RequireFromString("4.25")},
		},
		GrandTotal: decimal.NewFromInt(12),
	}

	assert.True(t, p.ItemsTotal().Equal(decimal.RequireFromString("14.75")))
	// GrandTotal may legitimately differ from the item sum.
	assert.False(t, p.ItemsTotal().Equal(p.GrandTotal))

	assert.True(t, domain.Purchase{}.ItemsTotal().IsZero())
}

func TestExpenseHasTag(t *testing.T) {
	e := domain.Expense{Tags: []domain.Tag{{TagID: "t1"}, {TagID: "t2"}}}
	assert.True(t, e.HasTag("t2"))
	assert.False(t, e.HasTag("t3"))
	assert.False(t, domain.Expense{}.HasTag("t1"))
}
