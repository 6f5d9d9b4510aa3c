package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wazeer/wazeer_backend/internal/core/domain"
)

func TestPeriodContains(t *testing.T) {
	// Anchor mid-month, late evening, so day-boundary behaviour is visible.
	now := time.Date(2025, time.March, 15, 23, 45, 0, 0, time.UTC)

	tests := []struct {
		name   string
		period domain.Period
		ts     time.Time
		want   bool
	}{
		{
			name:   "all matches everything",
			period: domain.Period{Kind: domain.PeriodAll},
			ts:     time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "zero-valued period matches everything",
			period: domain.Period{},
			ts:     time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "today matches same calendar day regardless of time",
			period: domain.Period{Kind: domain.PeriodToday},
			ts:     time.Date(2025, time.March, 15, 0, 0, 1, 0, time.UTC),
			want:   true,
		},
		{
			name:   "today rejects yesterday",
			period: domain.Period{Kind: domain.PeriodToday},
			ts:     time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC),
			want:   false,
		},
		{
			name:   "this month includes first day",
			period: domain.Period{Kind: domain.PeriodThisMonth},
			ts:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "this month includes last day",
			period: domain.Period{Kind: domain.PeriodThisMonth},
			ts:     time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
			want:   true,
		},
		{
			name:   "this month rejects previous month",
			period: domain.Period{Kind: domain.PeriodThisMonth},
			ts:     time.Date(2025, time.February, 28, 12, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "custom bounds are inclusive",
			period: domain.NewCustomPeriod("2025-03-10", "2025-03-12"),
			ts:     time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "custom rejects outside range",
			period: domain.NewCustomPeriod("2025-03-10", "2025-03-12"),
			ts:     time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "custom with from after to matches nothing",
			period: domain.NewCustomPeriod("2025-03-12", "2025-03-10"),
			ts:     time.Date(2025, time.March, 11, 12, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "monthYear matches exact month",
			period: domain.NewMonthYearPeriod(2024, time.December),
			ts:     time.Date(2024, time.December, 25, 9, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "monthYear rejects same month of another year",
			period: domain.NewMonthYearPeriod(2024, time.December),
			ts:     time.Date(2025, time.December, 25, 9, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Contains(tt.ts, now))
		})
	}
}

func TestPeriodIsAll(t *testing.T) {
	assert.True(t, domain.Period{}.IsAll())
	assert.True(t, domain.Period{Kind: domain.PeriodAll}.IsAll())
	assert.False(t, domain.Period{Kind: domain.PeriodToday}.IsAll())
	assert.False(t, domain.NewCustomPeriod("2025-01-01", "2025-01-31").IsAll())
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "All", domain.Period{}.Label())
	assert.Equal(t, "Today", domain.Period{Kind: domain.PeriodToday}.Label())
	assert.Equal(t, "This Month", domain.Period{Kind: domain.PeriodThisMonth}.Label())
	assert.Equal(t, "2025-01-01 to 2025-01-31", domain.NewCustomPeriod("2025-01-01", "2025-01-31").Label())
	assert.Equal(t, "December 2024", domain.NewMonthYearPeriod(2024, time.December).Label())
}
