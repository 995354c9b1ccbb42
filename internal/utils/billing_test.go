package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apnrghor-backend/internal/domain"
)

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, int32(900), ApplyDiscount(1000, 10))
	assert.Equal(t, int32(1000), ApplyDiscount(1000, 0))
	assert.Equal(t, int32(0), ApplyDiscount(1000, 100))
	// Rounds to the nearest whole unit: 999 - 33% = 669.33 -> 669
	assert.Equal(t, int32(669), ApplyDiscount(999, 33))
	// 850 - 15% = 722.5 -> rounds up
	assert.Equal(t, int32(723), ApplyDiscount(850, 15))
}

func TestMonthIndex(t *testing.T) {
	idx, ok := MonthIndex("January")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = MonthIndex("December")
	assert.True(t, ok)
	assert.Equal(t, 11, idx)

	_, ok = MonthIndex("Janury")
	assert.False(t, ok)
}

func TestSortPaymentsChronologically(t *testing.T) {
	payments := []domain.Payment{
		{Month: "December", Year: 2024},
		{Month: "April", Year: 2025},
		{Month: "January", Year: 2025},
		{Month: "August", Year: 2024},
	}

	SortPaymentsChronologically(payments)

	assert.Equal(t, "August", payments[0].Month)
	assert.Equal(t, int32(2024), payments[0].Year)
	assert.Equal(t, "December", payments[1].Month)
	assert.Equal(t, "January", payments[2].Month)
	assert.Equal(t, int32(2025), payments[2].Year)
	assert.Equal(t, "April", payments[3].Month)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0%", FormatPercent(5, 0))
	assert.Equal(t, "50.00%", FormatPercent(5, 10))
	assert.Equal(t, "33.33%", FormatPercent(1, 3))
	assert.Equal(t, "100.00%", FormatPercent(10, 10))
}
