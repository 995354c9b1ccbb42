package utils

import (
	"fmt"
	"math"
	"sort"

	"apnrghor-backend/internal/domain"
)

// monthIndex fixes the calendar position of each month name so that
// payment history sorts in calendar order instead of lexical order.
var monthIndex = map[string]int{
	"January":   0,
	"February":  1,
	"March":     2,
	"April":     3,
	"May":       4,
	"June":      5,
	"July":      6,
	"August":    7,
	"September": 8,
	"October":   9,
	"November":  10,
	"December":  11,
}

// MonthIndex returns the zero-based calendar index for a month name.
// Unknown names report ok=false and sort after all known months.
func MonthIndex(name string) (int, bool) {
	idx, ok := monthIndex[name]
	if !ok {
		return len(monthIndex), false
	}
	return idx, true
}

// IsValidMonth reports whether name is a recognized month name.
func IsValidMonth(name string) bool {
	_, ok := monthIndex[name]
	return ok
}

// SortPaymentsChronologically orders payments by year ascending, then by
// calendar month ascending within the same year.
func SortPaymentsChronologically(payments []domain.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if payments[i].Year != payments[j].Year {
			return payments[i].Year < payments[j].Year
		}
		mi, _ := MonthIndex(payments[i].Month)
		mj, _ := MonthIndex(payments[j].Month)
		return mi < mj
	})
}

// ApplyDiscount returns rent reduced by discount percent, rounded to the
// nearest whole currency unit.
func ApplyDiscount(rent, discount int32) int32 {
	discounted := float64(rent) - float64(rent)*float64(discount)/100.0
	return int32(math.Round(discounted))
}

// FormatPercent renders part/total as a percentage string with two decimal
// places, or "0%" when total is zero.
func FormatPercent(part, total int32) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100.0)
}
