package services

import "math"

const (
	// StandardLeadDays is the no-rush delivery lead time.
	StandardLeadDays = 10
	// MaxRushFee is charged at a 1-day lead, in rupees.
	MaxRushFee = 2000
)

// RushFee returns the rush surcharge for an order due in `days` days: zero
// at the standard lead or longer, ramping linearly to MaxRushFee at 1 day.
// Lead times below 1 are treated as 1.
func RushFee(days int) int {
	if days >= StandardLeadDays {
		return 0
	}
	if days < 1 {
		days = 1
	}
	return int(math.Round(float64(StandardLeadDays-days) / float64(StandardLeadDays-1) * MaxRushFee))
}
