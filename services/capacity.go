package services

import "tailor-system/models"

// CapacityInfo reports how loaded a delivery date is.
type CapacityInfo struct {
	Date      string `json:"date"`
	Load      int    `json:"load"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

// CapacityForDate reads the load ledger for one date. A date with no entry
// has zero load. Available means another order still fits under the daily
// stitch capacity; a full date does not block order creation, it only flags
// the order as a rush request.
func CapacityForDate(s models.Settings, date string) CapacityInfo {
	load := s.CurrentLoad[date]
	return CapacityInfo{
		Date:      date,
		Load:      load,
		Capacity:  s.DailyStitchCapacity,
		Available: load < s.DailyStitchCapacity,
	}
}
