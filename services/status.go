package services

import "tailor-system/models"

// StatusIndex returns the position of a status in the canonical
// progression, or -1 for anything unknown.
func StatusIndex(status models.OrderStatus) int {
	for i, s := range models.OrderStatuses {
		if s == status {
			return i
		}
	}
	return -1
}

// StatusProgress maps a status to a 0..1 fraction for progress rendering:
// Pending is 0, Delivered is 1. Unknown statuses report 0.
func StatusProgress(status models.OrderStatus) float64 {
	i := StatusIndex(status)
	if i < 0 {
		return 0
	}
	return float64(i) / float64(len(models.OrderStatuses)-1)
}
