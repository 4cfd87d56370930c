package models

// Settings is the shop-wide singleton: daily stitch capacity, the per-date
// load ledger, the garment price table and the order-id counter.
//
// CurrentLoad only ever grows: order creation increments the target date's
// count and nothing decrements it, not even order deletion. Overbooked days
// are compensated by raising DailyStitchCapacity, not by reclaiming load.
type Settings struct {
	DailyStitchCapacity int            `json:"daily_stitch_capacity"`
	CurrentLoad         map[string]int `json:"current_load"`
	GarmentPrices       map[string]int `json:"garment_prices"`
	OrderCounter        int            `json:"order_counter"`
}

// SettingsUpdate is a partial settings edit with merge semantics. The order
// counter is owned by order creation and cannot be edited directly.
type SettingsUpdate struct {
	DailyStitchCapacity *int           `json:"daily_stitch_capacity,omitempty"`
	CurrentLoad         map[string]int `json:"current_load,omitempty"`
	GarmentPrices       map[string]int `json:"garment_prices,omitempty"`
}

func (u SettingsUpdate) Apply(s *Settings) {
	if u.DailyStitchCapacity != nil {
		s.DailyStitchCapacity = *u.DailyStitchCapacity
	}
	if u.CurrentLoad != nil {
		s.CurrentLoad = u.CurrentLoad
	}
	if u.GarmentPrices != nil {
		s.GarmentPrices = u.GarmentPrices
	}
}

// DefaultSettings is what a fresh shop starts with; written lazily on the
// first settings read.
func DefaultSettings() Settings {
	return Settings{
		DailyStitchCapacity: 50,
		CurrentLoad:         map[string]int{},
		GarmentPrices: map[string]int{
			"Shirt":                 1200,
			"Pant":                  1500,
			"Girl's Dress":          2500,
			"School Uniform (Boy)":  2000,
			"School Uniform (Girl)": 2200,
			"Police Uniform":        3500,
			"Blouse":                850,
			"Salwar Kameez":         3000,
			"General":               1000,
		},
		OrderCounter: 0,
	}
}
