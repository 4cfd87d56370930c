package services

import (
	"context"
	"fmt"
	"time"

	"tailor-system/models"
	"tailor-system/store"
)

// RushNotesPrefix marks an order that was accepted on an already-full
// delivery date and awaits human approval.
const RushNotesPrefix = "[RUSH REQUEST] "

// PlaceOrderInput is what a customer (or an admin quick-add) supplies.
// Numbers are handled permissively: a missing lead time falls back to the
// standard one, missing sets to 1, a missing base price to the garment
// price table.
type PlaceOrderInput struct {
	CustomerPhone string `json:"customer_phone"`
	CustomerName  string `json:"customer_name"`
	GarmentType   string `json:"garment_type"`
	Notes         string `json:"notes"`
	DeliveryDays  int    `json:"delivery_days"`
	NumberOfSets  int    `json:"number_of_sets"`
	BasePrice     int    `json:"base_price"`
	Today         string `json:"-"` // override for tests; empty = today
}

// PlaceOrder prices and creates an order. An order is never refused: when
// the target date is already at capacity it is still created, flagged
// approved-rushed and its notes prefixed, as a soft admission-control
// signal for the shop.
func PlaceOrder(ctx context.Context, st store.Stores, in PlaceOrderInput) (models.Order, error) {
	settings, err := st.Settings.GetSettings(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("load settings: %w", err)
	}

	days := in.DeliveryDays
	if days < 1 {
		days = StandardLeadDays
	}
	today := in.Today
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}
	target := addDays(today, days)

	base := in.BasePrice
	if base <= 0 {
		base = settings.GarmentPrices[in.GarmentType]
		if base == 0 {
			base = settings.GarmentPrices["General"]
		}
	}
	sets := in.NumberOfSets
	if sets < 1 {
		sets = 1
	}
	fee := RushFee(days)

	capInfo := CapacityForDate(settings, target)
	notes := in.Notes
	rushed := !capInfo.Available
	if rushed {
		notes = RushNotesPrefix + notes
	}

	order := models.Order{
		CustomerPhone:      in.CustomerPhone,
		CustomerName:       in.CustomerName,
		Status:             models.StatusPending,
		BinLocation:        "",
		SubmissionDate:     today,
		TargetDeliveryDate: target,
		BasePrice:          base,
		NumberOfSets:       sets,
		TotalAmount:        base * sets,
		RushFee:            fee,
		IsApprovedRushed:   rushed,
		GarmentType:        in.GarmentType,
		Notes:              notes,
	}
	created, err := st.Orders.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

func addDays(isoDate string, n int) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		t = time.Now()
	}
	return t.AddDate(0, 0, n).Format("2006-01-02")
}
