package models

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusCutting    OrderStatus = "Cutting"
	StatusStitching  OrderStatus = "Stitching"
	StatusAlteration OrderStatus = "Alteration"
	StatusReady      OrderStatus = "Ready"
	StatusDelivered  OrderStatus = "Delivered"
)

// OrderStatuses is the canonical forward progression. The index of a status
// in this list drives the customer-facing progress bar; updates themselves
// are not restricted to forward moves so the shop can correct mistakes
// (e.g. back from Alteration to Stitching).
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusCutting,
	StatusStitching,
	StatusAlteration,
	StatusReady,
	StatusDelivered,
}

// Order is one tailoring job. Dates are ISO YYYY-MM-DD strings so inclusive
// range filters can compare them lexicographically. Prices are whole rupees.
type Order struct {
	OrderID            string      `json:"order_id"`
	CustomerPhone      string      `json:"customer_phone"`
	CustomerName       string      `json:"customer_name"`
	Status             OrderStatus `json:"status"`
	BinLocation        string      `json:"bin_location"`
	SubmissionDate     string      `json:"submission_date"`
	TargetDeliveryDate string      `json:"target_delivery_date"`
	BasePrice          int         `json:"base_price"`
	NumberOfSets       int         `json:"number_of_sets"`
	TotalAmount        int         `json:"total_amount"`
	RushFee            int         `json:"rush_fee"`
	IsApprovedRushed   bool        `json:"is_approved_rushed"`
	GarmentType        string      `json:"garment_type"`
	Notes              string      `json:"notes"`
}

// TotalPrice is the amount quoted to the customer: the garment total plus
// any rush surcharge. TotalAmount stays basePrice*sets and may diverge from
// basePrice*sets only through explicit admin edits.
func (o Order) TotalPrice() int {
	return o.TotalAmount + o.RushFee
}

// OrderUpdate is a partial order edit with merge semantics: nil fields are
// left untouched. Status accepts any value, including backward moves.
type OrderUpdate struct {
	CustomerName       *string      `json:"customer_name,omitempty"`
	Status             *OrderStatus `json:"status,omitempty"`
	BinLocation        *string      `json:"bin_location,omitempty"`
	TargetDeliveryDate *string      `json:"target_delivery_date,omitempty"`
	BasePrice          *int         `json:"base_price,omitempty"`
	NumberOfSets       *int         `json:"number_of_sets,omitempty"`
	TotalAmount        *int         `json:"total_amount,omitempty"`
	RushFee            *int         `json:"rush_fee,omitempty"`
	IsApprovedRushed   *bool        `json:"is_approved_rushed,omitempty"`
	GarmentType        *string      `json:"garment_type,omitempty"`
	Notes              *string      `json:"notes,omitempty"`
}

// Apply merges the update into the order.
func (u OrderUpdate) Apply(o *Order) {
	if u.CustomerName != nil {
		o.CustomerName = *u.CustomerName
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.BinLocation != nil {
		o.BinLocation = *u.BinLocation
	}
	if u.TargetDeliveryDate != nil {
		o.TargetDeliveryDate = *u.TargetDeliveryDate
	}
	if u.BasePrice != nil {
		o.BasePrice = *u.BasePrice
	}
	if u.NumberOfSets != nil {
		o.NumberOfSets = *u.NumberOfSets
	}
	if u.TotalAmount != nil {
		o.TotalAmount = *u.TotalAmount
	}
	if u.RushFee != nil {
		o.RushFee = *u.RushFee
	}
	if u.IsApprovedRushed != nil {
		o.IsApprovedRushed = *u.IsApprovedRushed
	}
	if u.GarmentType != nil {
		o.GarmentType = *u.GarmentType
	}
	if u.Notes != nil {
		o.Notes = *u.Notes
	}
}
