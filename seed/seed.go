// Package seed loads the demo dataset: fifteen orders across a handful of
// regular customers, with the load ledger shaped like a busy week.
package seed

import (
	"context"
	"fmt"
	"time"

	"tailor-system/models"
	"tailor-system/store"
)

func day(n int) string {
	return time.Now().AddDate(0, 0, n).Format("2006-01-02")
}

func ms(daysAgo int) int64 {
	return time.Now().AddDate(0, 0, -daysAgo).UnixMilli()
}

type seedOrder struct {
	phone, name       string
	status            models.OrderStatus
	bin               string
	submitted, target int // day offsets from today
	base, sets, fee   int
	rushed            bool
	garment, notes    string
}

var seedOrders = []seedOrder{
	{"+919876543210", "Ravi Kumar", models.StatusStitching, "A-12", -2, 3, 1500, 1, 0, false, "Shirt", "Extra slim fit"},
	{"+919812345678", "Priya Sharma", models.StatusPending, "B-04", -1, 5, 2200, 2, 500, true, "Girl's Dress", "Knee length"},
	{"+919845678901", "Arun Prakash", models.StatusReady, "C-01", -5, 0, 1800, 1, 0, false, "Pant", "No cuffs"},
	{"+919834567890", "Meena Devi", models.StatusCutting, "A-08", 0, 7, 3500, 1, 0, false, "Salwar Kameez", "Cotton fabric"},
	{"+919823456789", "Sanjay Gupta", models.StatusAlteration, "D-02", -10, -1, 1200, 1, 0, false, "Shirt", "Sleeves too long"},
	{"+919890123456", "Anita Desai", models.StatusDelivered, "Delivered", -15, -5, 4000, 2, 0, false, "School Uniform (Boy)", "Include badges"},
	{"+919889012345", "Vikram Singh", models.StatusPending, "B-09", 0, 10, 2800, 1, 0, false, "Pant", "Pleated"},
	{"+919878901234", "Neha Kapoor", models.StatusStitching, "C-05", -3, 4, 1600, 1, 0, false, "Blouse", "Deep back neck"},
	{"+919867890123", "Karthik Subramanian", models.StatusReady, "A-03", -4, 2, 5000, 1, 0, false, "General", "Navy blue blazer, brass buttons"},
	{"+919856789012", "Sneha Reddy", models.StatusCutting, "D-10", -1, 6, 2000, 1, 0, false, "Girl's Dress", "A-line"},
	{"+919876543210", "Ravi Kumar", models.StatusPending, "B-11", 0, 8, 1500, 1, 0, false, "Pant", "Slim fit"},
	{"+919812345678", "Priya Sharma", models.StatusStitching, "A-15", -2, 5, 2200, 1, 500, true, "Salwar Kameez", "Silk, intricate embroidery"},
	{"+919845678901", "Arun Prakash", models.StatusAlteration, "C-08", -8, -2, 1800, 1, 0, false, "Shirt", "Collar too tight"},
	{"+919834567890", "Meena Devi", models.StatusDelivered, "Delivered", -20, -10, 3500, 1, 0, false, "Blouse", "Puff sleeves"},
	{"+919867890123", "Karthik Subramanian", models.StatusCutting, "B-06", -1, 9, 6000, 1, 1000, true, "General", "Custom fit blazer, charcoal"},
}

var seedUsers = []models.User{
	{UID: "demo_919876543210", PhoneNumber: "+919876543210", Role: models.RoleCustomer, Name: "Ravi Kumar", Gender: "male", CreatedAt: ms(5),
		Measurements: models.Measurements{"Shirt": {"chest": 40, "waist": 34, "shoulder": 18, "sleeve": 25, "neck": 15.5}, "Pant": {"waist": 34, "inseam": 30, "length": 42}}},
	{UID: "demo_919812345678", PhoneNumber: "+919812345678", Role: models.RoleCustomer, Name: "Priya Sharma", Gender: "female", CreatedAt: ms(3),
		Measurements: models.Measurements{"Shirt": {"chest": 34, "waist": 28, "shoulder": 15, "sleeve": 22, "neck": 13}, "Girl's Dress": {"chest": 34, "waist": 28, "length": 38}}},
	{UID: "demo_919845678901", PhoneNumber: "+919845678901", Role: models.RoleCustomer, Name: "Arun Prakash", Gender: "male", CreatedAt: ms(10),
		Measurements: models.Measurements{"Shirt": {"chest": 42, "waist": 36, "shoulder": 19, "sleeve": 26, "neck": 16}}},
	{UID: "demo_919856789012", PhoneNumber: "+919856789012", Role: models.RoleCustomer, Name: "Meena Devi", Gender: "female", CreatedAt: ms(1),
		Measurements: models.Measurements{"Girl's Dress": {"chest": 35, "waist": 29, "shoulder": 14.5, "length": 40}}},
	{UID: "demo_919867890123", PhoneNumber: "+919867890123", Role: models.RoleCustomer, Name: "Karthik Subramanian", Gender: "male", CreatedAt: ms(20),
		Measurements: models.Measurements{"Shirt": {"chest": 44, "waist": 38, "shoulder": 20, "sleeve": 27, "neck": 17}}},
	{UID: "demo_919990000001", PhoneNumber: "+919990000001", Role: models.RoleAdmin, Name: "Admin (S Kumaran)", CreatedAt: ms(100),
		Measurements: models.Measurements{}},
}

// Run seeds the stores. It refuses to run twice: an order counter above
// zero means the shop already has data.
func Run(ctx context.Context, st store.Stores) (int, error) {
	settings, err := st.Settings.GetSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("read settings: %w", err)
	}
	if settings.OrderCounter > 0 {
		return 0, fmt.Errorf("store already has %d orders; delete the settings row to re-seed", settings.OrderCounter)
	}

	count := 0
	for _, u := range seedUsers {
		if _, err := st.Users.CreateUser(ctx, u); err != nil {
			return count, fmt.Errorf("seed user %s: %w", u.Name, err)
		}
		count++
	}
	for _, so := range seedOrders {
		o := models.Order{
			CustomerPhone:      so.phone,
			CustomerName:       so.name,
			Status:             so.status,
			BinLocation:        so.bin,
			SubmissionDate:     day(so.submitted),
			TargetDeliveryDate: day(so.target),
			BasePrice:          so.base,
			NumberOfSets:       so.sets,
			TotalAmount:        so.base * so.sets,
			RushFee:            so.fee,
			IsApprovedRushed:   so.rushed,
			GarmentType:        so.garment,
			Notes:              so.notes,
		}
		if _, err := st.Orders.CreateOrder(ctx, o); err != nil {
			return count, fmt.Errorf("seed order for %s: %w", so.name, err)
		}
		count++
	}

	// Demo load ledger: the coming week mostly booked out, easing off
	// towards the 10-day mark. Overwrites the increments from the creates
	// above so the demo matches a shop mid-season.
	load := map[string]int{
		day(0): 35, day(1): 42, day(2): 48, day(3): 50, day(4): 30,
		day(5): 20, day(6): 15, day(7): 10, day(8): 5, day(9): 2,
	}
	if _, err := st.Settings.UpdateSettings(ctx, models.SettingsUpdate{CurrentLoad: load}); err != nil {
		return count, fmt.Errorf("seed settings: %w", err)
	}
	count++
	return count, nil
}
