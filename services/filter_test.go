package services

import (
	"reflect"
	"testing"

	"tailor-system/models"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{OrderID: "ORD-001", CustomerName: "Ravi Kumar", GarmentType: "Shirt", Status: models.StatusStitching, SubmissionDate: "2026-08-20"},
		{OrderID: "ORD-002", CustomerName: "Priya Sharma", GarmentType: "Salwar Kameez", Status: models.StatusReady, SubmissionDate: "2026-08-22"},
		{OrderID: "ORD-003", CustomerName: "Anand Raj", GarmentType: "Pant", Status: models.StatusPending, SubmissionDate: "2026-08-25"},
		{OrderID: "ORD-004", CustomerName: "Meena Lakshmi", GarmentType: "Blouse", Status: models.StatusReady, SubmissionDate: "2026-08-28"},
	}
}

func TestApplyOrderFiltersEmptyIsIdentity(t *testing.T) {
	orders := sampleOrders()
	got := ApplyOrderFilters(orders, OrderSearchFilters{})
	if !reflect.DeepEqual(got, orders) {
		t.Fatalf("empty filter changed the collection: %+v", got)
	}
}

func TestApplyOrderFiltersQuery(t *testing.T) {
	orders := sampleOrders()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name lowercase", "ravi", []string{"ORD-001"}},
		{"name uppercase", "RAVI", []string{"ORD-001"}},
		{"order id", "ord-003", []string{"ORD-003"}},
		{"garment type", "blouse", []string{"ORD-004"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyOrderFilters(orders, OrderSearchFilters{Query: tt.query})
			ids := orderIDs(got)
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("query %q: got %v, want %v", tt.query, ids, tt.want)
			}
		})
	}
}

func TestApplyOrderFiltersDateBoundsInclusive(t *testing.T) {
	orders := sampleOrders()
	got := ApplyOrderFilters(orders, OrderSearchFilters{DateFrom: "2026-08-22", DateTo: "2026-08-25"})
	want := []string{"ORD-002", "ORD-003"}
	if ids := orderIDs(got); !reflect.DeepEqual(ids, want) {
		t.Fatalf("date range [2026-08-22, 2026-08-25]: got %v, want %v", ids, want)
	}
}

func TestApplyOrderFiltersStatus(t *testing.T) {
	orders := sampleOrders()
	got := ApplyOrderFilters(orders, OrderSearchFilters{Status: models.StatusReady})
	want := []string{"ORD-002", "ORD-004"}
	if ids := orderIDs(got); !reflect.DeepEqual(ids, want) {
		t.Fatalf("status Ready: got %v, want %v", ids, want)
	}
}

func TestApplyOrderFiltersCombined(t *testing.T) {
	orders := sampleOrders()
	got := ApplyOrderFilters(orders, OrderSearchFilters{Query: "a", Status: models.StatusReady, DateFrom: "2026-08-23"})
	want := []string{"ORD-004"}
	if ids := orderIDs(got); !reflect.DeepEqual(ids, want) {
		t.Fatalf("combined filter: got %v, want %v", ids, want)
	}
}

func orderIDs(orders []models.Order) []string {
	var ids []string
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	return ids
}

func sampleUsers() []models.User {
	return []models.User{
		{UID: "u1", Name: "Ravi Kumar", PhoneNumber: "+919876543210", Role: models.RoleCustomer, CreatedAt: 100},
		{UID: "u2", Name: "Admin", PhoneNumber: "+910000000000", Role: models.RoleAdmin, CreatedAt: 400},
		{UID: "u3", Name: "Priya Sharma", PhoneNumber: "+919876543211", Role: models.RoleCustomer, CreatedAt: 300},
		{UID: "u4", Name: "Anand Raj", PhoneNumber: "+919812345678", Role: models.RoleCustomer, CreatedAt: 200},
	}
}

func TestApplyUserFiltersAlwaysRestrictsToCustomers(t *testing.T) {
	got := ApplyUserFilters(sampleUsers(), UserSearchFilters{})
	for _, u := range got {
		if u.Role != models.RoleCustomer {
			t.Fatalf("non-customer %q leaked through", u.UID)
		}
	}
	if len(got) != 3 {
		t.Fatalf("got %d users, want 3", len(got))
	}
}

func TestApplyUserFiltersQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name case-insensitive", "priya", []string{"u3"}},
		{"phone substring", "9812", []string{"u4"}},
		{"admin never matches", "Admin", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyUserFilters(sampleUsers(), UserSearchFilters{Query: tt.query})
			var uids []string
			for _, u := range got {
				uids = append(uids, u.UID)
			}
			if !reflect.DeepEqual(uids, tt.want) {
				t.Errorf("query %q: got %v, want %v", tt.query, uids, tt.want)
			}
		})
	}
}

func TestApplyUserFiltersSort(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []string
	}{
		{SortNewest, []string{"u3", "u4", "u1"}},
		{SortOldest, []string{"u1", "u4", "u3"}},
		{SortNameAZ, []string{"u4", "u3", "u1"}},
		{"", []string{"u1", "u3", "u4"}}, // unknown mode keeps input order
	}
	for _, tt := range tests {
		t.Run("sort_"+tt.sortBy, func(t *testing.T) {
			got := ApplyUserFilters(sampleUsers(), UserSearchFilters{SortBy: tt.sortBy})
			var uids []string
			for _, u := range got {
				uids = append(uids, u.UID)
			}
			if !reflect.DeepEqual(uids, tt.want) {
				t.Errorf("sort %q: got %v, want %v", tt.sortBy, uids, tt.want)
			}
		})
	}
}
