package services

import (
	"sort"
	"strings"

	"tailor-system/models"
)

// OrderSearchFilters narrows an order collection. All predicates are
// optional; an empty filter returns the input unchanged.
type OrderSearchFilters struct {
	Query    string
	DateFrom string // inclusive, ISO YYYY-MM-DD
	DateTo   string // inclusive, ISO YYYY-MM-DD
	Status   models.OrderStatus
}

// ApplyOrderFilters is pure and preserves relative order. The text query is
// a case-insensitive substring match over customer name, order id and
// garment type. Date bounds compare lexicographically against the
// submission date, which is correct for fixed-width ISO dates.
func ApplyOrderFilters(orders []models.Order, f OrderSearchFilters) []models.Order {
	out := orders
	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		filtered := make([]models.Order, 0, len(out))
		for _, o := range out {
			if strings.Contains(strings.ToLower(o.CustomerName), q) ||
				strings.Contains(strings.ToLower(o.OrderID), q) ||
				strings.Contains(strings.ToLower(o.GarmentType), q) {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	if f.DateFrom != "" {
		filtered := make([]models.Order, 0, len(out))
		for _, o := range out {
			if o.SubmissionDate >= f.DateFrom {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	if f.DateTo != "" {
		filtered := make([]models.Order, 0, len(out))
		for _, o := range out {
			if o.SubmissionDate <= f.DateTo {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	if f.Status != "" {
		filtered := make([]models.Order, 0, len(out))
		for _, o := range out {
			if o.Status == f.Status {
				filtered = append(filtered, o)
			}
		}
		out = filtered
	}
	return out
}

// Customer sort modes.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
	SortNameAZ = "nameaz"
)

type UserSearchFilters struct {
	Query  string
	SortBy string
}

// ApplyUserFilters restricts to customers (always, even with an empty
// filter), then matches the query as a case-insensitive substring of the
// name or a plain substring of the phone number, then sorts. Users without
// a creation timestamp sort as 0. Sorting is stable so ties keep their
// original relative order.
func ApplyUserFilters(users []models.User, f UserSearchFilters) []models.User {
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleCustomer {
			out = append(out, u)
		}
	}
	if q := f.Query; q != "" {
		q = strings.ToLower(q)
		filtered := make([]models.User, 0, len(out))
		for _, u := range out {
			if strings.Contains(strings.ToLower(u.Name), q) ||
				strings.Contains(u.PhoneNumber, f.Query) {
				filtered = append(filtered, u)
			}
		}
		out = filtered
	}
	switch f.SortBy {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case SortNameAZ:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	}
	return out
}
