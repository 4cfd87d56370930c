package store

import (
	"context"

	"tailor-system/models"
)

// OrderStore is whole-document CRUD over orders. Reads never fail with
// not-found: a missing order comes back as nil, a missing collection as an
// empty slice.
type OrderStore interface {
	// CreateOrder mints the next ORD-NNN id and writes the order together
	// with the settings counter bump and the target date's load increment.
	// The three writes land as one combined operation.
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	GetOrdersByPhone(ctx context.Context, phone string) ([]models.Order, error)
	UpdateOrder(ctx context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error)
	// DeleteOrder removes the order. It does NOT decrement the capacity
	// ledger; the load booked for the target date stays booked.
	DeleteOrder(ctx context.Context, orderID string) (bool, error)
}

type UserStore interface {
	// CreateUser mints a uid when the input has none.
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, uid string) (*models.User, error)
	// GetUserByPhone returns the first user carrying the phone number, or
	// nil. Phone is a business key, not a storage constraint.
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error)
	// IncrementQueryCount bumps query_count and last_query_at for the user
	// with this phone. A missing user is a no-op, not an error.
	IncrementQueryCount(ctx context.Context, phone string) error
}

type SettingsStore interface {
	// GetSettings returns the singleton, creating it with defaults on first
	// read.
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, upd models.SettingsUpdate) (models.Settings, error)
}

// Stores bundles the three interfaces. Both backends implement all of them
// on a single struct, so the fields usually point at the same value.
type Stores struct {
	Orders   OrderStore
	Users    UserStore
	Settings SettingsStore
}
