package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tailor-system/models"

	"github.com/google/uuid"
)

// Memory keeps everything in slices and maps. It backs demo mode and tests.
// A single mutex serializes all access, so unlike the original demo array it
// cannot double-allocate an order id under concurrent creates.
type Memory struct {
	mu       sync.Mutex
	orders   []models.Order
	users    []models.User
	settings *models.Settings
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryStores returns a Stores bundle backed by one Memory instance.
func NewMemoryStores() Stores {
	m := NewMemory()
	return Stores{Orders: m, Users: m, Settings: m}
}

func (m *Memory) settingsLocked() *models.Settings {
	if m.settings == nil {
		s := models.DefaultSettings()
		m.settings = &s
	}
	return m.settings
}

// ── Orders ──

func (m *Memory) CreateOrder(_ context.Context, o models.Order) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.settingsLocked()
	s.OrderCounter++
	o.OrderID = fmt.Sprintf("ORD-%03d", s.OrderCounter)
	if s.CurrentLoad == nil {
		s.CurrentLoad = map[string]int{}
	}
	s.CurrentLoad[o.TargetDeliveryDate]++
	m.orders = append(m.orders, o)
	return o, nil
}

func (m *Memory) GetOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

func (m *Memory) GetOrder(_ context.Context, orderID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.OrderID == orderID {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetOrdersByPhone(_ context.Context, phone string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.CustomerPhone == phone {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *Memory) UpdateOrder(_ context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			upd.Apply(&m.orders[i])
			cp := m.orders[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) DeleteOrder(_ context.Context, orderID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].OrderID == orderID {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ── Users ──

func (m *Memory) CreateUser(_ context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.UID == "" {
		u.UID = "user_" + uuid.NewString()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}
	if u.Measurements == nil {
		u.Measurements = models.Measurements{}
	}
	m.users = append(m.users, u)
	return u, nil
}

func (m *Memory) GetUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Memory) GetUser(_ context.Context, uid string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.UID == uid {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByPhone(_ context.Context, phone string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.PhoneNumber == phone {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) UpdateUser(_ context.Context, uid string, upd models.UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].UID == uid {
			upd.Apply(&m.users[i])
			cp := m.users[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) IncrementQueryCount(_ context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].PhoneNumber == phone {
			m.users[i].QueryCount++
			m.users[i].LastQueryAt = time.Now().UnixMilli()
			return nil
		}
	}
	return nil
}

// ── Settings ──

func (m *Memory) GetSettings(_ context.Context) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copySettings(*m.settingsLocked()), nil
}

func (m *Memory) UpdateSettings(_ context.Context, upd models.SettingsUpdate) (models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.settingsLocked()
	upd.Apply(s)
	return copySettings(*s), nil
}

func copySettings(s models.Settings) models.Settings {
	load := make(map[string]int, len(s.CurrentLoad))
	for k, v := range s.CurrentLoad {
		load[k] = v
	}
	prices := make(map[string]int, len(s.GarmentPrices))
	for k, v := range s.GarmentPrices {
		prices[k] = v
	}
	s.CurrentLoad = load
	s.GarmentPrices = prices
	return s
}
