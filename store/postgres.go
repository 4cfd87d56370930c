package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tailor-system/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const settingsKey = "global"

// Postgres is the production backend. Order creation runs in a single
// transaction so two concurrent creates cannot mint the same id.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// NewPostgresStores returns a Stores bundle backed by one Postgres instance.
func NewPostgresStores(pool *pgxpool.Pool) Stores {
	p := NewPostgres(pool)
	return Stores{Orders: p, Users: p, Settings: p}
}

// ── Orders ──

const orderColumns = `order_id, customer_phone, customer_name, status, bin_location,
	submission_date, target_delivery_date, base_price, number_of_sets,
	total_amount, rush_fee, is_approved_rushed, garment_type, notes`

func scanOrder(row pgx.Row) (models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.OrderID, &o.CustomerPhone, &o.CustomerName, &o.Status, &o.BinLocation,
		&o.SubmissionDate, &o.TargetDeliveryDate, &o.BasePrice, &o.NumberOfSets,
		&o.TotalAmount, &o.RushFee, &o.IsApprovedRushed, &o.GarmentType, &o.Notes,
	)
	return o, err
}

func (p *Postgres) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return models.Order{}, fmt.Errorf("begin create order: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := ensureSettingsRow(ctx, tx); err != nil {
		return models.Order{}, err
	}

	var counter int
	err = tx.QueryRow(ctx, `SELECT order_counter FROM settings WHERE id = $1 FOR UPDATE`, settingsKey).Scan(&counter)
	if err != nil {
		return models.Order{}, fmt.Errorf("read order counter: %w", err)
	}
	counter++
	o.OrderID = fmt.Sprintf("ORD-%03d", counter)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.OrderID, o.CustomerPhone, o.CustomerName, o.Status, o.BinLocation,
		o.SubmissionDate, o.TargetDeliveryDate, o.BasePrice, o.NumberOfSets,
		o.TotalAmount, o.RushFee, o.IsApprovedRushed, o.GarmentType, o.Notes,
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order %s: %w", o.OrderID, err)
	}

	// Counter bump and load increment ride the same transaction as the
	// insert. The ledger is append-only: nothing ever decrements a date.
	_, err = tx.Exec(ctx, `
		UPDATE settings SET
			order_counter = $2,
			current_load = jsonb_set(
				current_load,
				ARRAY[$3::text],
				to_jsonb(COALESCE((current_load->>$3)::int, 0) + 1)
			)
		WHERE id = $1`,
		settingsKey, counter, o.TargetDeliveryDate,
	)
	if err != nil {
		return models.Order{}, fmt.Errorf("bump counter and load: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Order{}, fmt.Errorf("commit create order: %w", err)
	}
	return o, nil
}

func (p *Postgres) GetOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_id`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (p *Postgres) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	o, err := scanOrder(p.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	return &o, nil
}

func (p *Postgres) GetOrdersByPhone(ctx context.Context, phone string) ([]models.Order, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_phone = $1 ORDER BY order_id`, phone)
	if err != nil {
		return nil, fmt.Errorf("query orders by phone: %w", err)
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (p *Postgres) UpdateOrder(ctx context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error) {
	// Read-merge-write keeps the merge semantics identical to the memory
	// backend. Single-threaded admin edits do not contend here.
	existing, err := p.GetOrder(ctx, orderID)
	if err != nil || existing == nil {
		return nil, err
	}
	upd.Apply(existing)
	o := *existing
	_, err = p.pool.Exec(ctx, `
		UPDATE orders SET
			customer_name = $2, status = $3, bin_location = $4,
			target_delivery_date = $5, base_price = $6, number_of_sets = $7,
			total_amount = $8, rush_fee = $9, is_approved_rushed = $10,
			garment_type = $11, notes = $12, updated_at = now()
		WHERE order_id = $1`,
		o.OrderID, o.CustomerName, o.Status, o.BinLocation,
		o.TargetDeliveryDate, o.BasePrice, o.NumberOfSets,
		o.TotalAmount, o.RushFee, o.IsApprovedRushed,
		o.GarmentType, o.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("update order %s: %w", orderID, err)
	}
	return &o, nil
}

func (p *Postgres) DeleteOrder(ctx context.Context, orderID string) (bool, error) {
	tag, err := p.pool.Exec(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		return false, fmt.Errorf("delete order %s: %w", orderID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ── Users ──

const userColumns = `uid, phone_number, role, name, COALESCE(gender, ''),
	created_at, query_count, last_query_at, measurements`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UID, &u.PhoneNumber, &u.Role, &u.Name, &u.Gender,
		&u.CreatedAt, &u.QueryCount, &u.LastQueryAt, &u.Measurements,
	)
	return u, err
}

func (p *Postgres) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.UID == "" {
		u.UID = "user_" + uuid.NewString()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().UnixMilli()
	}
	if u.Measurements == nil {
		u.Measurements = models.Measurements{}
	}
	_, err := p.pool.Exec(ctx, `
		INSERT INTO users (uid, phone_number, role, name, gender, created_at, query_count, last_query_at, measurements)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)`,
		u.UID, u.PhoneNumber, u.Role, u.Name, u.Gender,
		u.CreatedAt, u.QueryCount, u.LastQueryAt, u.Measurements,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user %s: %w", u.UID, err)
	}
	return u, nil
}

func (p *Postgres) GetUsers(ctx context.Context) ([]models.User, error) {
	rows, err := p.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (p *Postgres) GetUser(ctx context.Context, uid string) (*models.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE uid = $1`, uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", uid, err)
	}
	return &u, nil
}

func (p *Postgres) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	u, err := scanUser(p.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE phone_number = $1 ORDER BY created_at LIMIT 1`, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return &u, nil
}

func (p *Postgres) UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) (*models.User, error) {
	existing, err := p.GetUser(ctx, uid)
	if err != nil || existing == nil {
		return nil, err
	}
	upd.Apply(existing)
	u := *existing
	_, err = p.pool.Exec(ctx, `
		UPDATE users SET phone_number = $2, name = $3, gender = NULLIF($4, ''), measurements = $5
		WHERE uid = $1`,
		u.UID, u.PhoneNumber, u.Name, u.Gender, u.Measurements,
	)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", uid, err)
	}
	return &u, nil
}

func (p *Postgres) IncrementQueryCount(ctx context.Context, phone string) error {
	_, err := p.pool.Exec(ctx, `
		UPDATE users SET query_count = query_count + 1, last_query_at = $2
		WHERE uid = (SELECT uid FROM users WHERE phone_number = $1 ORDER BY created_at LIMIT 1)`,
		phone, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("increment query count: %w", err)
	}
	return nil
}

// ── Settings ──

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (p *Postgres) GetSettings(ctx context.Context) (models.Settings, error) {
	if err := ensureSettingsRow(ctx, p.pool); err != nil {
		return models.DefaultSettings(), err
	}
	var s models.Settings
	err := p.pool.QueryRow(ctx, `
		SELECT daily_stitch_capacity, current_load, garment_prices, order_counter
		FROM settings WHERE id = $1`, settingsKey,
	).Scan(&s.DailyStitchCapacity, &s.CurrentLoad, &s.GarmentPrices, &s.OrderCounter)
	if err != nil {
		return models.DefaultSettings(), fmt.Errorf("read settings: %w", err)
	}
	if s.CurrentLoad == nil {
		s.CurrentLoad = map[string]int{}
	}
	if s.GarmentPrices == nil {
		s.GarmentPrices = map[string]int{}
	}
	return s, nil
}

func (p *Postgres) UpdateSettings(ctx context.Context, upd models.SettingsUpdate) (models.Settings, error) {
	s, err := p.GetSettings(ctx)
	if err != nil {
		return s, err
	}
	upd.Apply(&s)
	_, err = p.pool.Exec(ctx, `
		UPDATE settings SET daily_stitch_capacity = $2, current_load = $3, garment_prices = $4
		WHERE id = $1`,
		settingsKey, s.DailyStitchCapacity, s.CurrentLoad, s.GarmentPrices,
	)
	if err != nil {
		return s, fmt.Errorf("update settings: %w", err)
	}
	return s, nil
}

func ensureSettingsRow(ctx context.Context, q execer) error {
	d := models.DefaultSettings()
	_, err := q.Exec(ctx, `
		INSERT INTO settings (id, daily_stitch_capacity, current_load, garment_prices, order_counter)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`,
		settingsKey, d.DailyStitchCapacity, d.CurrentLoad, d.GarmentPrices, d.OrderCounter,
	)
	if err != nil {
		return fmt.Errorf("ensure settings row: %w", err)
	}
	return nil
}
