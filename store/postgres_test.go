package store

import (
	"context"
	"os"
	"testing"

	"tailor-system/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPool connects using TEST_DATABASE_URL, or skips. The schema must be
// migrated first (go run . migrate). Tests share the settings singleton, so
// only run against a throwaway database.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(context.Background()))
	return pool
}

func TestPostgresOrderLifecycle(t *testing.T) {
	st := NewPostgresStores(testPool(t))
	ctx := context.Background()

	before, err := st.Settings.GetSettings(ctx)
	require.NoError(t, err)

	created, err := st.Orders.CreateOrder(ctx, models.Order{
		CustomerPhone:      "+919999999999",
		CustomerName:       "Integration Test",
		Status:             models.StatusPending,
		SubmissionDate:     "2026-09-01",
		TargetDeliveryDate: "2026-09-11",
		BasePrice:          1200,
		NumberOfSets:       1,
		TotalAmount:        1200,
		GarmentType:        "Shirt",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.OrderID)

	after, err := st.Settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.OrderCounter+1, after.OrderCounter)
	assert.Equal(t, before.CurrentLoad["2026-09-11"]+1, after.CurrentLoad["2026-09-11"])

	got, err := st.Orders.GetOrder(ctx, created.OrderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Integration Test", got.CustomerName)

	status := models.StatusCutting
	updated, err := st.Orders.UpdateOrder(ctx, created.OrderID, models.OrderUpdate{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusCutting, updated.Status)

	byPhone, err := st.Orders.GetOrdersByPhone(ctx, "+919999999999")
	require.NoError(t, err)
	assert.NotEmpty(t, byPhone)

	ok, err := st.Orders.DeleteOrder(ctx, created.OrderID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Ledger stays put after deletion.
	final, err := st.Settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, after.CurrentLoad["2026-09-11"], final.CurrentLoad["2026-09-11"])
}

func TestPostgresUserLifecycle(t *testing.T) {
	st := NewPostgresStores(testPool(t))
	ctx := context.Background()

	created, err := st.Users.CreateUser(ctx, models.User{
		PhoneNumber:  "+919999999998",
		Role:         models.RoleCustomer,
		Name:         "Integration User",
		Measurements: models.Measurements{"Shirt": {"Chest": 40}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.UID)

	got, err := st.Users.GetUserByPhone(ctx, "+919999999998")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 40.0, got.Measurements["Shirt"]["Chest"])

	name := "Renamed User"
	updated, err := st.Users.UpdateUser(ctx, created.UID, models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed User", updated.Name)

	require.NoError(t, st.Users.IncrementQueryCount(ctx, "+919999999998"))
	counted, err := st.Users.GetUser(ctx, created.UID)
	require.NoError(t, err)
	require.NotNil(t, counted)
	assert.Equal(t, got.QueryCount+1, counted.QueryCount)
}
