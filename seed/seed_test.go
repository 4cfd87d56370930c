package seed

import (
	"context"
	"testing"

	"tailor-system/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsDemoData(t *testing.T) {
	st := store.NewMemoryStores()
	ctx := context.Background()

	n, err := Run(ctx, st)
	require.NoError(t, err)
	// Users, orders, plus the settings write.
	assert.Equal(t, len(seedOrders)+len(seedUsers)+1, n)

	orders, err := st.Orders.GetOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, len(seedOrders))
	assert.Equal(t, "ORD-001", orders[0].OrderID)

	users, err := st.Users.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, len(seedUsers))

	settings, err := st.Settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedOrders), settings.OrderCounter)
	assert.NotEmpty(t, settings.CurrentLoad)
}

func TestRunRefusesSecondSeed(t *testing.T) {
	st := store.NewMemoryStores()
	ctx := context.Background()

	_, err := Run(ctx, st)
	require.NoError(t, err)

	_, err = Run(ctx, st)
	assert.Error(t, err)
}
