package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureStoreLoadsAllDomains(t *testing.T) {
	store, err := NewFixtureStore()
	require.NoError(t, err)

	payments := store.ListPayments()
	require.True(t, payments.Success)
	assert.NotEmpty(t, payments.Data)

	packages := store.ListPackages()
	require.True(t, packages.Success)
	assert.NotEmpty(t, packages.Data)

	tickets := store.ListTickets()
	require.True(t, tickets.Success)
	assert.NotEmpty(t, tickets.Data)

	locations := store.ListLocations()
	require.True(t, locations.Success)
	assert.NotEmpty(t, locations.Data)

	notifications := store.ListNotifications()
	require.True(t, notifications.Success)
	assert.NotEmpty(t, notifications.Data)

	charts := store.DashboardCharts()
	require.True(t, charts.Success)
	assert.NotEmpty(t, charts.Data.TrafficSources)
	assert.NotEmpty(t, charts.Data.Income)
}
