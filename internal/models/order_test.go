package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orderdesk/internal/models"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]models.OrderStatus{
		"pending":    models.StatusPending,
		"processing": models.StatusProcessing,
		"completed":  models.StatusCompleted,
		"cancelled":  models.StatusCancelled,
		"confirmed":  models.StatusProcessing,
		"shipped":    models.StatusProcessing,
		"delivered":  models.StatusCompleted,
	}
	for raw, want := range cases {
		got, ok := models.NormalizeStatus(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}

	_, ok := models.NormalizeStatus("backordered")
	require.False(t, ok)
	_, ok = models.NormalizeStatus("")
	require.False(t, ok)
}

func TestOrderStatus_CanTransition(t *testing.T) {
	require.True(t, models.StatusPending.CanTransition(models.StatusProcessing))
	require.True(t, models.StatusPending.CanTransition(models.StatusCancelled))
	require.True(t, models.StatusProcessing.CanTransition(models.StatusCompleted))
	require.True(t, models.StatusProcessing.CanTransition(models.StatusCancelled))

	require.False(t, models.StatusPending.CanTransition(models.StatusCompleted), "no skipping processing")
	require.False(t, models.StatusCompleted.CanTransition(models.StatusPending))
	require.False(t, models.StatusCompleted.CanTransition(models.StatusCancelled))
	require.False(t, models.StatusCancelled.CanTransition(models.StatusProcessing))
}
