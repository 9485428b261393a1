package orders

import (
	"testing"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepIndexFollowsChainOrder(t *testing.T) {
	for i, status := range Steps {
		idx, ok := StepIndex(status)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestStepIndexCancelledHasNoOrdinal(t *testing.T) {
	_, ok := StepIndex(models.OrderStatusCancelled)
	assert.False(t, ok)
}

func TestProjectMarksCompletedAndCurrent(t *testing.T) {
	progress := Project(models.OrderStatusReady)

	assert.Equal(t, 2, progress.Current)
	assert.False(t, progress.Cancelled)
	assert.False(t, progress.Terminal)

	require.Len(t, progress.Steps, 5)
	assert.True(t, progress.Steps[0].Completed)
	assert.True(t, progress.Steps[1].Completed)
	assert.True(t, progress.Steps[2].Completed)
	assert.True(t, progress.Steps[2].Current)
	assert.False(t, progress.Steps[3].Completed)
	assert.False(t, progress.Steps[4].Completed)
}

func TestProjectCancelledIsDistinctBanner(t *testing.T) {
	progress := Project(models.OrderStatusCancelled)

	assert.True(t, progress.Cancelled)
	assert.True(t, progress.Terminal)
	assert.Equal(t, 0, progress.Current)
	for _, step := range progress.Steps {
		assert.False(t, step.Completed)
		assert.False(t, step.Current)
	}
}

func TestProjectUnknownStatusRendersBlankBar(t *testing.T) {
	progress := Project(models.OrderStatus("mystery"))

	// A status outside the chain must not render as a fresh order.
	assert.False(t, progress.Cancelled)
	assert.False(t, progress.Terminal)
	for _, step := range progress.Steps {
		assert.False(t, step.Completed)
		assert.False(t, step.Current)
	}
}

func TestProjectDeliveredIsTerminal(t *testing.T) {
	progress := Project(models.OrderStatusDelivered)
	assert.True(t, progress.Terminal)
	assert.Equal(t, 4, progress.Current)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.OrderStatusReceived, models.OrderStatusPreparing, true},
		{models.OrderStatusReceived, models.OrderStatusReady, true}, // skipping ahead is allowed
		{models.OrderStatusPreparing, models.OrderStatusReceived, false},
		{models.OrderStatusEnRoute, models.OrderStatusDelivered, true},
		{models.OrderStatusReceived, models.OrderStatusCancelled, true},
		{models.OrderStatusEnRoute, models.OrderStatusCancelled, true},
		{models.OrderStatusDelivered, models.OrderStatusCancelled, false},
		{models.OrderStatusCancelled, models.OrderStatusPreparing, false},
		{models.OrderStatusDelivered, models.OrderStatusEnRoute, false},
		{models.OrderStatusReceived, "unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s → %s", tt.from, tt.to)
	}
}
