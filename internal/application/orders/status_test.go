package orders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/orders"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// La máquina de estados completa: camino lineal, salida a cancelled y terminales.
func TestCanTransition_Tabla(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusConfirmed, true},
		{entity.OrderStatusPending, entity.OrderStatusCancelled, true},
		{entity.OrderStatusPending, entity.OrderStatusPreparing, false},
		{entity.OrderStatusPending, entity.OrderStatusDelivered, false},
		{entity.OrderStatusConfirmed, entity.OrderStatusPreparing, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusCancelled, true},
		{entity.OrderStatusConfirmed, entity.OrderStatusReady, false},
		{entity.OrderStatusPreparing, entity.OrderStatusReady, true},
		{entity.OrderStatusPreparing, entity.OrderStatusCancelled, false},
		{entity.OrderStatusReady, entity.OrderStatusDelivered, true},
		{entity.OrderStatusReady, entity.OrderStatusCancelled, false},
		{entity.OrderStatusDelivered, entity.OrderStatusPending, false},
		{entity.OrderStatusCancelled, entity.OrderStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, orders.CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, orders.IsTerminal(entity.OrderStatusDelivered))
	assert.True(t, orders.IsTerminal(entity.OrderStatusCancelled))
	assert.False(t, orders.IsTerminal(entity.OrderStatusPending))
	assert.False(t, orders.IsTerminal(entity.OrderStatusReady))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, orders.IsValidStatus(entity.OrderStatusPending))
	assert.True(t, orders.IsValidStatus(entity.OrderStatusCancelled))
	assert.False(t, orders.IsValidStatus("archived"))
	assert.False(t, orders.IsValidStatus(""))
}
