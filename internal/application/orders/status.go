package orders

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// Máquina de estados del pedido: camino lineal pending → confirmed → preparing
// → ready → delivered, con salida lateral a cancelled desde pending o
// confirmed. delivered y cancelled son terminales.
var transitions = map[string]map[string]bool{
	entity.OrderStatusPending: {
		entity.OrderStatusConfirmed: true,
		entity.OrderStatusCancelled: true,
	},
	entity.OrderStatusConfirmed: {
		entity.OrderStatusPreparing: true,
		entity.OrderStatusCancelled: true,
	},
	entity.OrderStatusPreparing: {
		entity.OrderStatusReady: true,
	},
	entity.OrderStatusReady: {
		entity.OrderStatusDelivered: true,
	},
	entity.OrderStatusDelivered: {},
	entity.OrderStatusCancelled: {},
}

// IsValidStatus indica si el estado es uno de los conocidos.
func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(s string) bool {
	return s == entity.OrderStatusDelivered || s == entity.OrderStatusCancelled
}

// CanTransition indica si la máquina de estados permite pasar de from a to.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[from]
	return ok && allowed[to]
}
