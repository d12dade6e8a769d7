package repository

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// OrderRepository define el puerto de pedidos y sus líneas.
type OrderRepository interface {
	Create(o *entity.Order) error
	CreateLine(l *entity.OrderLine) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila del pedido; evita doble cancelación y
	// transiciones concurrentes sobre el mismo pedido.
	GetForUpdate(id string) (*entity.Order, error)
	GetLines(orderID string) ([]*entity.OrderLine, error)
	Update(o *entity.Order) error
	DeleteLines(orderID string) error
	List(status string, limit, offset int) ([]*entity.Order, int, error)
}
