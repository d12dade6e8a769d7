package repository

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// InventoryLogRepository define el puerto del rastro de mutaciones de stock (append-only).
type InventoryLogRepository interface {
	Create(l *entity.InventoryLog) error
	ListByItem(stockItemID string, limit, offset int) ([]*entity.InventoryLog, error)
}
