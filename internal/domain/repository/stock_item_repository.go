package repository

import (
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// StockItemRepository define el puerto del registro de insumos.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE): es la disciplina de
// serialización por insumo de todas las operaciones que mutan stock.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	GetByIDs(ids []string) (map[string]*entity.StockItem, error)
	GetForUpdate(id string) (*entity.StockItem, error)
	List(limit, offset int) ([]*entity.StockItem, int, error)
	Update(item *entity.StockItem) error
	// ListExpiredWithStock: insumos vencidos a la fecha con stock > 0 y no
	// discontinuados (candidatos del barrido de vencimientos).
	ListExpiredWithStock(now time.Time) ([]*entity.StockItem, error)
	// MarkExpiredStatuses marca como expired los insumos ya vencidos sin tocar
	// cantidades. Devuelve cuántas filas cambió.
	MarkExpiredStatuses(now time.Time) (int, error)
}
