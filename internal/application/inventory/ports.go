package inventory

import (
	"context"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Stock  repository.StockItemRepository
	Ledger repository.LedgerEntryRepository
	Days   repository.DayStatusRepository
	Logs   repository.InventoryLogRepository
	Orders repository.OrderRepository
	Waste  repository.WasteRecordRepository
	Sales  repository.SaleRecordRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de inventario:
// los locks de fila tomados dentro (SELECT FOR UPDATE sobre stock_items)
// serializan las operaciones que mutan stock del mismo insumo.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
