package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/logger"
)

// ExpirySweepUseCase concilia vencimientos: convierte el stock aún en mano de
// insumos vencidos en registros de merma y lo deja en cero. Es idempotente y
// seguro de correr en paralelo consigo mismo: la precondición currentStock > 0
// se reverifica bajo lock de fila, insumo por insumo.
type ExpirySweepUseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockItemRepository
	log       *logger.Logger
}

// NewExpirySweepUseCase construye el caso de uso.
func NewExpirySweepUseCase(txRunner TxRunner, stockRepo repository.StockItemRepository, log *logger.Logger) *ExpirySweepUseCase {
	return &ExpirySweepUseCase{txRunner: txRunner, stockRepo: stockRepo, log: log}
}

// RunExpirySweep procesa cada insumo con vencimiento pasado, stock > 0 y estado
// distinto de discontinued: crea la merma (cantidad = stock, costo = cantidad x
// costo unitario), deja rastro negativo y fija currentStock = 0, status =
// expired. Una falla en un insumo se registra y no detiene el resto del barrido.
func (uc *ExpirySweepUseCase) RunExpirySweep(ctx context.Context) (*dto.SweepSummaryResponse, error) {
	now := time.Now()
	candidates, err := uc.stockRepo.ListExpiredWithStock(now)
	if err != nil {
		return nil, err
	}

	summary := &dto.SweepSummaryResponse{TotalWasteCost: decimal.Zero}
	for _, candidate := range candidates {
		err := uc.txRunner.Run(ctx, func(r TxRepos) error {
			item, err := r.Stock.GetForUpdate(candidate.ID)
			if err != nil {
				return err
			}
			// Reverificación bajo lock: otro barrido o un pedido pudo
			// habernos ganado la fila.
			if item == nil || !item.CurrentStock.GreaterThan(decimal.Zero) ||
				item.Status == entity.StockStatusDiscontinued || !item.IsExpired(now) {
				return nil
			}

			wasteQty := item.CurrentStock
			wasteCost := wasteQty.Mul(item.Cost)
			waste := &entity.WasteRecord{
				ID:          uuid.New().String(),
				StockItemID: item.ID,
				Category:    entity.WasteCategoryExpired,
				Quantity:    wasteQty,
				Unit:        item.Unit,
				Cost:        wasteCost,
				LoggedBy:    "expiry-sweep",
				LoggedAt:    now,
			}
			if err := r.Waste.Create(waste); err != nil {
				return err
			}
			if err := r.Logs.Create(&entity.InventoryLog{
				ID:          uuid.New().String(),
				StockItemID: item.ID,
				Change:      wasteQty.Neg(),
				Reason:      ReasonExpiryWriteOff,
				ReferenceID: waste.ID,
				CreatedAt:   now,
				CreatedBy:   "expiry-sweep",
			}); err != nil {
				return err
			}

			item.CurrentStock = decimal.Zero
			item.Status = entity.StockStatusExpired
			item.UpdatedAt = now
			if err := r.Stock.Update(item); err != nil {
				return err
			}

			summary.ProcessedCount++
			summary.TotalWasteCost = summary.TotalWasteCost.Add(wasteCost)
			return nil
		})
		if err != nil {
			uc.log.Error().Err(err).Str("stock_item_id", candidate.ID).Msg("barrido de vencimientos: insumo fallido")
		}
	}
	return summary, nil
}

// MarkExpiredStatus es el barrido liviano: solo marca status = expired en los
// insumos ya vencidos, sin convertir merma. Pensado para correr más seguido.
func (uc *ExpirySweepUseCase) MarkExpiredStatus(ctx context.Context) (int, error) {
	return uc.stockRepo.MarkExpiredStatuses(time.Now())
}
