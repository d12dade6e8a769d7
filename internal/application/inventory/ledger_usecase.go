package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

// Razones del rastro de inventario.
const (
	ReasonBatchIntake    = "ingreso de lote"
	ReasonOrderSale      = "consumo por pedido"
	ReasonOrderCancel    = "restauración por cancelación"
	ReasonOrderEdit      = "restauración por edición"
	ReasonExpiryWriteOff = "castigo por vencimiento"
	ReasonManualWaste    = "merma manual"
)

// LedgerUseCase opera el libro diario de lotes: ingreso de mercancía,
// consumo FIFO-por-vencimiento y restauración compensatoria.
type LedgerUseCase struct {
	txRunner   TxRunner
	dayRepo    repository.DayStatusRepository
	ledgerRepo repository.LedgerEntryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner TxRunner, dayRepo repository.DayStatusRepository, ledgerRepo repository.LedgerEntryRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, dayRepo: dayRepo, ledgerRepo: ledgerRepo}
}

// AddBatch ingresa un lote al día indicado. Falla con ErrDayClosed si el día ya
// fue cerrado. En una sola tx: crea el lote, suma al stock agregado del insumo,
// extiende su vencimiento agregado si el lote vence después y deja rastro.
func (uc *LedgerUseCase) AddBatch(ctx context.Context, userID string, in dto.AddBatchRequest) (*dto.LedgerEntryResponse, error) {
	if in.StockItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Cost != nil && in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	day := entity.DayOf(now)
	if in.Date != "" {
		parsed, err := dto.ParseDay(in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		day = parsed
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		parsed, err := dto.ParseDay(in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &parsed
	}

	ds, err := uc.dayRepo.Get(day)
	if err != nil {
		return nil, err
	}
	if ds != nil && ds.IsEnded {
		return nil, domain.ErrDayClosed
	}

	entry := &entity.LedgerEntry{
		ID:                uuid.New().String(),
		StockItemID:       in.StockItemID,
		Date:              day,
		Quantity:          in.Quantity,
		RemainingQuantity: in.Quantity,
		Cost:              in.Cost,
		ExpiryDate:        expiry,
		CreatedAt:         now,
		CreatedBy:         userID,
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		item, err := r.Stock.GetForUpdate(in.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.Status == entity.StockStatusDiscontinued {
			return domain.ErrConflict
		}

		if err := r.Ledger.Create(entry); err != nil {
			return err
		}
		// El día queda registrado como abierto con su primer lote.
		if ds == nil {
			if err := r.Days.Save(&entity.DayStatus{Date: day}); err != nil {
				return err
			}
		}

		item.CurrentStock = item.CurrentStock.Add(in.Quantity)
		if expiry != nil && (item.ExpiryDate == nil || expiry.After(*item.ExpiryDate)) {
			item.ExpiryDate = expiry
		}
		if in.Cost != nil {
			item.Cost = *in.Cost
		}
		item.Status = entity.StockStatusFor(item.CurrentStock, item.MinThreshold)
		item.UpdatedAt = now
		if err := r.Stock.Update(item); err != nil {
			return err
		}

		return r.Logs.Create(&entity.InventoryLog{
			ID:          uuid.New().String(),
			StockItemID: item.ID,
			Change:      in.Quantity,
			Reason:      ReasonBatchIntake,
			ReferenceID: entry.ID,
			CreatedAt:   now,
			CreatedBy:   userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toLedgerEntryResponse(entry), nil
}

// DeductInTx consume `quantity` de los lotes del día de un insumo en orden
// FIFO-por-vencimiento, usando los repositorios de la transacción del caller.
// Los lotes ya vencidos no son consumibles. Si los lotes usables se agotan
// antes de cubrir lo requerido retorna InsufficientStockError con el detalle;
// el Rollback de la tx del caller deshace lo tocado. En éxito también resta el
// stock agregado del insumo y deja rastro con cambio negativo.
func (uc *LedgerUseCase) DeductInTx(r TxRepos, userID, stockItemID string, day time.Time, quantity decimal.Decimal, reason, referenceID string, now time.Time) error {
	item, err := r.Stock.GetForUpdate(stockItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	entries, err := r.Ledger.ListForDeduction(stockItemID, day)
	if err != nil {
		return err
	}
	plan, available, ok := inventory.PlanFIFODeduction(entries, quantity, now)
	if !ok {
		return &inventory.InsufficientStockError{
			StockItemID: item.ID,
			ItemName:    item.Name,
			Required:    quantity,
			Available:   available,
		}
	}
	for _, step := range plan {
		remaining := step.Entry.RemainingQuantity.Sub(step.Take)
		if err := r.Ledger.UpdateRemaining(step.Entry.ID, remaining); err != nil {
			return err
		}
	}

	// El agregado nunca baja de cero aunque el libro y el agregado hayan derivado.
	item.CurrentStock = decimal.Max(decimal.Zero, item.CurrentStock.Sub(quantity))
	if item.Status != entity.StockStatusDiscontinued {
		item.Status = entity.StockStatusFor(item.CurrentStock, item.MinThreshold)
	}
	item.UpdatedAt = now
	if err := r.Stock.Update(item); err != nil {
		return err
	}

	return r.Logs.Create(&entity.InventoryLog{
		ID:          uuid.New().String(),
		StockItemID: item.ID,
		Change:      quantity.Neg(),
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
}

// RestoreInTx devuelve `quantity` al stock agregado del insumo y deja rastro
// con cambio positivo. Es deliberadamente grueso: no intenta reconstruir de qué
// lote salió la cantidad, solo repone el agregado.
func (uc *LedgerUseCase) RestoreInTx(r TxRepos, userID, stockItemID string, quantity decimal.Decimal, reason, referenceID string, now time.Time) error {
	item, err := r.Stock.GetForUpdate(stockItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	item.CurrentStock = item.CurrentStock.Add(quantity)
	if item.Status != entity.StockStatusDiscontinued {
		item.Status = entity.StockStatusFor(item.CurrentStock, item.MinThreshold)
	}
	item.UpdatedAt = now
	if err := r.Stock.Update(item); err != nil {
		return err
	}

	return r.Logs.Create(&entity.InventoryLog{
		ID:          uuid.New().String(),
		StockItemID: item.ID,
		Change:      quantity,
		Reason:      reason,
		ReferenceID: referenceID,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
}

// ListDay lista los lotes de un día del libro.
func (uc *LedgerUseCase) ListDay(ctx context.Context, day time.Time) ([]dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.ListByDay(entity.DayOf(day))
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toLedgerEntryResponse(e))
	}
	return out, nil
}

func toLedgerEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	resp := &dto.LedgerEntryResponse{
		ID:                e.ID,
		StockItemID:       e.StockItemID,
		Date:              e.Date.Format(dto.DayFormat),
		Quantity:          e.Quantity,
		RemainingQuantity: e.RemainingQuantity,
		Cost:              e.Cost,
		CreatedAt:         e.CreatedAt.Format(time.RFC3339),
		CreatedBy:         e.CreatedBy,
	}
	if e.ExpiryDate != nil {
		resp.ExpiryDate = e.ExpiryDate.Format(dto.DayFormat)
	}
	return resp
}
