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

// WasteUseCase registra mermas manuales (producto dañado, derrame, etc.)
// descontando el stock agregado del insumo.
type WasteUseCase struct {
	txRunner  TxRunner
	wasteRepo repository.WasteRecordRepository
}

// NewWasteUseCase construye el caso de uso.
func NewWasteUseCase(txRunner TxRunner, wasteRepo repository.WasteRecordRepository) *WasteUseCase {
	return &WasteUseCase{txRunner: txRunner, wasteRepo: wasteRepo}
}

// RegisterWaste crea una merma manual: valida categoría y cantidad, bloquea la
// fila del insumo, descuenta el agregado y deja rastro negativo más el registro
// de merma, todo en una tx.
func (uc *WasteUseCase) RegisterWaste(ctx context.Context, userID string, in dto.RegisterWasteRequest) (*dto.WasteRecordResponse, error) {
	if in.StockItemID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != entity.WasteCategorySpoiled && in.Category != entity.WasteCategoryManual {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var waste *entity.WasteRecord
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		item, err := r.Stock.GetForUpdate(in.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if item.CurrentStock.LessThan(in.Quantity) {
			return &inventory.InsufficientStockError{
				StockItemID: item.ID,
				ItemName:    item.Name,
				Required:    in.Quantity,
				Available:   item.CurrentStock,
			}
		}

		waste = &entity.WasteRecord{
			ID:          uuid.New().String(),
			StockItemID: item.ID,
			Category:    in.Category,
			Quantity:    in.Quantity,
			Unit:        item.Unit,
			Cost:        in.Quantity.Mul(item.Cost),
			Note:        in.Note,
			LoggedBy:    userID,
			LoggedAt:    now,
		}
		if err := r.Waste.Create(waste); err != nil {
			return err
		}
		if err := r.Logs.Create(&entity.InventoryLog{
			ID:          uuid.New().String(),
			StockItemID: item.ID,
			Change:      in.Quantity.Neg(),
			Reason:      ReasonManualWaste,
			ReferenceID: waste.ID,
			CreatedAt:   now,
			CreatedBy:   userID,
		}); err != nil {
			return err
		}

		item.CurrentStock = item.CurrentStock.Sub(in.Quantity)
		if item.Status != entity.StockStatusDiscontinued {
			item.Status = entity.StockStatusFor(item.CurrentStock, item.MinThreshold)
		}
		item.UpdatedAt = now
		return r.Stock.Update(item)
	})
	if err != nil {
		return nil, err
	}
	return toWasteRecordResponse(waste), nil
}

// ListWaste lista mermas en un rango de fechas.
func (uc *WasteUseCase) ListWaste(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]dto.WasteRecordResponse, int, error) {
	page.DefaultPage()
	records, total, err := uc.wasteRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.WasteRecordResponse, 0, len(records))
	for _, w := range records {
		out = append(out, *toWasteRecordResponse(w))
	}
	return out, total, nil
}

func toWasteRecordResponse(w *entity.WasteRecord) *dto.WasteRecordResponse {
	return &dto.WasteRecordResponse{
		ID:          w.ID,
		StockItemID: w.StockItemID,
		Category:    w.Category,
		Quantity:    w.Quantity,
		Unit:        w.Unit,
		Cost:        w.Cost,
		Note:        w.Note,
		LoggedBy:    w.LoggedBy,
		LoggedAt:    w.LoggedAt.Format(time.RFC3339),
	}
}
