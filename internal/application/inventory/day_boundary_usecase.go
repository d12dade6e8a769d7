package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

// DayBoundaryUseCase cierra y abre días de operación. Un día cerrado es
// terminal: no se reabre y no admite más ingresos al libro.
type DayBoundaryUseCase struct {
	txRunner TxRunner
	dayRepo  repository.DayStatusRepository
}

// NewDayBoundaryUseCase construye el caso de uso.
func NewDayBoundaryUseCase(txRunner TxRunner, dayRepo repository.DayStatusRepository) *DayBoundaryUseCase {
	return &DayBoundaryUseCase{txRunner: txRunner, dayRepo: dayRepo}
}

// EndDay cierra el día indicado. Falla con ErrDayAlreadyEnded si ya fue
// cerrado. No toca lotes ni cantidades de stock.
func (uc *DayBoundaryUseCase) EndDay(ctx context.Context, userID string, day time.Time) (*dto.DayStatusResponse, error) {
	day = entity.DayOf(day)
	ds, err := uc.dayRepo.Get(day)
	if err != nil {
		return nil, err
	}
	if ds != nil && ds.IsEnded {
		return nil, domain.ErrDayAlreadyEnded
	}

	now := time.Now()
	ds = &entity.DayStatus{Date: day, IsEnded: true, EndedAt: &now, EndedBy: userID}
	if err := uc.dayRepo.Save(ds); err != nil {
		return nil, err
	}
	return toDayStatusResponse(ds), nil
}

// StartNewDay abre el día arrastrando del día anterior todo lote con cantidad
// restante y vencimiento vigente (lote fresco: cantidad = restante, mismo costo
// y vencimiento). Falla con ErrPriorDayNotEnded si el día anterior sigue
// abierto y con ErrDayAlreadyEnded si el día a abrir ya fue cerrado. Los lotes
// vencidos se descartan en silencio: su stock lo concilia el barrido de
// vencimientos, no la apertura. No altera el stock agregado de ningún insumo.
func (uc *DayBoundaryUseCase) StartNewDay(ctx context.Context, userID string, today time.Time) (*dto.StartDayResponse, error) {
	today = entity.DayOf(today)
	yesterday := today.AddDate(0, 0, -1)

	prior, err := uc.dayRepo.Get(yesterday)
	if err != nil {
		return nil, err
	}
	if prior == nil || !prior.IsEnded {
		return nil, domain.ErrPriorDayNotEnded
	}
	current, err := uc.dayRepo.Get(today)
	if err != nil {
		return nil, err
	}
	if current != nil && current.IsEnded {
		return nil, domain.ErrDayAlreadyEnded
	}

	now := time.Now()
	resp := &dto.StartDayResponse{Date: today.Format(dto.DayFormat), Items: []dto.CarriedItem{}}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		entries, err := r.Ledger.ListByDay(yesterday)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.RemainingQuantity.LessThanOrEqual(decimal.Zero) {
				continue
			}
			if e.ExpiryDate != nil && e.ExpiryDate.Before(now) {
				continue
			}
			carried := &entity.LedgerEntry{
				ID:                uuid.New().String(),
				StockItemID:       e.StockItemID,
				Date:              today,
				Quantity:          e.RemainingQuantity,
				RemainingQuantity: e.RemainingQuantity,
				Cost:              e.Cost,
				ExpiryDate:        e.ExpiryDate,
				CreatedAt:         now,
				CreatedBy:         userID,
			}
			if err := r.Ledger.Create(carried); err != nil {
				return err
			}
			item := dto.CarriedItem{StockItemID: e.StockItemID, Quantity: e.RemainingQuantity}
			if e.ExpiryDate != nil {
				item.ExpiryDate = e.ExpiryDate.Format(dto.DayFormat)
			}
			resp.Items = append(resp.Items, item)
		}
		resp.CarriedCount = len(resp.Items)

		if current == nil {
			return r.Days.Save(&entity.DayStatus{Date: today})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetStatus devuelve el estado de un día; un día sin registro se reporta abierto.
func (uc *DayBoundaryUseCase) GetStatus(ctx context.Context, day time.Time) (*dto.DayStatusResponse, error) {
	day = entity.DayOf(day)
	ds, err := uc.dayRepo.Get(day)
	if err != nil {
		return nil, err
	}
	if ds == nil {
		ds = &entity.DayStatus{Date: day}
	}
	return toDayStatusResponse(ds), nil
}

func toDayStatusResponse(ds *entity.DayStatus) *dto.DayStatusResponse {
	resp := &dto.DayStatusResponse{
		Date:    ds.Date.Format(dto.DayFormat),
		IsEnded: ds.IsEnded,
		EndedBy: ds.EndedBy,
	}
	if ds.EndedAt != nil {
		resp.EndedAt = ds.EndedAt.Format(time.RFC3339)
	}
	return resp
}
