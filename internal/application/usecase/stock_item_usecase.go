package usecase

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

// StockItemUseCase administra el registro de insumos: alta, consulta,
// actualización de umbrales y baja lógica (discontinued). El stock en sí no se
// toca por acá; eso es del libro diario y sus consumos.
type StockItemUseCase struct {
	stockRepo repository.StockItemRepository
}

// NewStockItemUseCase construye el caso de uso.
func NewStockItemUseCase(stockRepo repository.StockItemRepository) *StockItemUseCase {
	return &StockItemUseCase{stockRepo: stockRepo}
}

// Create da de alta un insumo con stock cero. Nombre+categoría son únicos:
// el repositorio devuelve ErrDuplicate si ya existe esa combinación.
func (uc *StockItemUseCase) Create(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" || in.Category == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.MinThreshold.LessThan(decimal.Zero) || in.MaxThreshold.LessThan(decimal.Zero) || in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var expiry *time.Time
	if in.ExpiryDate != "" {
		d, err := dto.ParseDay(in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expiry = &d
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Unit:         in.Unit,
		CurrentStock: decimal.Zero,
		MinThreshold: in.MinThreshold,
		MaxThreshold: in.MaxThreshold,
		Cost:         in.Cost,
		ExpiryDate:   expiry,
		Status:       entity.StockStatusOutOfStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetByID devuelve un insumo.
func (uc *StockItemUseCase) GetByID(ctx context.Context, id string) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item), nil
}

// List lista los insumos del registro.
func (uc *StockItemUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.StockItemResponse, int, error) {
	page.DefaultPage()
	items, total, err := uc.stockRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toStockItemResponse(it))
	}
	return out, total, nil
}

// Update modifica datos maestros del insumo. Discontinue lo da de baja
// lógicamente: conserva el stock registrado pero deja de aceptar ingresos y
// consumos nuevos.
func (uc *StockItemUseCase) Update(ctx context.Context, id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Unit != "" {
		item.Unit = in.Unit
	}
	if in.MinThreshold != nil {
		if in.MinThreshold.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.MinThreshold = *in.MinThreshold
	}
	if in.MaxThreshold != nil {
		if in.MaxThreshold.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.MaxThreshold = *in.MaxThreshold
	}
	if in.Cost != nil {
		if in.Cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.Cost = *in.Cost
	}
	if in.Discontinue {
		item.Status = entity.StockStatusDiscontinued
	} else if item.Status != entity.StockStatusDiscontinued && item.Status != entity.StockStatusExpired {
		item.Status = entity.StockStatusFor(item.CurrentStock, item.MinThreshold)
	}
	item.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

func toStockItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	resp := &dto.StockItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Unit:         it.Unit,
		CurrentStock: it.CurrentStock,
		MinThreshold: it.MinThreshold,
		MaxThreshold: it.MaxThreshold,
		Cost:         it.Cost,
		Status:       it.Status,
		CreatedAt:    it.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    it.UpdatedAt.Format(time.RFC3339),
	}
	if it.ExpiryDate != nil {
		resp.ExpiryDate = it.ExpiryDate.Format(dto.DayFormat)
	}
	return resp
}
