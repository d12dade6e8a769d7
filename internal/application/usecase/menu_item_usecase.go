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

// MenuItemUseCase administra la carta: productos simples (atados a un insumo) y
// compuestos (con receta de ingredientes).
type MenuItemUseCase struct {
	menuRepo  repository.MenuItemRepository
	stockRepo repository.StockItemRepository
}

// NewMenuItemUseCase construye el caso de uso.
func NewMenuItemUseCase(menuRepo repository.MenuItemRepository, stockRepo repository.StockItemRepository) *MenuItemUseCase {
	return &MenuItemUseCase{menuRepo: menuRepo, stockRepo: stockRepo}
}

// Create da de alta un producto de la carta. Valida que todo insumo referenciado
// (directo o de la receta) exista en el registro.
func (uc *MenuItemUseCase) Create(ctx context.Context, in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.StockItemID != "" && len(in.Ingredients) > 0 {
		return nil, domain.ErrInvalidInput // simple o compuesto, no ambos
	}
	if in.StockItemID != "" {
		item, err := uc.stockRepo.GetByID(in.StockItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
	}
	for _, ing := range in.Ingredients {
		if ing.StockItemID == "" || !ing.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.stockRepo.GetByID(ing.StockItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	m := &entity.MenuItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.StockItemID != "" {
		sid := in.StockItemID
		m.StockItemID = &sid
	}
	if err := uc.menuRepo.Create(m); err != nil {
		return nil, err
	}
	ingredients := make([]*entity.MenuItemIngredient, 0, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		mi := &entity.MenuItemIngredient{
			ID:          uuid.New().String(),
			MenuItemID:  m.ID,
			StockItemID: ing.StockItemID,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		}
		if err := uc.menuRepo.CreateIngredient(mi); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, mi)
	}
	return toMenuItemResponse(m, ingredients), nil
}

// GetByID devuelve un producto con su receta.
func (uc *MenuItemUseCase) GetByID(ctx context.Context, id string) (*dto.MenuItemResponse, error) {
	m, err := uc.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	ingredients, err := uc.menuRepo.GetIngredients(id)
	if err != nil {
		return nil, err
	}
	return toMenuItemResponse(m, ingredients), nil
}

// List lista la carta.
func (uc *MenuItemUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.MenuItemResponse, int, error) {
	page.DefaultPage()
	items, total, err := uc.menuRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, m := range items {
		ingredients, err := uc.menuRepo.GetIngredients(m.ID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *toMenuItemResponse(m, ingredients))
	}
	return out, total, nil
}

func toMenuItemResponse(m *entity.MenuItem, ingredients []*entity.MenuItemIngredient) *dto.MenuItemResponse {
	resp := &dto.MenuItemResponse{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
		Status:   m.Status,
	}
	if m.StockItemID != nil {
		resp.StockItemID = *m.StockItemID
	}
	for _, ing := range ingredients {
		resp.Ingredients = append(resp.Ingredients, dto.MenuIngredientResponse{
			StockItemID: ing.StockItemID,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		})
	}
	return resp
}
