package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

// AvailabilityUseCase verifica, solo con lecturas, si un producto del menú
// puede prepararse N veces contra el stock agregado actual.
type AvailabilityUseCase struct {
	menuRepo  repository.MenuItemRepository
	stockRepo repository.StockItemRepository
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(menuRepo repository.MenuItemRepository, stockRepo repository.StockItemRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{menuRepo: menuRepo, stockRepo: stockRepo}
}

// Check resuelve la receta del producto y corre la verificación de
// disponibilidad con multiplicador = cantidad pedida.
func (uc *AvailabilityUseCase) Check(ctx context.Context, menuItemID string, quantity decimal.Decimal) (*inventory.AvailabilityResult, error) {
	if menuItemID == "" || !quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	menuItem, err := uc.menuRepo.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, domain.ErrNotFound
	}

	reqs, err := ResolveMenuRequirements(uc.menuRepo, menuItem)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.StockItemID)
	}
	items, err := uc.stockRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}

	result := inventory.CheckAvailability(reqs, quantity, items, time.Now())
	return &result, nil
}

// ResolveMenuRequirements traduce un producto del menú a sus necesidades de
// insumo por unidad: la receta si es compuesto, o una unidad del insumo
// vinculado si es simple. Un producto sin receta ni insumo no consume stock.
func ResolveMenuRequirements(menuRepo repository.MenuItemRepository, m *entity.MenuItem) ([]inventory.IngredientRequirement, error) {
	ingredients, err := menuRepo.GetIngredients(m.ID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		if m.StockItemID == nil || *m.StockItemID == "" {
			return nil, nil
		}
		return []inventory.IngredientRequirement{{
			StockItemID: *m.StockItemID,
			Name:        m.Name,
			Quantity:    decimal.NewFromInt(1),
		}}, nil
	}
	reqs := make([]inventory.IngredientRequirement, 0, len(ingredients))
	for _, ing := range ingredients {
		reqs = append(reqs, inventory.IngredientRequirement{
			StockItemID: ing.StockItemID,
			Quantity:    ing.Quantity,
			Unit:        ing.Unit,
		})
	}
	return reqs, nil
}
