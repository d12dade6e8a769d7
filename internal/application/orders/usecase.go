package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/pkg/logger"
)

// OrderUseCase maneja el ciclo de vida de pedidos: creación con verificación de
// disponibilidad y consumo FIFO, transiciones de estado con compensación al
// cancelar, y reemplazo de líneas mientras el pedido sea editable.
type OrderUseCase struct {
	txRunner  appinventory.TxRunner
	ledgerUC  *appinventory.LedgerUseCase
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuItemRepository
	stockRepo repository.StockItemRepository
	log       *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner appinventory.TxRunner,
	ledgerUC *appinventory.LedgerUseCase,
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	stockRepo repository.StockItemRepository,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		ledgerUC:  ledgerUC,
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		stockRepo: stockRepo,
		log:       log,
	}
}

// resolvedLine es una línea validada con su producto de carta y las necesidades
// de insumo por unidad ya resueltas.
type resolvedLine struct {
	Line     dto.OrderLineRequest
	MenuItem *entity.MenuItem
	Reqs     []inventory.IngredientRequirement
}

// resolveLines valida cada línea (cantidad > 0, precio >= 0, producto
// existente) y resuelve su receta. Precio en cero toma el precio de carta.
func (uc *OrderUseCase) resolveLines(lines []dto.OrderLineRequest) ([]resolvedLine, error) {
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	resolved := make([]resolvedLine, 0, len(lines))
	for _, line := range lines {
		if line.MenuItemID == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		menuItem, err := uc.menuRepo.GetByID(line.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, domain.ErrNotFound
		}
		if line.UnitPrice.IsZero() {
			line.UnitPrice = menuItem.Price
		}
		reqs, err := appinventory.ResolveMenuRequirements(uc.menuRepo, menuItem)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedLine{Line: line, MenuItem: menuItem, Reqs: reqs})
	}
	return resolved, nil
}

// loadStockFor carga en un mapa todos los insumos que referencian las líneas resueltas.
func (uc *OrderUseCase) loadStockFor(resolved []resolvedLine) (map[string]*entity.StockItem, error) {
	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, rl := range resolved {
		for _, req := range rl.Reqs {
			if !seen[req.StockItemID] {
				seen[req.StockItemID] = true
				ids = append(ids, req.StockItemID)
			}
		}
	}
	return uc.stockRepo.GetByIDs(ids)
}

// checkAllLines corre la verificación de disponibilidad por línea con
// multiplicador = cantidad de la línea. Acumula todos los faltantes para que el
// caller pueda mostrar el detalle completo.
func checkAllLines(resolved []resolvedLine, items map[string]*entity.StockItem, now time.Time) error {
	var missing []inventory.MissingIngredient
	for _, rl := range resolved {
		result := inventory.CheckAvailability(rl.Reqs, rl.Line.Quantity, items, now)
		if !result.IsAvailable {
			missing = append(missing, result.Missing...)
		}
	}
	if len(missing) > 0 {
		return &inventory.UnavailableError{Missing: missing}
	}
	return nil
}

func toOrderResponse(o *entity.Order, lines []*entity.OrderLine) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		OrderType:     o.OrderType,
		Status:        o.Status,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Discount:      o.Discount,
		TotalAmount:   o.TotalAmount,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.Format(time.RFC3339),
		Lines:         make([]dto.OrderLineResponse, 0, len(lines)),
	}
	if o.DeliveredAt != nil {
		resp.DeliveredAt = o.DeliveredAt.Format(time.RFC3339)
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ID:         l.ID,
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.TotalPrice,
		})
	}
	return resp
}
