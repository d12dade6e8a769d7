package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// Create crea un pedido. Primero valida y verifica disponibilidad de todas las
// líneas: cualquier faltante aborta el pedido completo sin crear nada y con el
// detalle de ingredientes faltantes. Con todo disponible persiste el pedido en
// pending (subtotal = suma de líneas) y luego, como paso secundario de mejor
// esfuerzo, consume los ingredientes del libro diario y escribe el registro de
// venta por línea; una falla parcial ahí se registra en el log y no revierte el
// pedido ya creado.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.OrderType {
	case entity.OrderTypeDineIn, entity.OrderTypeTakeaway, entity.OrderTypeDelivery:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Tax.LessThan(decimal.Zero) || in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	resolved, err := uc.resolveLines(in.Lines)
	if err != nil {
		return nil, err
	}
	items, err := uc.loadStockFor(resolved)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if err := checkAllLines(resolved, items, now); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	order := &entity.Order{
		ID:            uuid.New().String(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		OrderType:     in.OrderType,
		Status:        entity.OrderStatusPending,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}
	lines := make([]*entity.OrderLine, 0, len(resolved))
	for _, rl := range resolved {
		total := rl.Line.Quantity.Mul(rl.Line.UnitPrice)
		subtotal = subtotal.Add(total)
		lines = append(lines, &entity.OrderLine{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			MenuItemID: rl.Line.MenuItemID,
			Quantity:   rl.Line.Quantity,
			UnitPrice:  rl.Line.UnitPrice,
			TotalPrice: total,
		})
	}
	order.Subtotal = subtotal
	order.TotalAmount = subtotal.Add(in.Tax).Sub(in.Discount)

	err = uc.txRunner.Run(ctx, func(r appinventory.TxRepos) error {
		if err := r.Orders.Create(order); err != nil {
			return err
		}
		for _, l := range lines {
			if err := r.Orders.CreateLine(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Paso secundario: consumo de ingredientes y registro de venta, línea por
	// línea. Las fallas se registran y se continúa (inconsistencia aceptada).
	uc.deductAndRecordSales(ctx, userID, order, resolved, lines, now)

	return toOrderResponse(order, lines), nil
}

// deductAndRecordSales consume los ingredientes de cada línea del libro del día
// y escribe su registro de venta, una tx por línea, a mejor esfuerzo.
func (uc *OrderUseCase) deductAndRecordSales(ctx context.Context, userID string, order *entity.Order, resolved []resolvedLine, lines []*entity.OrderLine, now time.Time) {
	day := entity.DayOf(now)
	for i, rl := range resolved {
		line := lines[i]
		err := uc.txRunner.Run(ctx, func(r appinventory.TxRepos) error {
			for _, req := range rl.Reqs {
				needed := req.Quantity.Mul(rl.Line.Quantity)
				if err := uc.ledgerUC.DeductInTx(r, userID, req.StockItemID, day, needed, appinventory.ReasonOrderSale, order.ID, now); err != nil {
					return err
				}
			}
			return r.Sales.Create(&entity.SaleRecord{
				ID:         uuid.New().String(),
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Total:      line.TotalPrice,
				SoldAt:     now,
			})
		})
		if err != nil {
			uc.log.Warn().Err(err).
				Str("order_id", order.ID).
				Str("menu_item_id", line.MenuItemID).
				Msg("consumo o registro de venta fallido; el pedido se mantiene")
		}
	}
}
