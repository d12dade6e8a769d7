package orders

import (
	"context"
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// TransitionStatus mueve el pedido al estado destino según la máquina de
// estados. Un pedido terminal (delivered/cancelled) no admite cambios. Pasar a
// cancelled restaura, en la misma tx, el stock de cada ingrediente resuelto en
// proporción a cantidad-por-unidad x cantidad de línea; el lock de la fila del
// pedido evita la doble restauración. Pasar a delivered estampa la hora real de
// entrega.
func (uc *OrderUseCase) TransitionStatus(ctx context.Context, userID, orderID, newStatus string) (*dto.OrderResponse, error) {
	if !IsValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(r appinventory.TxRepos) error {
		o, err := r.Orders.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if IsTerminal(o.Status) || !CanTransition(o.Status, newStatus) {
			return domain.ErrConflict
		}

		if newStatus == entity.OrderStatusCancelled {
			if err := uc.restoreOrderStock(r, userID, o.ID, now, appinventory.ReasonOrderCancel); err != nil {
				return err
			}
		}
		if newStatus == entity.OrderStatusDelivered {
			o.DeliveredAt = &now
		}

		o.Status = newStatus
		o.UpdatedAt = now
		o.UpdatedBy = userID
		if err := r.Orders.Update(o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	lines, err := uc.orderRepo.GetLines(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// restoreOrderStock repone el stock de todos los ingredientes resueltos de las
// líneas actuales del pedido, dentro de la tx recibida.
func (uc *OrderUseCase) restoreOrderStock(r appinventory.TxRepos, userID, orderID string, now time.Time, reason string) error {
	lines, err := r.Orders.GetLines(orderID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		menuItem, err := uc.menuRepo.GetByID(line.MenuItemID)
		if err != nil {
			return err
		}
		if menuItem == nil {
			continue // producto de carta borrado: no hay receta que reponer
		}
		reqs, err := appinventory.ResolveMenuRequirements(uc.menuRepo, menuItem)
		if err != nil {
			return err
		}
		for _, req := range reqs {
			restore := req.Quantity.Mul(line.Quantity)
			if err := uc.ledgerUC.RestoreInTx(r, userID, req.StockItemID, restore, reason, orderID, now); err != nil {
				return err
			}
		}
	}
	return nil
}
