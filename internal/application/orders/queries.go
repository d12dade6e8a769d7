package orders

import (
	"context"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
)

// GetByID devuelve un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.GetLines(orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, lines), nil
}

// List lista pedidos, opcionalmente filtrados por estado.
func (uc *OrderUseCase) List(ctx context.Context, status string, page dto.PageRequest) ([]dto.OrderResponse, int, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, 0, domain.ErrInvalidInput
	}
	page.DefaultPage()
	ordersList, total, err := uc.orderRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.OrderResponse, 0, len(ordersList))
	for _, o := range ordersList {
		lines, err := uc.orderRepo.GetLines(o.ID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *toOrderResponse(o, lines))
	}
	return out, total, nil
}
