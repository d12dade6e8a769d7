package inventory

import (
	"context"
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

// AuditUseCase lectura del rastro de mutaciones de stock de un insumo.
type AuditUseCase struct {
	logRepo   repository.InventoryLogRepository
	stockRepo repository.StockItemRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(logRepo repository.InventoryLogRepository, stockRepo repository.StockItemRepository) *AuditUseCase {
	return &AuditUseCase{logRepo: logRepo, stockRepo: stockRepo}
}

// ListByItem devuelve el rastro de un insumo, del más reciente al más viejo.
func (uc *AuditUseCase) ListByItem(ctx context.Context, stockItemID string, page dto.PageRequest) ([]dto.InventoryLogResponse, error) {
	item, err := uc.stockRepo.GetByID(stockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	logs, err := uc.logRepo.ListByItem(stockItemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.InventoryLogResponse{
			ID:          l.ID,
			StockItemID: l.StockItemID,
			Change:      l.Change,
			Reason:      l.Reason,
			ReferenceID: l.ReferenceID,
			CreatedAt:   l.CreatedAt.Format(time.RFC3339),
			CreatedBy:   l.CreatedBy,
		})
	}
	return out, nil
}
