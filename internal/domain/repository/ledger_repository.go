package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// LedgerEntryRepository define el puerto del libro diario de lotes.
type LedgerEntryRepository interface {
	Create(e *entity.LedgerEntry) error
	// ListForDeduction devuelve los lotes con cantidad restante de un insumo en
	// un día, ordenados por vencimiento ascendente (nulos al final) y luego por
	// creación ascendente: el orden de consumo FIFO-por-vencimiento.
	ListForDeduction(stockItemID string, day time.Time) ([]*entity.LedgerEntry, error)
	UpdateRemaining(id string, remaining decimal.Decimal) error
	ListByDay(day time.Time) ([]*entity.LedgerEntry, error)
}
