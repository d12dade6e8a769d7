package repository

import (
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// WasteRecordRepository define el puerto de registros de merma (solo inserción y lectura).
type WasteRecordRepository interface {
	Create(w *entity.WasteRecord) error
	List(from, to *time.Time, limit, offset int) ([]*entity.WasteRecord, int, error)
}
