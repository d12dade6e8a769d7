package repository

import "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"

// SaleRecordRepository define el puerto del registro de ventas (analítica, solo inserción).
type SaleRecordRepository interface {
	Create(s *entity.SaleRecord) error
}
