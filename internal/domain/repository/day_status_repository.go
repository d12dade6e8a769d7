package repository

import (
	"time"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// DayStatusRepository define el puerto del estado de los días de operación.
// Get devuelve nil (sin error) si el día no tiene registro aún: un día sin
// registro se considera abierto.
type DayStatusRepository interface {
	Get(day time.Time) (*entity.DayStatus, error)
	Save(ds *entity.DayStatus) error
}
