package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/repository"
)

var _ repository.DayStatusRepository = (*DayStatusRepo)(nil)

// DayStatusRepo implementación de DayStatusRepository sobre PostgreSQL.
type DayStatusRepo struct {
	q Querier
}

// NewDayStatusRepository construye el adaptador de estado de día. Pasar pool o tx (Querier).
func NewDayStatusRepository(q Querier) *DayStatusRepo {
	return &DayStatusRepo{q: q}
}

// Get devuelve el estado del día o nil si no tiene registro (día abierto implícito).
func (r *DayStatusRepo) Get(day time.Time) (*entity.DayStatus, error) {
	query := `SELECT day, is_ended, ended_at, ended_by FROM day_statuses WHERE day = $1`
	var ds entity.DayStatus
	err := r.q.QueryRow(context.Background(), query, day).Scan(
		&ds.Date, &ds.IsEnded, &ds.EndedAt, &ds.EndedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get day status: %w", err)
	}
	return &ds, nil
}

// Save inserta o actualiza el estado del día.
func (r *DayStatusRepo) Save(ds *entity.DayStatus) error {
	query := `
		INSERT INTO day_statuses (day, is_ended, ended_at, ended_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day)
		DO UPDATE SET is_ended = EXCLUDED.is_ended, ended_at = EXCLUDED.ended_at, ended_by = EXCLUDED.ended_by`
	_, err := r.q.Exec(context.Background(), query, ds.Date, ds.IsEnded, ds.EndedAt, ds.EndedBy)
	if err != nil {
		return fmt.Errorf("save day status: %w", err)
	}
	return nil
}
