package entity

import "time"

// DayStatus registra el ciclo administrativo de un día de operación.
// Se crea implícitamente abierto con el primer lote del día; una vez cerrado
// (IsEnded) no se reabre y el día no admite más ingresos al libro.
type DayStatus struct {
	Date    time.Time // día calendario, normalizado a medianoche
	IsEnded bool
	EndedAt *time.Time
	EndedBy string
}
