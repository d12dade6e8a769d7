package dto

import "time"

// DayFormat formato de las claves de día calendario (libro diario y cierres).
const DayFormat = "2006-01-02"

// ParseDay interpreta una fecha día-calendario "YYYY-MM-DD" en hora local.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.Local)
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Detail lleva, cuando aplica, la lista de
// ingredientes faltantes con requerido vs disponible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}
