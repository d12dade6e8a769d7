package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// DayHandler maneja el ciclo de días de operación: cierre, apertura con
// arrastre de lotes y consulta de estado.
type DayHandler struct {
	uc *appinventory.DayBoundaryUseCase
}

// NewDayHandler construye el handler.
func NewDayHandler(uc *appinventory.DayBoundaryUseCase) *DayHandler {
	return &DayHandler{uc: uc}
}

func parseDayOrToday(s string) (time.Time, bool) {
	if s == "" {
		return entity.DayOf(time.Now()), true
	}
	parsed, err := dto.ParseDay(s)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// EndDay godoc
// @Summary      Cerrar un día de operación
// @Tags         days
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EndDayRequest  true  "date YYYY-MM-DD (vacío = hoy)"
// @Success      200   {object}  dto.DayStatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/days/end [post]
func (h *DayHandler) EndDay(c *fiber.Ctx) error {
	var in dto.EndDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	day, ok := parseDayOrToday(in.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválida, formato YYYY-MM-DD"})
	}
	status, err := h.uc.EndDay(c.Context(), GetUserID(c), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// StartDay godoc
// @Summary      Abrir un día con arrastre de lotes
// @Description  Exige que el día anterior esté cerrado. Arrastra al nuevo día los
//               lotes del anterior con restante > 0 y no vencidos; los vencidos
//               quedan atrás para el barrido.
// @Tags         days
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartDayRequest  true  "date YYYY-MM-DD (vacío = hoy)"
// @Success      200   {object}  dto.StartDayResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/days/start [post]
func (h *DayHandler) StartDay(c *fiber.Ctx) error {
	var in dto.StartDayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	day, ok := parseDayOrToday(in.Date)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválida, formato YYYY-MM-DD"})
	}
	resp, err := h.uc.StartNewDay(c.Context(), GetUserID(c), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetStatus godoc
// @Summary      Consultar el estado de un día
// @Tags         days
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "día YYYY-MM-DD"
// @Success      200  {object}  dto.DayStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/days/{date} [get]
func (h *DayHandler) GetStatus(c *fiber.Ctx) error {
	day, err := dto.ParseDay(c.Params("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválida, formato YYYY-MM-DD"})
	}
	status, err := h.uc.GetStatus(c.Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}
