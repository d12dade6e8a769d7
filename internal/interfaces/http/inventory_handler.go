package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/entity"
)

// InventoryHandler maneja el libro diario: ingreso de lotes, consulta del día,
// mermas y barrido de vencimientos.
type InventoryHandler struct {
	ledger *appinventory.LedgerUseCase
	waste  *appinventory.WasteUseCase
	sweep  *appinventory.ExpirySweepUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *appinventory.LedgerUseCase, waste *appinventory.WasteUseCase, sweep *appinventory.ExpirySweepUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, waste: waste, sweep: sweep}
}

// AddBatch godoc
// @Summary      Ingresar un lote al libro diario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddBatchRequest  true  "stock_item_id, quantity, cost, date (vacío = hoy), expiry_date"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/batches [post]
func (h *InventoryHandler) AddBatch(c *fiber.Ctx) error {
	var in dto.AddBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, err := h.ledger.AddBatch(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListLedger godoc
// @Summary      Consultar los lotes de un día
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "día YYYY-MM-DD (vacío = hoy)"
// @Success      200  {array}  dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger [get]
func (h *InventoryHandler) ListLedger(c *fiber.Ctx) error {
	day := entity.DayOf(time.Now())
	if s := c.Query("date"); s != "" {
		parsed, err := dto.ParseDay(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválida, formato YYYY-MM-DD"})
		}
		day = parsed
	}
	entries, err := h.ledger.ListDay(c.Context(), day)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// RegisterWaste godoc
// @Summary      Registrar merma manual
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterWasteRequest  true  "stock_item_id, category (spoiled|manual), quantity, note"
// @Success      201   {object}  dto.WasteRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/waste [post]
func (h *InventoryHandler) RegisterWaste(c *fiber.Ctx) error {
	var in dto.RegisterWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.waste.RegisterWaste(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListWaste godoc
// @Summary      Listar mermas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "desde YYYY-MM-DD"
// @Param        to      query  string  false  "hasta YYYY-MM-DD (exclusivo)"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.WasteRecordResponse
// @Router       /api/inventory/waste [get]
func (h *InventoryHandler) ListWaste(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		parsed, err := dto.ParseDay(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválida, formato YYYY-MM-DD"})
		}
		from = &parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := dto.ParseDay(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválida, formato YYYY-MM-DD"})
		}
		to = &parsed
	}
	records, total, err := h.waste.ListWaste(c.Context(), from, to, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": records, "total": total})
}

// RunExpirySweep godoc
// @Summary      Ejecutar el barrido de vencimientos
// @Description  Castiga a cero el stock de los insumos vencidos y registra la
//               merma correspondiente. Idempotente: repetirlo no duplica mermas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SweepSummaryResponse
// @Router       /api/inventory/expiry-sweep [post]
func (h *InventoryHandler) RunExpirySweep(c *fiber.Ctx) error {
	summary, err := h.sweep.RunExpirySweep(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
