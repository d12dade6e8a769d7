package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/usecase"
)

// StockItemHandler maneja el registro de insumos y su rastro de auditoría.
type StockItemHandler struct {
	uc    *usecase.StockItemUseCase
	audit *appinventory.AuditUseCase
}

// NewStockItemHandler construye el handler.
func NewStockItemHandler(uc *usecase.StockItemUseCase, audit *appinventory.AuditUseCase) *StockItemHandler {
	return &StockItemHandler{uc: uc, audit: audit}
}

// Create godoc
// @Summary      Dar de alta un insumo
// @Tags         stock-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "name, category, unit, umbrales, cost, expiry_date"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-items [post]
func (h *StockItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetByID godoc
// @Summary      Consultar un insumo
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del insumo"
// @Success      200  {object}  dto.StockItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-items/{id} [get]
func (h *StockItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// List godoc
// @Summary      Listar insumos
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.StockItemResponse
// @Router       /api/stock-items [get]
func (h *StockItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	items, total, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": total})
}

// Update godoc
// @Summary      Actualizar un insumo (umbrales, costo, baja lógica)
// @Tags         stock-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del insumo"
// @Param        body  body  dto.UpdateStockItemRequest  true  "campos a actualizar; discontinue=true da de baja"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-items/{id} [put]
func (h *StockItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// ListLogs godoc
// @Summary      Rastro de mutaciones de stock de un insumo
// @Tags         stock-items
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del insumo"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.InventoryLogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-items/{id}/logs [get]
func (h *StockItemHandler) ListLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	logs, err := h.audit.ListByItem(c.Context(), c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(logs)
}
