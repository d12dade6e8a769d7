package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	appinventory "github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/inventory"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/usecase"
)

// MenuItemHandler maneja la carta y la verificación de disponibilidad.
type MenuItemHandler struct {
	uc           *usecase.MenuItemUseCase
	availability *appinventory.AvailabilityUseCase
}

// NewMenuItemHandler construye el handler.
func NewMenuItemHandler(uc *usecase.MenuItemUseCase, availability *appinventory.AvailabilityUseCase) *MenuItemHandler {
	return &MenuItemHandler{uc: uc, availability: availability}
}

// Create godoc
// @Summary      Dar de alta un producto de la carta
// @Tags         menu-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMenuItemRequest  true  "name, price, stock_item_id (simple) o ingredients (compuesto)"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/menu-items [post]
func (h *MenuItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMenuItemRequest
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
// @Summary      Consultar un producto con su receta
// @Tags         menu-items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MenuItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu-items/{id} [get]
func (h *MenuItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// List godoc
// @Summary      Listar la carta
// @Tags         menu-items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MenuItemResponse
// @Router       /api/menu-items [get]
func (h *MenuItemHandler) List(c *fiber.Ctx) error {
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

// CheckAvailability godoc
// @Summary      Verificar disponibilidad de un producto
// @Description  Evalúa los ingredientes del producto contra el stock vigente y
//               devuelve disponible/no disponible con el detalle de faltantes.
// @Tags         availability
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del producto de carta"
// @Param        quantity  query  string  false  "cantidad a verificar (default 1)"
// @Success      200  {object}  inventory.AvailabilityResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/availability/{id} [get]
func (h *MenuItemHandler) CheckAvailability(c *fiber.Ctx) error {
	quantity := decimal.NewFromInt(1)
	if q := c.Query("quantity"); q != "" {
		parsed, err := decimal.NewFromString(q)
		if err != nil || !parsed.GreaterThan(decimal.Zero) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválida"})
		}
		quantity = parsed
	}
	result, err := h.availability.Check(c.Context(), c.Params("id"), quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
