package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// StockHandler maneja saldos, movimientos y alertas de stock.
type StockHandler struct {
	movements *inventory.RegisterMovementUseCase
	queries   *inventory.StockQueryUseCase
	log       *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(movements *inventory.RegisterMovementUseCase, queries *inventory.StockQueryUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{movements: movements, queries: queries, log: log}
}

// List godoc
// @Summary      Listar inventario
// @Description  Stock de todos los productos con nombre, SKU, precio y estado LOW/NORMAL/HIGH.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.StockResponse}
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	list, err := h.queries.List(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// GetByProduct godoc
// @Summary      Stock de un producto
// @Tags         stock
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.StockResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/stock/product/{productId} [get]
func (h *StockHandler) GetByProduct(c *fiber.Ctx) error {
	out, err := h.queries.GetByProduct(c.Context(), c.Params("productId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, ""))
}

// In godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, quantity, reason opcional"
// @Success      200   {object}  dto.Response{data=dto.StockMovementResult}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/stock/in [post]
func (h *StockHandler) In(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeIN, "Stock entry registered successfully")
}

// Out godoc
// @Summary      Registrar salida de stock
// @Description  Si la salida deja el saldo en negativo responde 400 con available y requested.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, quantity, reason opcional"
// @Success      200   {object}  dto.Response{data=dto.StockMovementResult}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/stock/out [post]
func (h *StockHandler) Out(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeOUT, "Stock exit registered successfully")
}

func (h *StockHandler) register(c *fiber.Ctx, movementType, message string) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.movements.RegisterMovementFromRequest(c.Context(), movementType, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, message))
}

// Movements godoc
// @Summary      Historial de movimientos
// @Description  Más reciente primero, máximo 100. Sin productId devuelve todos los productos.
// @Tags         stock
// @Produce      json
// @Param        productId  path  string  false  "ID del producto"
// @Success      200  {object}  dto.Response{data=[]dto.StockMovementResponse}
// @Router       /api/stock/movements/{productId} [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	list, err := h.queries.Movements(c.Context(), c.Params("productId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// LowStock godoc
// @Summary      Alertas de stock bajo
// @Description  Productos con cantidad menor o igual al mínimo, menor cantidad primero.
// @Tags         stock
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.StockResponse}
// @Router       /api/stock/alerts/low [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.queries.LowStock(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// UpdateThresholds godoc
// @Summary      Cambiar mínimo y máximo de un producto
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        productId  path  string                       true  "ID del producto"
// @Param        body       body  dto.UpdateThresholdsRequest  true  "min_stock, max_stock"
// @Success      200  {object}  dto.Response{data=dto.StockResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/stock/product/{productId}/thresholds [put]
func (h *StockHandler) UpdateThresholds(c *fiber.Ctx) error {
	var in dto.UpdateThresholdsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.queries.UpdateThresholds(c.Context(), c.Params("productId"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, "Stock thresholds updated successfully"))
}
