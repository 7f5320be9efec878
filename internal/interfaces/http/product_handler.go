package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        category  query  string  false  "Categoría exacta"
// @Param        search    query  string  false  "Subcadena de nombre o SKU"
// @Success      200  {object}  dto.Response{data=[]dto.ProductResponse}
// @Failure      500  {object}  dto.Response
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), repository.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, ""))
}

// Create godoc
// @Summary      Crear producto
// @Description  Crea el producto y su registro de stock (cantidad 0, mínimo 5, máximo 100).
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "Product created successfully"))
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, "Product updated successfully"))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(nil, "Product deleted successfully"))
}

// Categories godoc
// @Summary      Listar categorías
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]string}
// @Router       /api/products/categories/list [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	list, err := h.uc.Categories(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(list, ""))
}
