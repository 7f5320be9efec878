package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// SupplierHandler maneja proveedores y su relación con productos.
type SupplierHandler struct {
	uc  *usecase.SupplierUseCase
	log *logger.Logger
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *usecase.SupplierUseCase, log *logger.Logger) *SupplierHandler {
	return &SupplierHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar proveedores
// @Tags         suppliers
// @Produce      json
// @Param        status  query  string  false  "ACTIVE | INACTIVE"
// @Param        city    query  string  false  "Ciudad exacta"
// @Param        search  query  string  false  "Nombre, contacto o email"
// @Success      200  {object}  dto.Response{data=[]dto.SupplierResponse}
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), repository.SupplierFilter{
		Status: c.Query("status"),
		City:   c.Query("city"),
		Search: c.Query("search"),
	})
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, ""))
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "Datos del proveedor"
// @Success      201   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "Supplier created successfully"))
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del proveedor"
// @Param        body  body  dto.UpdateSupplierRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.Response{data=dto.SupplierResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(out, "Supplier updated successfully"))
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(nil, "Supplier deleted successfully"))
}

// Products godoc
// @Summary      Productos de un proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.Response{data=[]dto.SupplierProductResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/suppliers/{id}/products [get]
func (h *SupplierHandler) Products(c *fiber.Ctx) error {
	list, err := h.uc.Products(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.List(list, len(list)))
}

// AssociateProduct godoc
// @Summary      Asociar producto a proveedor
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del proveedor"
// @Param        body  body  dto.AssociateProductRequest  true  "product_id, cost_price, is_primary"
// @Success      201   {object}  dto.Response{data=dto.ProductSupplierResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/suppliers/{id}/products [post]
func (h *SupplierHandler) AssociateProduct(c *fiber.Ctx) error {
	var in dto.AssociateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AssociateProduct(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "Product associated with supplier successfully"))
}

// DisassociateProduct godoc
// @Summary      Quitar producto de proveedor
// @Tags         suppliers
// @Produce      json
// @Param        id         path  string  true  "ID del proveedor"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/suppliers/{id}/products/{productId} [delete]
func (h *SupplierHandler) DisassociateProduct(c *fiber.Ctx) error {
	if err := h.uc.DisassociateProduct(c.Context(), c.Params("id"), c.Params("productId")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(nil, "Product disassociated from supplier successfully"))
}

// Cities godoc
// @Summary      Listar ciudades de proveedores
// @Tags         suppliers
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]string}
// @Router       /api/suppliers/cities/list [get]
func (h *SupplierHandler) Cities(c *fiber.Ctx) error {
	list, err := h.uc.Cities(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.OK(list, ""))
}
