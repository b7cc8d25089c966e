package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/application/usecase"
)

// VendorHandler maneja el catálogo público de proveedores.
// Los cuerpos no se validan: el catálogo acepta la ficha tal cual.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// List godoc
// @Summary      Listar proveedores
// @Description  Un único criterio por petición: search > category > location > sortBy.
// @Tags         vendors
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre o descripción"
// @Param        category  query  string  false  "Categoría exacta (all = sin filtro)"
// @Param        location  query  string  false  "Fragmento de ubicación (all = sin filtro)"
// @Param        sortBy    query  string  false  "priceAsc | priceDesc | rating"
// @Success      200  {array}   dto.VendorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	var q dto.VendorListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return c.JSON(h.uc.List(q))
}

// GetByID godoc
// @Summary      Obtener proveedor por ID
// @Tags         vendors
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendorRequest  true  "Ficha del proveedor"
// @Success      201   {object}  dto.SuccessResponse  "data = ID asignado"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid vendor data: " + err.Error()})
	}
	id := h.uc.Create(in)
	return c.Status(fiber.StatusCreated).JSON(dto.Success(id))
}

// Update godoc
// @Summary      Reemplazar proveedor
// @Description  Reemplazo completo de la ficha; el ID de la ruta prevalece.
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del proveedor"
// @Param        body  body  dto.VendorRequest  true  "Ficha completa"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.VendorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid vendor data: " + err.Error()})
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Success("Vendor updated successfully"))
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         vendors
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Success("Vendor deleted successfully"))
}
