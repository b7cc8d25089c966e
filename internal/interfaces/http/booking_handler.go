package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weddingvendor-api/internal/application/booking"
	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// BookingHandler maneja las reservas (protegido).
// Los clientes (rol user) solo ven y crean sus propias reservas.
type BookingHandler struct {
	uc *booking.BookingUseCase
}

// NewBookingHandler construye el handler.
func NewBookingHandler(uc *booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// List godoc
// @Summary      Listar reservas
// @Description  Staff (vendor, admin) ve todas; un cliente solo las suyas.
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.BookingResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.BookingResponse
		err error
	)
	if isStaff(c) {
		out, err = h.uc.List()
	} else {
		out, err = h.uc.ListByUser(GetUserID(c))
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByUser godoc
// @Summary      Reservas de un cliente
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del cliente"
// @Success      200  {array}   dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings/user/{userId} [get]
func (h *BookingHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccessUser(c, userID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propias reservas"})
	}
	out, err := h.uc.ListByUser(userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListByVendor godoc
// @Summary      Reservas de un proveedor
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        vendorId  path  string  true  "ID del proveedor (acepta sin prefijo vendor)"
// @Success      200  {array}   dto.BookingResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings/vendor/{vendorId} [get]
func (h *BookingHandler) ListByVendor(c *fiber.Ctx) error {
	out, err := h.uc.ListByVendor(c.Params("vendorId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.BookingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings/{id} [get]
func (h *BookingHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !canAccessUser(c, out.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la reserva pertenece a otro cliente"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reserva
// @Description  userId y userName se toman del token si no vienen (siempre, para clientes).
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookingRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings [post]
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookingRequest
	if e := parseAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	if GetRole(c) == entity.RoleUser || in.UserID == "" {
		in.UserID = GetUserID(c)
	}
	if in.UserName == "" && in.UserID == GetUserID(c) {
		in.UserName = GetUserName(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar reserva
// @Description  Actualización parcial; amount solo se aplica si es mayor que cero.
// @Tags         bookings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la reserva"
// @Param        body  body  dto.UpdateBookingRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.BookingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings/{id} [put]
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBookingRequest
	if e := parseAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	id := c.Params("id")
	if !isStaff(c) {
		current, err := h.uc.GetByID(id)
		if err != nil {
			return writeError(c, err)
		}
		if current.UserID != GetUserID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la reserva pertenece a otro cliente"})
		}
		// un cliente no reasigna ni marca pagada su reserva
		in.UserID, in.PaymentStatus = nil, nil
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar reserva
// @Tags         bookings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendor/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.Success(id))
}
