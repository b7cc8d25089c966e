package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/weddingvendor-api/internal/application/billing"
	"github.com/jhoicas/weddingvendor-api/internal/application/dto"
)

// PaymentHandler maneja pagos y comprobantes (protegido).
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// List godoc
// @Summary      Listar pagos
// @Description  Staff (vendor, admin) ve todos; un cliente solo los suyos.
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.PaymentResponse
// @Router       /api/payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	var (
		out []dto.PaymentResponse
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
// @Summary      Pagos de un cliente
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del cliente"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/payments/user/{userId} [get]
func (h *PaymentHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if !canAccessUser(c, userID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar sus propios pagos"})
	}
	out, err := h.uc.ListByUser(userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByBookingID godoc
// @Summary      Pago de una reserva
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        bookingId  path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/booking/{bookingId} [get]
func (h *PaymentHandler) GetByBookingID(c *fiber.Ctx) error {
	out, err := h.uc.GetByBookingID(c.Params("bookingId"))
	if err != nil {
		return writeError(c, err)
	}
	return h.ownedOr403(c, out)
}

// GetByID godoc
// @Summary      Obtener pago
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return h.ownedOr403(c, out)
}

func (h *PaymentHandler) ownedOr403(c *fiber.Ctx, p *dto.PaymentResponse) error {
	if !canAccessUser(c, p.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pago pertenece a otro cliente"})
	}
	return c.JSON(p)
}

// Process godoc
// @Summary      Procesar pago de una reserva
// @Description  Pasarela simulada. Un pago rechazado se registra con status failed y responde 200.
// @Description  Un cliente solo puede pagar sus propias reservas (403 en otro caso).
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcessPaymentRequest  true  "Reserva, método y tarjeta"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var in dto.ProcessPaymentRequest
	if e := parseAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	// un cliente solo paga sus propias reservas
	if !isStaff(c) {
		in.UserID = GetUserID(c)
	}
	out, err := h.uc.ProcessPayment(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar pago (admin)
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentRequest  true  "status / transactionId"
// @Success      200   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if e := parseAndValidate(c, &in); e != nil {
		return badRequest(c, e)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         payments
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pago"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse  "pago no completado"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	p, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !canAccessUser(c, p.UserID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pago pertenece a otro cliente"})
	}
	pdfBytes, filename, err := h.uc.Receipt(c.UserContext(), p.ID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
