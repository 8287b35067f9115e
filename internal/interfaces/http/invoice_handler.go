package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler inyectando el caso de uso.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List devuelve todas las facturas ordenadas por id.
// GET /invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Get devuelve una factura con su empresa anidada.
// GET /invoices/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	out, err := h.uc.Get(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "factura no encontrada: "+c.Params("id"))
	}
	return c.JSON(out)
}

// Create crea una factura para una empresa existente.
// POST /invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompCode == "" || in.Amt == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "comp_code y amt son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update cambia amt y paid de una factura aplicando la regla de fechado
// de pago. paid omitido = sin cambio.
// PUT /invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amt == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amt es requerido"})
	}
	out, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return respondError(c, err, "factura no encontrada: "+c.Params("id"))
	}
	return c.JSON(out)
}

// Delete elimina una factura.
// DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id debe ser numérico"})
	}
	out, err := h.uc.Delete(c.Context(), int64(id))
	if err != nil {
		return respondError(c, err, "factura no encontrada: "+c.Params("id"))
	}
	return c.JSON(out)
}
