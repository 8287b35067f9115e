package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List devuelve todas las empresas.
// GET /companies
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Get devuelve una empresa con sus facturas y sectores.
// GET /companies/:code
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	code := c.Params("code")
	out, err := h.uc.Get(c.Context(), code)
	if err != nil {
		return respondError(c, err, "empresa no encontrada: "+code)
	}
	return c.JSON(out)
}

// Create crea una empresa; el código se deriva del nombre.
// POST /companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update actualiza nombre y descripción de una empresa.
// PUT /companies/:code
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Update(c.Context(), code, in)
	if err != nil {
		return respondError(c, err, "empresa no encontrada: "+code)
	}
	return c.JSON(out)
}

// Delete elimina una empresa.
// DELETE /companies/:code
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("code")
	out, err := h.uc.Delete(c.Context(), code)
	if err != nil {
		return respondError(c, err, "empresa no encontrada: "+code)
	}
	return c.JSON(out)
}
