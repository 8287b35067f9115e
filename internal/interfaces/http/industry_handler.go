package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List devuelve cada par sector-empresa (company_code null si el sector no
// tiene empresas asociadas).
// GET /industries
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}

// Create crea un sector; el código se deriva del nombre.
// POST /industries
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
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

// Associate asocia una empresa a un sector.
// POST /industries/:industry_code
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	industryCode := c.Params("industry_code")
	var in dto.AssociateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_code es requerido"})
	}
	out, err := h.uc.Associate(c.Context(), industryCode, in.CompanyCode)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
