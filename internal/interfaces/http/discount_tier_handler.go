package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
)

// DiscountTierHandler maneja los tramos de descuento por volumen (protegido).
type DiscountTierHandler struct {
	uc *usecase.DiscountTierUseCase
}

// NewDiscountTierHandler construye el handler.
func NewDiscountTierHandler(uc *usecase.DiscountTierUseCase) *DiscountTierHandler {
	return &DiscountTierHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tramo de descuento
// @Tags         discount-tiers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountTierRequest  true  "Datos del tramo"
// @Success      201   {object}  dto.DiscountTierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/discount-tiers [post]
func (h *DiscountTierHandler) Create(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
	}
	var in dto.CreateDiscountTierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), s, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tramos de descuento
// @Tags         discount-tiers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DiscountTierResponse
// @Router       /api/discount-tiers [get]
func (h *DiscountTierHandler) List(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
	}
	out, err := h.uc.List(c.Context(), s)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}
