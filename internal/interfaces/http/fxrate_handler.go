package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cobrepro/pedidos-api/internal/application/dto"
	"github.com/cobrepro/pedidos-api/internal/application/usecase"
)

// FXRateHandler maneja la tasa de cambio (protegido). La escritura es
// solo-admin; la denegación la emite el repositorio, no este handler.
type FXRateHandler struct {
	uc *usecase.FXRateUseCase
}

// NewFXRateHandler construye el handler.
func NewFXRateHandler(uc *usecase.FXRateUseCase) *FXRateHandler {
	return &FXRateHandler{uc: uc}
}

// GetCurrent godoc
// @Summary      Tasa de cambio vigente
// @Tags         fx-rate
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FXRateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fx-rate [get]
func (h *FXRateHandler) GetCurrent(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
	}
	out, err := h.uc.GetCurrent(c.Context(), s)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// GetHistory godoc
// @Summary      Historial de tasa de cambio
// @Tags         fx-rate
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FXRateHistoryResponse
// @Router       /api/fx-rate/history [get]
func (h *FXRateHandler) GetHistory(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
	}
	out, err := h.uc.GetHistory(c.Context(), s)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}

// UpdateRate godoc
// @Summary      Actualizar tasa de cambio (solo admin)
// @Tags         fx-rate
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateRateRequest  true  "Nueva tasa"
// @Success      200   {object}  dto.FXRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/fx-rate [put]
func (h *FXRateHandler) UpdateRate(c *fiber.Ctx) error {
	s, ok := GetSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión no resuelta"})
	}
	var in dto.UpdateRateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateRate(c.Context(), s, in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(out)
}
