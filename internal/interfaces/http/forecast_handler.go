package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/application/forecast"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
)

// ForecastHandler maneja las peticiones HTTP del pronóstico de demanda.
type ForecastHandler struct {
	uc *forecast.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *forecast.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Forecast godoc
// @Summary      Pronosticar demanda
// @Description  Ajusta un ARIMA(1,1,1) sobre el historial de ventas y devuelve la proyección.
// @Tags         forecast
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForecastRequest  true  "Historial de ventas"
// @Success      200   {object}  dto.ForecastResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/forecast [post]
func (h *ForecastHandler) Forecast(c *fiber.Ctx) error {
	var in dto.ForecastRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Forecast(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
