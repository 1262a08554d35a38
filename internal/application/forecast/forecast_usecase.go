package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/internal/domain/forecast"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

// ForecastUseCase calcula la proyección de demanda a partir del historial de
// ventas que envía el cliente. Sin estado ni persistencia.
type ForecastUseCase struct {
	horizon int
	log     *logger.Logger
}

// NewForecastUseCase construye el caso de uso. horizon <= 0 usa el valor por
// defecto (6 pasos).
func NewForecastUseCase(horizon int, log *logger.Logger) *ForecastUseCase {
	if horizon <= 0 {
		horizon = forecast.DefaultHorizon
	}
	return &ForecastUseCase{horizon: horizon, log: log}
}

// Forecast parsea el historial y proyecta la demanda:
//
//   - Un token no numérico es error de entrada y se propaga (el caller no
//     recibe un valor por defecto).
//   - Con menos de dos valores válidos responde exactamente [0], una forma
//     corta deliberada que el caller debe contemplar.
//   - Si el ajuste del modelo falla, responde un vector de ceros del largo
//     del horizonte; el fallo solo se registra.
func (uc *ForecastUseCase) Forecast(in dto.ForecastRequest) (*dto.ForecastResponse, error) {
	series, err := parseSalesHistory(in.SalesData)
	if err != nil {
		return nil, err
	}
	if len(series) < 2 {
		return &dto.ForecastResponse{Product: in.Product, Forecast: []float64{0}}, nil
	}

	model, err := forecast.Fit(series)
	if err != nil {
		uc.log.Warn().Err(err).Str("product", in.Product).
			Msg("ajuste ARIMA falló, se responde pronóstico en ceros")
		return &dto.ForecastResponse{Product: in.Product, Forecast: make([]float64, uc.horizon)}, nil
	}

	fc := model.Forecast(uc.horizon)
	for _, v := range fc {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			uc.log.Warn().Str("product", in.Product).
				Msg("proyección con valores no finitos, se responde pronóstico en ceros")
			return &dto.ForecastResponse{Product: in.Product, Forecast: make([]float64, uc.horizon)}, nil
		}
	}
	return &dto.ForecastResponse{Product: in.Product, Forecast: fc}, nil
}

// parseSalesHistory divide por comas, recorta espacios y descarta tokens
// vacíos; cada token restante debe ser un número.
func parseSalesHistory(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		tok := strings.TrimSpace(p)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: valor de ventas %q no es numérico", domain.ErrInvalidInput, tok)
		}
		out = append(out, v)
	}
	return out, nil
}
