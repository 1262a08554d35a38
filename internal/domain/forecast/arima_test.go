package forecast_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-tracker-api/internal/domain/forecast"
)

// Serie del ejemplo de la pantalla de pronóstico del frontend.
var testSeries = []float64{10, 12, 13, 12, 15, 14}

func TestFit_SerieConocida(t *testing.T) {
	m, err := forecast.Fit(testSeries)
	require.NoError(t, err, "la serie de ejemplo debe ajustar sin error")

	// Coeficientes dentro de la región estacionaria/invertible
	assert.Less(t, math.Abs(m.Phi()), 1.0)
	assert.Less(t, math.Abs(m.Theta()), 1.0)

	fc := m.Forecast(forecast.DefaultHorizon)
	require.Len(t, fc, 6)
	for i, v := range fc {
		assert.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "valor %d no finito: %v", i, v)
	}
	// La proyección debe quedar en el orden de magnitud de la serie
	for _, v := range fc {
		assert.InDelta(t, 13, v, 15)
	}
}

// El ajuste es un procedimiento numérico fijo: misma entrada, misma salida.
func TestFit_Determinista(t *testing.T) {
	m1, err := forecast.Fit(testSeries)
	require.NoError(t, err)
	m2, err := forecast.Fit(testSeries)
	require.NoError(t, err)

	assert.Equal(t, m1.Phi(), m2.Phi())
	assert.Equal(t, m1.Theta(), m2.Theta())
	assert.Equal(t, m1.Forecast(6), m2.Forecast(6))
}

func TestFit_SerieConstante(t *testing.T) {
	_, err := forecast.Fit([]float64{5, 5, 5, 5, 5})
	require.ErrorIs(t, err, forecast.ErrDegenerate)
}

func TestFit_SerieCorta(t *testing.T) {
	_, err := forecast.Fit([]float64{3, 4})
	require.ErrorIs(t, err, forecast.ErrSeriesTooShort)
}

// Una serie con tendencia clara debe proyectar por encima del último valor.
func TestForecast_TendenciaCreciente(t *testing.T) {
	m, err := forecast.Fit([]float64{10, 20, 31, 39, 52, 60, 71, 79})
	require.NoError(t, err)

	fc := m.Forecast(6)
	require.Len(t, fc, 6)
	assert.Greater(t, fc[0], 60.0, "el primer paso debe continuar la tendencia")
}
