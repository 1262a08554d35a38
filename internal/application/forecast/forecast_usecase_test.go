package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appforecast "github.com/jhoicas/stock-tracker-api/internal/application/forecast"
	"github.com/jhoicas/stock-tracker-api/internal/application/dto"
	"github.com/jhoicas/stock-tracker-api/internal/domain"
	"github.com/jhoicas/stock-tracker-api/pkg/logger"
)

func newUC() *appforecast.ForecastUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return appforecast.NewForecastUseCase(0, log)
}

func TestForecast_HistorialNormal(t *testing.T) {
	uc := newUC()

	out, err := uc.Forecast(dto.ForecastRequest{
		Product:      "Café molido",
		CurrentStock: 40,
		SalesData:    "10,12,13,12,15,14",
	})
	require.NoError(t, err)
	assert.Equal(t, "Café molido", out.Product)
	require.Len(t, out.Forecast, 6)
}

// El parseo tolera espacios y tokens vacíos entre comas.
func TestForecast_ParseoConEspaciosYVacios(t *testing.T) {
	uc := newUC()

	out, err := uc.Forecast(dto.ForecastRequest{
		Product:   "Azúcar",
		SalesData: " 10 , 12 ,, 13 , 12 , 15 , 14 ,",
	})
	require.NoError(t, err)
	require.Len(t, out.Forecast, 6)
}

// Menos de dos valores válidos: respuesta corta [0], no un pronóstico normal.
func TestForecast_HistorialInsuficiente(t *testing.T) {
	uc := newUC()

	out, err := uc.Forecast(dto.ForecastRequest{Product: "Harina", SalesData: "5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out.Forecast)
}

func TestForecast_HistorialVacio(t *testing.T) {
	uc := newUC()

	out, err := uc.Forecast(dto.ForecastRequest{Product: "Harina", SalesData: ""})
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, out.Forecast)
}

// Un token no numérico es error de entrada, no un pronóstico en ceros.
func TestForecast_HistorialMalformado(t *testing.T) {
	uc := newUC()

	_, err := uc.Forecast(dto.ForecastRequest{Product: "Harina", SalesData: "a,b,c"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Serie constante: el ajuste falla y se degrada a ceros, sin error visible.
func TestForecast_SerieConstanteDegradaACeros(t *testing.T) {
	uc := newUC()

	out, err := uc.Forecast(dto.ForecastRequest{Product: "Sal", SalesData: "5,5,5,5,5"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, out.Forecast)
}

func TestForecast_Determinista(t *testing.T) {
	uc := newUC()
	req := dto.ForecastRequest{Product: "Café molido", SalesData: "10,12,13,12,15,14"}

	out1, err := uc.Forecast(req)
	require.NoError(t, err)
	out2, err := uc.Forecast(req)
	require.NoError(t, err)
	assert.Equal(t, out1.Forecast, out2.Forecast)
}
