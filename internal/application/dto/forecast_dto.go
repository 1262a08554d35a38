package dto

// ForecastRequest entrada del pronóstico de demanda. SalesData es el
// historial de ventas como números separados por comas; CurrentStock viene
// del formulario pero el algoritmo no lo usa.
type ForecastRequest struct {
	Product      string `json:"product"`
	CurrentStock int    `json:"currentStock"`
	SalesData    string `json:"salesData"`
}

// ForecastResponse salida del pronóstico. Forecast tiene 6 valores, o
// exactamente [0] cuando el historial trae menos de dos números.
type ForecastResponse struct {
	Product  string    `json:"product"`
	Forecast []float64 `json:"forecast"`
}
