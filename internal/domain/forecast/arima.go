package forecast

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// DefaultHorizon pasos de proyección hacia adelante.
const DefaultHorizon = 6

// Errores de ajuste del modelo. El caso de uso los degrada a un pronóstico en
// ceros; aquí solo se reportan.
var (
	ErrSeriesTooShort = errors.New("serie demasiado corta para ajustar ARIMA(1,1,1)")
	ErrDegenerate     = errors.New("serie diferenciada sin variación")
)

// Model es un ARIMA(1,1,1) ajustado: una diferenciación y un ARMA(1,1) sobre
// la serie diferenciada, estimado por suma condicional de cuadrados (CSS).
type Model struct {
	phi   float64 // coeficiente autorregresivo
	theta float64 // coeficiente de media móvil

	lastObs   float64 // último valor observado de la serie original
	lastDiff  float64 // último valor de la serie diferenciada
	lastResid float64 // último residuo condicional
}

// Phi devuelve el coeficiente AR estimado.
func (m *Model) Phi() float64 { return m.phi }

// Theta devuelve el coeficiente MA estimado.
func (m *Model) Theta() float64 { return m.theta }

// Fit ajusta un ARIMA(1,1,1) a la serie por minimización de la CSS con
// Nelder-Mead. El procedimiento es determinista: misma serie, mismo resultado.
func Fit(series []float64) (*Model, error) {
	if len(series) < 3 {
		return nil, ErrSeriesTooShort
	}

	w := difference(series)
	if allZero(w) {
		// Serie constante: la CSS es plana y los coeficientes quedan
		// indeterminados. Se reporta como fallo de ajuste.
		return nil, ErrDegenerate
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 { return css(w, x[0], x[1]) },
	}
	result, err := optimize.Minimize(problem, []float64{0.1, 0.1}, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("minimizar CSS: %w", err)
	}

	phi, theta := result.X[0], result.X[1]
	if !isFinite(result.F) || !isFinite(phi) || !isFinite(theta) {
		return nil, errors.New("estimación no finita")
	}
	if math.Abs(phi) >= 1 || math.Abs(theta) >= 1 {
		return nil, errors.New("estimación no estacionaria o no invertible")
	}

	m := &Model{
		phi:      phi,
		theta:    theta,
		lastObs:  series[len(series)-1],
		lastDiff: w[len(w)-1],
	}
	m.lastResid = residuals(w, phi, theta)
	return m, nil
}

// Forecast proyecta steps valores hacia adelante. Las innovaciones futuras
// tienen esperanza cero, así que el término MA solo afecta el primer paso;
// luego se integra la diferencia acumulando sobre el último valor observado.
func (m *Model) Forecast(steps int) []float64 {
	out := make([]float64, 0, steps)
	level := m.lastObs
	wPrev := m.lastDiff
	e := m.lastResid
	for k := 0; k < steps; k++ {
		wNext := m.phi*wPrev + m.theta*e
		e = 0
		level += wNext
		out = append(out, level)
		wPrev = wNext
	}
	return out
}

// css calcula la suma condicional de cuadrados de un ARMA(1,1) sobre w.
// El residuo inicial se fija en cero y la suma parte de t=1 (enfoque
// condicional clásico). Fuera de la región estacionaria/invertible se aplica
// una penalización creciente para que el simplex regrese a la región válida.
func css(w []float64, phi, theta float64) float64 {
	const bound = 0.999
	if math.Abs(phi) >= bound || math.Abs(theta) >= bound {
		excess := math.Max(math.Abs(phi), math.Abs(theta)) - bound
		return 1e10 * (1 + excess)
	}

	var sse float64
	var e float64
	for t := 1; t < len(w); t++ {
		et := w[t] - phi*w[t-1] - theta*e
		sse += et * et
		e = et
	}
	if !isFinite(sse) {
		return 1e10
	}
	return sse
}

// residuals recorre w con los coeficientes finales y devuelve el último
// residuo condicional, necesario para el primer paso del pronóstico.
func residuals(w []float64, phi, theta float64) float64 {
	var e float64
	for t := 1; t < len(w); t++ {
		e = w[t] - phi*w[t-1] - theta*e
	}
	return e
}

// difference devuelve la primera diferencia de la serie (largo n-1).
func difference(series []float64) []float64 {
	w := make([]float64, len(series)-1)
	for i := 1; i < len(series); i++ {
		w[i-1] = series[i] - series[i-1]
	}
	return w
}

// allZero indica si la serie diferenciada es idénticamente cero (serie
// original constante).
func allZero(w []float64) bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
