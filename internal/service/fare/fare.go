package fare

import (
	"math"

	"booking/internal/entities"
)

// Options тарифы оценки. Оценка только для показа, это не договорная цена.
type Options struct {
	DefaultDistanceKm float64
	AverageSpeedKmh   float64
	RatePerKm         float64
	RatePerKg         float64
	MinimumFare       float64
	GSTRate           float64
	ServiceChargeRate float64
	InsuranceRate     float64
	Currency          string
}

func DefaultOptions() Options {
	return Options{
		DefaultDistanceKm: 100,
		AverageSpeedKmh:   40,
		RatePerKm:         15,
		RatePerKg:         2,
		MinimumFare:       500,
		GSTRate:           0.18,
		ServiceChargeRate: 0.05,
		InsuranceRate:     0.02,
		Currency:          "INR",
	}
}

// Границы входных данных оценки. Больше не принимает форма, а оценка остается конечной.
const (
	MaxWeightKg   = 100000
	maxDistanceKm = 100000
)

type Estimator struct {
	opts Options
}

func New(opts Options) *Estimator {
	return &Estimator{opts: opts}
}

// EstimateDistance неизвестная пара городов дает DefaultDistanceKm, ошибок нет.
func (e *Estimator) EstimateDistance(from, to string) float64 {
	return e.EstimateRoute(from, to).DistanceKm
}

func (e *Estimator) EstimateRoute(from, to string) entities.RouteEstimate {
	distance, ok := cityDistances[newRouteKey(from, to)]
	if !ok {
		distance = e.opts.DefaultDistanceKm
	}

	return entities.RouteEstimate{
		From:          from,
		To:            to,
		DistanceKm:    distance,
		DurationHours: e.EstimateDuration(distance),
		Fallback:      !ok,
	}
}

func (e *Estimator) EstimateDuration(distanceKm float64) float64 {
	distanceKm = clamp(distanceKm, maxDistanceKm)
	if e.opts.AverageSpeedKmh <= 0 || distanceKm <= 0 {
		return 0
	}
	return round(distanceKm / e.opts.AverageSpeedKmh)
}

func (e *Estimator) EstimateFare(weightKg, distanceKm float64) entities.FareEstimate {
	base := math.Max(
		e.opts.MinimumFare,
		clamp(distanceKm, maxDistanceKm)*e.opts.RatePerKm+clamp(weightKg, MaxWeightKg)*e.opts.RatePerKg,
	)
	base = round(base)

	gst := round(base * e.opts.GSTRate)
	service := round(base * e.opts.ServiceChargeRate)
	insurance := round(base * e.opts.InsuranceRate)

	return entities.FareEstimate{
		BaseFare:      base,
		GST:           gst,
		ServiceCharge: service,
		Insurance:     insurance,
		Total:         round(base + gst + service + insurance),
		Currency:      e.opts.Currency,
	}
}

func (e *Estimator) Quote(from, to string, weightKg float64) entities.Quote {
	route := e.EstimateRoute(from, to)
	return entities.Quote{
		Route: route,
		Fare:  e.EstimateFare(weightKg, route.DistanceKm),
	}
}

// clamp приводит значение к [0, limit], NaN считается нулем.
func clamp(v, limit float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, limit)
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
