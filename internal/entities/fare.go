package entities

type RouteEstimate struct {
	From          string
	To            string
	DistanceKm    float64
	DurationHours float64
	// Fallback true, если пары городов нет в справочнике
	Fallback bool
}

type FareEstimate struct {
	BaseFare      float64
	GST           float64
	ServiceCharge float64
	Insurance     float64
	Total         float64
	Currency      string
}

type Quote struct {
	Route RouteEstimate
	Fare  FareEstimate
}
