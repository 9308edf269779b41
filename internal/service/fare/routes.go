package fare

import "strings"

// расстояния по дорогам в км, пары симметричны
var cityDistances = map[routeKey]float64{
	newRouteKey("Mumbai", "Pune"):           150,
	newRouteKey("Mumbai", "Delhi"):          1400,
	newRouteKey("Mumbai", "Ahmedabad"):      530,
	newRouteKey("Mumbai", "Bangalore"):      985,
	newRouteKey("Mumbai", "Hyderabad"):      710,
	newRouteKey("Delhi", "Jaipur"):          280,
	newRouteKey("Delhi", "Agra"):            230,
	newRouteKey("Delhi", "Chandigarh"):      250,
	newRouteKey("Delhi", "Kolkata"):         1530,
	newRouteKey("Delhi", "Lucknow"):         550,
	newRouteKey("Bangalore", "Chennai"):     350,
	newRouteKey("Bangalore", "Hyderabad"):   570,
	newRouteKey("Bangalore", "Pune"):        840,
	newRouteKey("Chennai", "Hyderabad"):     630,
	newRouteKey("Kolkata", "Bhubaneswar"):   440,
	newRouteKey("Ahmedabad", "Surat"):       265,
	newRouteKey("Jaipur", "Ahmedabad"):      670,
	newRouteKey("Kochi", "Bangalore"):       545,
	newRouteKey("Lucknow", "Kanpur"):        90,
	newRouteKey("Nagpur", "Hyderabad"):      500,
	newRouteKey("Indore", "Bhopal"):         195,
	newRouteKey("Visakhapatnam", "Chennai"): 800,
	newRouteKey("Coimbatore", "Chennai"):    505,
	newRouteKey("Patna", "Kolkata"):         580,
	newRouteKey("Guwahati", "Kolkata"):      1030,
}

type routeKey struct {
	a, b string
}

func newRouteKey(from, to string) routeKey {
	a := normalizeCity(from)
	b := normalizeCity(to)
	if b < a {
		a, b = b, a
	}
	return routeKey{a: a, b: b}
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}
