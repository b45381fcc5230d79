package transport

import (
	"fmt"
	"sort"
	"strings"
)

// routeKey builds an order-independent key for a city pair.
func routeKey(origin, destination string) string {
	cities := []string{strings.ToLower(strings.TrimSpace(origin)), strings.ToLower(strings.TrimSpace(destination))}
	sort.Strings(cities)
	return cities[0] + "|" + cities[1]
}

// cityDistances holds road/flight distances in km between major Indian
// cities, sourced from map data. Routes under 150 km get no flight mode.
var cityDistances = map[string]float64{
	routeKey("vellore", "pondicherry"): 100,
	routeKey("vellore", "chennai"):     140,

	routeKey("delhi", "mumbai"):     1400,
	routeKey("delhi", "bangalore"):  2150,
	routeKey("delhi", "chennai"):    2200,
	routeKey("delhi", "goa"):        1850,
	routeKey("delhi", "kolkata"):    1500,
	routeKey("delhi", "hyderabad"):  1570,

	routeKey("mumbai", "bangalore"): 980,
	routeKey("mumbai", "goa"):       450,
	routeKey("mumbai", "chennai"):   1330,
	routeKey("mumbai", "kolkata"):   2000,
	routeKey("mumbai", "pune"):      150,

	routeKey("bangalore", "goa"):       560,
	routeKey("bangalore", "chennai"):   350,
	routeKey("bangalore", "hyderabad"): 575,
	routeKey("bangalore", "kochi"):     540,

	routeKey("chennai", "goa"):       850,
	routeKey("chennai", "kolkata"):   1670,
	routeKey("chennai", "hyderabad"): 630,

	routeKey("pune", "goa"):        450,
	routeKey("pune", "bangalore"):  840,
	routeKey("hyderabad", "goa"):   650,
	routeKey("jaipur", "delhi"):    280,
	routeKey("ahmedabad", "mumbai"): 530,
}

// flightRoutePrices holds approximate economy fares in INR for major
// domestic routes.
var flightRoutePrices = map[string]float64{
	routeKey("delhi", "mumbai"):        4500,
	routeKey("delhi", "bangalore"):     5500,
	routeKey("delhi", "chennai"):       6000,
	routeKey("delhi", "goa"):           5000,
	routeKey("delhi", "kolkata"):       5500,
	routeKey("mumbai", "bangalore"):    4000,
	routeKey("mumbai", "goa"):          3500,
	routeKey("mumbai", "chennai"):      4500,
	routeKey("bangalore", "goa"):       3500,
	routeKey("bangalore", "chennai"):   3000,
	routeKey("chennai", "goa"):         5000,
	routeKey("hyderabad", "bangalore"): 3000,
	routeKey("pune", "bangalore"):      3500,
	routeKey("pune", "goa"):            3000,
}

const defaultDistance = 500

func estimateDistance(origin, destination string) float64 {
	if distance, ok := cityDistances[routeKey(origin, destination)]; ok {
		return distance
	}
	return defaultDistance
}

func estimateFlightPrice(origin, destination string) float64 {
	if price, ok := flightRoutePrices[routeKey(origin, destination)]; ok {
		return price
	}
	// Unknown routes: roughly ₹3.5 per km.
	return estimateDistance(origin, destination) * 3.5
}

// Average speeds per mode, including boarding overheads.
var modeSpeeds = map[string]float64{
	"flight": 500,
	"train":  60,
	"bus":    50,
	"cab":    70,
}

func estimateDuration(origin, destination, mode string) string {
	speed, ok := modeSpeeds[mode]
	if !ok {
		return "N/A"
	}
	hours := estimateDistance(origin, destination) / speed
	return fmt.Sprintf("%dh %02dm", int(hours), int(hours*60)%60)
}
