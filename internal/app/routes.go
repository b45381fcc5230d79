package app

import (
	"github.com/gorilla/mux"
	"github.com/tripforge/tripforge/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Health
	r.HandleFunc("/", deps.HealthHandler.Root).Methods("GET")
	r.HandleFunc("/health", deps.HealthHandler.Health).Methods("GET")

	// Budget analysis
	r.HandleFunc("/api/budget/analyze", deps.BudgetHandler.Analyze).Methods("POST")

	// Hotel search
	r.HandleFunc("/api/hotels/search", deps.HotelHandler.Search).Methods("POST")

	// Transport search
	r.HandleFunc("/api/transport/search", deps.TransportHandler.Search).Methods("POST")

	// Itinerary generation
	r.HandleFunc("/api/itinerary/generate", deps.ItineraryHandler.Generate).Methods("POST")

	// Saved trips
	r.HandleFunc("/api/trips", deps.TripHandler.Save).Methods("POST")
	r.HandleFunc("/api/trips", deps.TripHandler.List).Methods("GET")
	r.HandleFunc("/api/trips/{tripId}", deps.TripHandler.Get).Methods("GET")
	r.HandleFunc("/api/trips/{tripId}", deps.TripHandler.Update).Methods("PUT")
	r.HandleFunc("/api/trips/{tripId}", deps.TripHandler.Delete).Methods("DELETE")
}
