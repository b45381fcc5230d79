package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/tripforge/tripforge/internal/config"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/internal/utils"
	"github.com/tripforge/tripforge/pkg/amadeus"
	"github.com/tripforge/tripforge/pkg/budget"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/health"
	"github.com/tripforge/tripforge/pkg/hotel"
	"github.com/tripforge/tripforge/pkg/irctc"
	"github.com/tripforge/tripforge/pkg/itinerary"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/transport"
	"github.com/tripforge/tripforge/pkg/trip"
)

const version = "1.0.0"

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus    *event_bus.EventBus
	Coordinator *pipeline.Coordinator
	Cors        *cors.Cors

	AIClient      genai.Client
	AmadeusClient amadeus.Client
	BookingClient hotel.BookingClient
	IrctcClient   irctc.Client

	BudgetService *budget.ServiceImpl
	BudgetHandler *budget.Handler

	HotelService *hotel.ServiceImpl
	HotelHandler *hotel.Handler

	TransportService *transport.ServiceImpl
	TransportHandler *transport.Handler

	ItineraryService *itinerary.ServiceImpl
	ItineraryHandler *itinerary.Handler

	TripRepo    trip.Repository
	TripService trip.Service
	TripHandler *trip.Handler

	HealthHandler *health.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Coordinator = pipeline.NewCoordinator(deps.EventBus)
	deps.Cors = cors.New(cors.Options{
		AllowedOrigins:   cfg.Cors.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-User-Id"},
		AllowCredentials: true,
	})

	deps.AIClient = genai.NewClient(cfg.GoogleAI)
	deps.AmadeusClient = amadeus.NewClient(cfg.Amadeus)
	deps.BookingClient = hotel.NewBookingClient(cfg.RapidAPI)
	deps.IrctcClient = irctc.NewClient(cfg.RapidAPI)

	deps.BudgetService = budget.NewService(deps.AIClient, deps.EventBus)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.HotelService = hotel.NewService(deps.BookingClient, deps.AmadeusClient, deps.Coordinator)
	deps.HotelHandler = hotel.NewHandler(deps.HotelService)

	deps.TransportService = transport.NewService(deps.AIClient, deps.AmadeusClient, deps.IrctcClient, deps.Coordinator)
	deps.TransportHandler = transport.NewHandler(deps.TransportService)

	deps.ItineraryService = itinerary.NewService(deps.AIClient, deps.Coordinator)
	deps.ItineraryHandler = itinerary.NewHandler(deps.ItineraryService)

	deps.Clock = &utils.SystemClock{}
	deps.TripRepo = trip.NewTripRepo(db)
	deps.TripService = trip.NewTripService(deps.TripRepo, deps.EventBus, deps.Clock)
	deps.TripHandler = trip.NewHandler(deps.TripService)

	deps.HealthHandler = health.NewHandler(version)

	return deps
}
