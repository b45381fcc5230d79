package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/pkg/amadeus"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/irctc"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/user"
)

// minFlightDistance gates the flight mode: routes shorter than this have
// no commercial service worth listing.
const minFlightDistance = 150

type Service interface {
	Search(ctx context.Context, request SearchRequest) (SearchResult, error)
}

type ServiceImpl struct {
	ai          genai.Client
	amadeus     amadeus.Client
	irctc       irctc.Client
	coordinator *pipeline.Coordinator
}

func NewService(ai genai.Client, amadeusClient amadeus.Client, irctcClient irctc.Client, coordinator *pipeline.Coordinator) *ServiceImpl {
	return &ServiceImpl{
		ai:          ai,
		amadeus:     amadeusClient,
		irctc:       irctcClient,
		coordinator: coordinator,
	}
}

// Search assembles the available transport modes for the route. Each mode
// degrades independently: live APIs first, then the model, then static
// tables, so the response always has at least one option per mode.
func (s *ServiceImpl) Search(ctx context.Context, request SearchRequest) (SearchResult, error) {
	uid := user.CurrentIdOrAnonymous(ctx)
	budget := s.coordinator.TransportBudget(uid, request.BudgetAllocation)
	if budget != request.BudgetAllocation {
		log.Debugf("transport budget adjusted from %.2f to %.2f for user %s", request.BudgetAllocation, budget, uid)
	}
	request.BudgetAllocation = budget

	distance := estimateDistance(request.Origin, request.Destination)

	var modes []Mode
	if distance >= minFlightDistance {
		modes = append(modes, s.flightMode(ctx, request))
	} else {
		log.Debugf("route %s -> %s is %.0f km, skipping flights", request.Origin, request.Destination, distance)
	}
	modes = append(modes, s.trainMode(ctx, request))
	modes = append(modes, s.busMode(ctx, request))
	modes = append(modes, s.cabMode(ctx, request))

	return SearchResult{Modes: modes}, nil
}

func (s *ServiceImpl) flightMode(ctx context.Context, request SearchRequest) Mode {
	options := s.amadeusFlights(ctx, request)
	if len(options) == 0 {
		options = syntheticFlights(request)
	}
	sortByPrice(options)

	return Mode{
		Mode:       "Flight",
		Icon:       "✈️",
		Duration:   estimateDuration(request.Origin, request.Destination, "flight"),
		PriceRange: priceRange(options),
		Note:       NoteFastest,
		Options:    options,
	}
}

func (s *ServiceImpl) amadeusFlights(ctx context.Context, request SearchRequest) []Option {
	originCode, ok := amadeus.CityCode(request.Origin)
	if !ok {
		return nil
	}
	destinationCode, ok := amadeus.CityCode(request.Destination)
	if !ok {
		return nil
	}

	offers, err := s.amadeus.SearchFlights(ctx, originCode, destinationCode, request.TravelDate, request.Adults, request.BudgetAllocation, 6)
	if err != nil {
		if errors.Is(err, amadeus.ErrNotConfigured) {
			log.Debug("Amadeus credentials not configured, skipping flight offers")
		} else {
			log.Warnf("Amadeus flight search failed: %v", err)
		}
		return nil
	}

	options := make([]Option, 0, len(offers))
	for _, offer := range offers {
		options = append(options, Option{
			Carrier:   airlineName(offer.Airline) + " " + offer.FlightNumber,
			Time:      formatDepartureTime(offer.DepartureTime),
			Price:     offer.Price,
			Duration:  formatISODuration(offer.Duration),
			ClassType: cabinClassName(offer.CabinClass),
		})
	}
	return options
}

func cabinClassName(cabin string) string {
	lower := strings.ToLower(cabin)
	if lower == "" {
		return "Economy"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}

var airlineNames = map[string]string{
	"AI": "Air India",
	"6E": "IndiGo",
	"SG": "SpiceJet",
	"UK": "Vistara",
	"G8": "Go First",
	"I5": "AirAsia India",
	"QP": "Akasa Air",
}

func airlineName(carrierCode string) string {
	if name, ok := airlineNames[carrierCode]; ok {
		return name
	}
	return carrierCode
}

var syntheticAirlines = []struct {
	name string
	time string
}{
	{"IndiGo", "06:15"},
	{"Air India", "09:40"},
	{"Vistara", "12:30"},
	{"SpiceJet", "15:20"},
	{"AirAsia India", "18:45"},
	{"Akasa Air", "21:10"},
}

// syntheticFlights prices each carrier around the route's reference fare
// with a ±20% spread.
func syntheticFlights(request SearchRequest) []Option {
	basePrice := estimateFlightPrice(request.Origin, request.Destination)
	duration := estimateDuration(request.Origin, request.Destination, "flight")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	options := make([]Option, 0, len(syntheticAirlines))
	for _, airline := range syntheticAirlines {
		jitter := 0.8 + rng.Float64()*0.4
		options = append(options, Option{
			Carrier:   airline.name,
			Time:      airline.time,
			Price:     float64(int(basePrice * jitter)),
			Duration:  duration,
			ClassType: "Economy",
		})
	}
	return options
}

func (s *ServiceImpl) trainMode(ctx context.Context, request SearchRequest) Mode {
	options := s.irctcTrains(ctx, request)
	if len(options) == 0 {
		options = s.modelOptions(ctx, request, "train")
	}
	if len(options) == 0 {
		options = fallbackTrainOptions(request)
	}
	sortByPrice(options)

	return Mode{
		Mode:       "Train",
		Icon:       "🚆",
		Duration:   estimateDuration(request.Origin, request.Destination, "train"),
		PriceRange: priceRange(options),
		Note:       NoteMostComfortable,
		Options:    options,
	}
}

func (s *ServiceImpl) irctcTrains(ctx context.Context, request SearchRequest) []Option {
	fromStation := irctc.StationCode(request.Origin)
	toStation := irctc.StationCode(request.Destination)

	trains, err := s.irctc.SearchTrains(ctx, fromStation, toStation, request.TravelDate)
	if err != nil {
		log.Warnf("IRCTC train search failed: %v", err)
		return nil
	}

	var options []Option
	for _, train := range trains {
		for _, class := range train.Classes {
			fare, ok := train.Fares[class]
			if !ok || fare <= 0 {
				continue
			}
			options = append(options, Option{
				Carrier:   fmt.Sprintf("%s (%s)", train.Name, train.Number),
				Time:      train.DepartureTime,
				Price:     fare,
				Duration:  train.Duration,
				ClassType: class,
			})
		}
	}
	return options
}

func fallbackTrainOptions(request SearchRequest) []Option {
	duration := estimateDuration(request.Origin, request.Destination, "train")
	return []Option{
		{Carrier: "Rajdhani Express", Time: "16:55", Price: 2100, Duration: duration, ClassType: "2A"},
		{Carrier: "Shatabdi Express", Time: "06:00", Price: 1400, Duration: duration, ClassType: "CC"},
		{Carrier: "Superfast Express", Time: "22:30", Price: 850, Duration: duration, ClassType: "3A"},
		{Carrier: "Mail Express", Time: "20:10", Price: 450, Duration: duration, ClassType: "SL"},
	}
}

func (s *ServiceImpl) busMode(ctx context.Context, request SearchRequest) Mode {
	options := s.modelOptions(ctx, request, "bus")
	if len(options) == 0 {
		options = fallbackBusOptions(request)
	}
	sortByPrice(options)

	return Mode{
		Mode:       "Bus",
		Icon:       "🚌",
		Duration:   estimateDuration(request.Origin, request.Destination, "bus"),
		PriceRange: priceRange(options),
		Note:       NoteMostAffordable,
		Options:    options,
	}
}

func fallbackBusOptions(request SearchRequest) []Option {
	duration := estimateDuration(request.Origin, request.Destination, "bus")
	return []Option{
		{Carrier: "VRL Travels", Time: "21:00", Price: 1200, Duration: duration, ClassType: "AC Sleeper"},
		{Carrier: "SRS Travels", Time: "22:15", Price: 950, Duration: duration, ClassType: "AC Semi-Sleeper"},
		{Carrier: "State Transport", Time: "19:30", Price: 550, Duration: duration, ClassType: "Non-AC Seater"},
	}
}

func (s *ServiceImpl) cabMode(ctx context.Context, request SearchRequest) Mode {
	options := s.modelOptions(ctx, request, "cab")
	if len(options) == 0 {
		options = fallbackCabOptions(request)
	}
	sortByPrice(options)

	return Mode{
		Mode:       "Cab",
		Icon:       "🚖",
		Duration:   estimateDuration(request.Origin, request.Destination, "cab"),
		PriceRange: priceRange(options),
		Note:       NoteMostFlexible,
		Options:    options,
	}
}

func fallbackCabOptions(request SearchRequest) []Option {
	distance := estimateDistance(request.Origin, request.Destination)
	duration := estimateDuration(request.Origin, request.Destination, "cab")
	return []Option{
		{Carrier: "Ola Outstation", Time: "Flexible", Price: float64(int(distance * 12)), Duration: duration, ClassType: "Sedan"},
		{Carrier: "Uber Intercity", Time: "Flexible", Price: float64(int(distance * 13)), Duration: duration, ClassType: "Sedan"},
		{Carrier: "Savaari", Time: "Flexible", Price: float64(int(distance * 16)), Duration: duration, ClassType: "SUV"},
	}
}

type modelOption struct {
	Operator  string `json:"operator"`
	Departure string `json:"departure"`
	Price     string `json:"price"`
	Duration  string `json:"duration"`
	ClassType string `json:"class_type"`
}

// modelOptions asks the model for realistic options on the route and
// sanitizes its prices. Any failure returns nil so the caller falls back
// to static tables.
func (s *ServiceImpl) modelOptions(ctx context.Context, request SearchRequest, mode string) []Option {
	prompt := fmt.Sprintf(`List 3 realistic %s options from %s to %s in India.
Respond with only a JSON array, each element:
{"operator": "...", "departure": "HH:MM", "price": "number in INR", "duration": "Xh Ym", "class_type": "..."}`,
		mode, request.Origin, request.Destination)

	text, err := s.ai.GenerateText(ctx, prompt, genai.GenerateOptions{Temperature: 0.4, MaxOutputTokens: 500})
	if err != nil {
		if !errors.Is(err, genai.ErrNotConfigured) {
			log.Warnf("model %s options failed: %v", mode, err)
		}
		return nil
	}

	var parsed []modelOption
	if err := json.Unmarshal([]byte(genai.ExtractArray(text)), &parsed); err != nil {
		log.Warnf("could not parse %s options: %v", mode, err)
		return nil
	}

	options := make([]Option, 0, len(parsed))
	for _, p := range parsed {
		price, err := sanitizePrice(p.Price)
		if err != nil || price <= 0 {
			continue
		}
		options = append(options, Option{
			Carrier:   p.Operator,
			Time:      p.Departure,
			Price:     price,
			Duration:  p.Duration,
			ClassType: p.ClassType,
		})
	}
	return options
}

// formatISODuration turns an ISO 8601 duration like PT2H30M into "2h 30m".
func formatISODuration(iso string) string {
	trimmed := strings.TrimPrefix(iso, "PT")
	if trimmed == iso {
		return iso
	}
	trimmed = strings.ToLower(trimmed)
	trimmed = strings.ReplaceAll(trimmed, "h", "h ")
	trimmed = strings.ReplaceAll(trimmed, "m", "m")
	return strings.TrimSpace(trimmed)
}

func formatDepartureTime(at string) string {
	parsed, err := time.Parse("2006-01-02T15:04:05", at)
	if err != nil {
		return at
	}
	return parsed.Format("15:04")
}
