package budget

import (
	"context"
	"fmt"
	"math"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/user"
)

type Service interface {
	Allocate(ctx context.Context, request TripRequest) (Analysis, error)
}

type ServiceImpl struct {
	ai  genai.Client
	bus *event_bus.EventBus
}

func NewService(ai genai.Client, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{ai: ai, bus: bus}
}

// Allocate splits the total budget over the category table for the trip
// type and publishes the resulting per-night/per-day budgets for the later
// wizard stages.
func (s *ServiceImpl) Allocate(ctx context.Context, request TripRequest) (Analysis, error) {
	allocation := allocationFor(strings.ToLower(request.TripType))

	breakdown := make([]Breakdown, 0, len(categories))
	amounts := make(map[string]float64, len(categories))
	for _, category := range categories {
		percentage := allocation[category]
		value := round2(percentage / 100 * request.Budget)
		breakdown = append(breakdown, Breakdown{
			Name:       capitalize(category),
			Value:      value,
			Percentage: percentage,
		})
		amounts[category] = value
	}

	days := request.Days()
	nights := days
	pipeline := PipelineData{
		TotalBudget:         request.Budget,
		AccommodationBudget: amounts[categoryAccommodation],
		TransportBudget:     amounts[categoryTransport],
		ActivitiesBudget:    amounts[categoryActivities],
		FoodBudget:          amounts[categoryFood],
		MiscellaneousBudget: amounts[categoryMiscellaneous],
		TripDurationDays:    days,
		TripDurationNights:  nights,
	}
	pipeline.HotelBudgetPerNight = perUnit(amounts[categoryAccommodation], nights)
	pipeline.ActivitiesBudgetPerDay = perUnit(amounts[categoryActivities], days)
	pipeline.FoodBudgetPerDay = perUnit(amounts[categoryFood], days)

	s.publishPipeline(ctx, pipeline)

	return Analysis{
		Total:           request.Budget,
		Breakdown:       breakdown,
		Recommendations: s.recommendations(ctx, request, amounts, days),
		Pipeline:        pipeline,
	}, nil
}

func (s *ServiceImpl) publishPipeline(ctx context.Context, pipeline PipelineData) {
	event := event_bus.BudgetAllocated{
		UserId:                 user.CurrentIdOrAnonymous(ctx),
		TotalBudget:            pipeline.TotalBudget,
		AccommodationBudget:    pipeline.AccommodationBudget,
		HotelBudgetPerNight:    pipeline.HotelBudgetPerNight,
		TransportBudget:        pipeline.TransportBudget,
		ActivitiesBudget:       pipeline.ActivitiesBudget,
		ActivitiesBudgetPerDay: pipeline.ActivitiesBudgetPerDay,
		FoodBudget:             pipeline.FoodBudget,
		FoodBudgetPerDay:       pipeline.FoodBudgetPerDay,
		MiscellaneousBudget:    pipeline.MiscellaneousBudget,
		TripDurationDays:       pipeline.TripDurationDays,
		TripDurationNights:     pipeline.TripDurationNights,
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.EventBudgetAllocated, event)); err != nil {
		log.Errorf("failed to publish budget allocation: %v", err)
	}
}

// recommendations asks the model for trip-specific budget tips and falls
// back to deterministic tips built from the allocation.
func (s *ServiceImpl) recommendations(ctx context.Context, request TripRequest, amounts map[string]float64, days int) string {
	prompt := fmt.Sprintf("Give 3 budget tips for a %d-day %s trip to %s with %.0f rupees budget.",
		days, request.TripType, request.Destination, request.Budget)

	text, err := s.ai.GenerateText(ctx, prompt, genai.GenerateOptions{
		Temperature:     0.7,
		MaxOutputTokens: 200,
	})
	if err != nil {
		log.Warnf("falling back to static budget recommendations: %v", err)
		return fallbackRecommendations(request, amounts, days)
	}
	return strings.TrimSpace(text)
}

func fallbackRecommendations(request TripRequest, amounts map[string]float64, days int) string {
	tips := []string{
		fmt.Sprintf("• Book accommodation early in %s to get better rates", request.Destination),
		fmt.Sprintf("• Budget ₹%.0f for %d days of activities and sightseeing", amounts[categoryActivities], days),
		fmt.Sprintf("• Allocate ₹%.0f for food - try local restaurants for authentic cuisine", amounts[categoryFood]),
		fmt.Sprintf("• Reserve ₹%.0f for transport - use local transport to save costs", amounts[categoryTransport]),
	}

	switch strings.ToLower(request.TripType) {
	case "luxurious":
		tips = append(tips,
			"• Consider premium experiences and fine dining options",
			"• Book spa treatments and luxury tours in advance")
	case "adventurous":
		tips = append(tips,
			"• Invest in quality adventure activities and guided tours",
			"• Pack appropriate gear to avoid expensive rentals")
	case "family":
		tips = append(tips,
			"• Look for family packages and group discounts",
			"• Plan kid-friendly activities with flexible timings")
	case "budget":
		tips = append(tips,
			"• Use public transport and eat at local eateries",
			"• Book hostels or budget hotels to save on accommodation")
	case "cultural":
		tips = append(tips,
			"• Allocate budget for museum entries and cultural tours",
			"• Hire local guides for authentic cultural experiences")
	}

	if len(tips) > 5 {
		tips = tips[:5]
	}
	return strings.Join(tips, "\n")
}

// perUnit divides an amount over a number of days/nights, keeping the full
// amount for same-day trips.
func perUnit(amount float64, units int) float64 {
	if units <= 0 {
		return amount
	}
	return round2(amount / float64(units))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
