package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/pkg/genai"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/user"
)

type Service interface {
	Generate(ctx context.Context, request Request) (Plan, error)
}

type ServiceImpl struct {
	ai          genai.Client
	coordinator *pipeline.Coordinator
}

func NewService(ai genai.Client, coordinator *pipeline.Coordinator) *ServiceImpl {
	return &ServiceImpl{ai: ai, coordinator: coordinator}
}

// Generate plans the trip day by day. The model draft is preferred, with
// template plans covering model failures, so a plan is always returned.
func (s *ServiceImpl) Generate(ctx context.Context, request Request) (Plan, error) {
	uid := user.CurrentIdOrAnonymous(ctx)
	budget := s.coordinator.ActivitiesBudget(uid, request.BudgetAllocation)
	if budget != request.BudgetAllocation {
		log.Debugf("activities budget adjusted from %.2f to %.2f for user %s", request.BudgetAllocation, budget, uid)
	}
	request.BudgetAllocation = budget

	numDays := request.Days()
	days, err := s.modelItinerary(ctx, request, numDays)
	if err != nil {
		if !errors.Is(err, genai.ErrNotConfigured) {
			log.Warnf("model itinerary failed (%v), using template plan", err)
		}
		days = fallbackItinerary(request, numDays)
	}

	total := totalCost(days)

	return Plan{
		Itinerary:           days,
		TotalActivitiesCost: total,
		Recommendations:     s.recommendations(ctx, request, numDays, total),
	}, nil
}

type modelActivity struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

type modelDay struct {
	Day        int             `json:"day"`
	Activities []modelActivity `json:"activities"`
}

func (s *ServiceImpl) modelItinerary(ctx context.Context, request Request, numDays int) ([]DayPlan, error) {
	interests := "general tourism"
	if len(request.Interests) > 0 {
		interests = strings.Join(request.Interests, ", ")
	}

	prompt := fmt.Sprintf(`Create a detailed %d-day itinerary for %s.

Trip Details:
- Type: %s
- Start Date: %s
- Budget for activities: ₹%.0f
- Interests: %s

For each day, suggest 3-4 activities with:
- name: activity name
- icon: single emoji representing the activity
- time: suggested time (e.g., "09:00 AM")
- cost: estimated cost in INR (0 for free activities)
- description: brief description (one sentence)

Activities must suit the trip type, be realistic for the destination, and
stay within the budget allocation.

Return as JSON array:
[{"day": 1, "activities": [{"name": "...", "icon": "🏨", "time": "...", "cost": 0, "description": "..."}]}]

Return ONLY valid JSON, no other text.`,
		numDays, request.Destination, request.TripType,
		request.StartDate.Format("2006-01-02"), request.BudgetAllocation, interests)

	text, err := s.ai.GenerateText(ctx, prompt, genai.GenerateOptions{Temperature: 0.7, MaxOutputTokens: 4000})
	if err != nil {
		return nil, err
	}

	var parsed []modelDay
	if err := json.Unmarshal([]byte(genai.ExtractArray(text)), &parsed); err != nil {
		return nil, fmt.Errorf("could not parse itinerary: %w", err)
	}
	if len(parsed) == 0 {
		return nil, errors.New("model returned an empty itinerary")
	}

	days := make([]DayPlan, 0, len(parsed))
	currentDate := request.StartDate
	for _, dayData := range parsed {
		activities := make([]Activity, 0, len(dayData.Activities))
		var dayCost float64
		for _, act := range dayData.Activities {
			icon := act.Icon
			if icon == "" {
				icon = "📍"
			}
			if act.Cost < 0 {
				act.Cost = 0
			}
			activities = append(activities, Activity{
				Name:        act.Name,
				Icon:        icon,
				Time:        act.Time,
				Cost:        act.Cost,
				Description: act.Description,
			})
			dayCost += act.Cost
		}

		days = append(days, DayPlan{
			Day:        dayData.Day,
			Date:       currentDate.Format("2006-01-02"),
			Activities: activities,
			TotalCost:  dayCost,
		})
		currentDate = currentDate.Add(24 * time.Hour)
	}

	return days, nil
}

func (s *ServiceImpl) recommendations(ctx context.Context, request Request, numDays int, total float64) string {
	prompt := fmt.Sprintf(`Review this %d-day itinerary for %s and provide 3 practical tips:

Trip Type: %s
Total Activities Cost: ₹%.0f
Budget Allocated: ₹%.0f

Provide brief, actionable tips about timing and logistics, cost
optimization, and must-do experiences. Keep response to 3 bullet points,
concise.`,
		numDays, request.Destination, request.TripType, total, request.BudgetAllocation)

	text, err := s.ai.GenerateText(ctx, prompt, genai.GenerateOptions{Temperature: 0.7, MaxOutputTokens: 300})
	if err != nil {
		if !errors.Is(err, genai.ErrNotConfigured) {
			log.Warnf("itinerary recommendations failed: %v", err)
		}
		return fallbackRecommendations
	}
	return strings.TrimSpace(text)
}
