package itinerary

import (
	"fmt"
	"strings"
	"time"
)

type activityTemplate struct {
	name    string
	icon    string
	time    string
	costPct float64
}

var activityTemplates = map[string][]activityTemplate{
	"luxurious": {
		{"Spa & Wellness", "💆", "10:00 AM", 0.3},
		{"Fine Dining Experience", "🍽️", "07:30 PM", 0.35},
		{"Private City Tour", "🚗", "02:00 PM", 0.25},
	},
	"adventurous": {
		{"Trekking Expedition", "🥾", "07:00 AM", 0.35},
		{"Water Sports", "🏄", "02:00 PM", 0.4},
		{"Camping Experience", "⛺", "06:00 PM", 0.15},
	},
	"family": {
		{"Local Museum Visit", "🏛️", "10:00 AM", 0.15},
		{"Family Restaurant", "🍴", "01:00 PM", 0.25},
		{"Theme Park", "🎢", "03:00 PM", 0.35},
	},
	"cultural": {
		{"Heritage Walk", "🏛️", "09:00 AM", 0.2},
		{"Traditional Performance", "🎭", "06:00 PM", 0.3},
		{"Local Market Exploration", "🛍️", "04:00 PM", 0.15},
	},
	"budget": {
		{"Free Walking Tour", "🚶", "09:00 AM", 0.05},
		{"Street Food Tour", "🍜", "12:00 PM", 0.15},
		{"Public Park Visit", "🏞️", "04:00 PM", 0},
	},
}

// fallbackItinerary builds a template-based plan when the model is
// unavailable. Day one always starts with check-in.
func fallbackItinerary(request Request, numDays int) []DayPlan {
	budgetPerDay := request.BudgetAllocation
	if numDays > 0 {
		budgetPerDay = request.BudgetAllocation / float64(numDays)
	}

	templates, ok := activityTemplates[strings.ToLower(request.TripType)]
	if !ok {
		templates = activityTemplates["family"]
	}

	itinerary := make([]DayPlan, 0, numDays)
	currentDate := request.StartDate

	for day := 1; day <= numDays; day++ {
		var activities []Activity
		if day == 1 {
			activities = append(activities, Activity{
				Name:        "Hotel Check-in & Relaxation",
				Icon:        "🏨",
				Time:        "12:00 PM",
				Cost:        0,
				Description: fmt.Sprintf("Arrive and settle into your accommodation in %s", request.Destination),
			})
		}

		for _, template := range templates {
			cost := float64(int(budgetPerDay*template.costPct*100)) / 100
			activities = append(activities, Activity{
				Name:        template.name,
				Icon:        template.icon,
				Time:        template.time,
				Cost:        cost,
				Description: fmt.Sprintf("Experience %s in %s", strings.ToLower(template.name), request.Destination),
			})
		}

		var dayCost float64
		for _, activity := range activities {
			dayCost += activity.Cost
		}

		itinerary = append(itinerary, DayPlan{
			Day:        day,
			Date:       currentDate.Format("2006-01-02"),
			Activities: activities,
			TotalCost:  dayCost,
		})
		currentDate = currentDate.Add(24 * time.Hour)
	}

	return itinerary
}

const fallbackRecommendations = "Book activities in advance for better rates. Stay flexible with timings. Try local experiences for authentic memories."
