package itinerary

import "time"

// Activity is one scheduled item in a day plan.
type Activity struct {
	Name        string
	Icon        string
	Time        string
	Cost        float64
	Description string
}

// DayPlan groups a day's activities with their running cost.
type DayPlan struct {
	Day        int
	Date       string
	Activities []Activity
	TotalCost  float64
}

type Request struct {
	Destination      string
	StartDate        time.Time
	EndDate          time.Time
	TripType         string
	BudgetAllocation float64
	Interests        []string
}

// Days is the itinerary length. Same-day trips still plan one day.
func (r Request) Days() int {
	days := int(r.EndDate.Sub(r.StartDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

type Plan struct {
	Itinerary           []DayPlan
	TotalActivitiesCost float64
	Recommendations     string
}

func totalCost(days []DayPlan) float64 {
	var total float64
	for _, day := range days {
		total += day.TotalCost
	}
	return total
}
