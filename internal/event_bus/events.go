package event_bus

const (
	// EventBudgetAllocated is published after the budget stage computes an
	// allocation; the pipeline coordinator consumes it to clamp later stages.
	EventBudgetAllocated EventType = "budget.allocated"

	// EventTripSaved is published after a trip snapshot is persisted.
	EventTripSaved EventType = "trip.saved"
)

// BudgetAllocated carries the per-night and per-day budgets derived from
// a trip's total budget.
type BudgetAllocated struct {
	UserId                 string
	TotalBudget            float64
	AccommodationBudget    float64
	HotelBudgetPerNight    float64
	TransportBudget        float64
	ActivitiesBudget       float64
	ActivitiesBudgetPerDay float64
	FoodBudget             float64
	FoodBudgetPerDay       float64
	MiscellaneousBudget    float64
	TripDurationDays       int
	TripDurationNights     int
}

type TripSaved struct {
	TripId      string
	UserId      string
	Destination string
}
