package budget

import "time"

// TripRequest describes one planning session. It is submitted once at the
// start of the wizard and reused by the later stages.
type TripRequest struct {
	TripType    string
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      float64
	Adults      int
	Children    int
}

// Days returns the trip duration in days (nights equal days for hotel
// booking purposes).
func (r TripRequest) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Breakdown is one budget category slice.
type Breakdown struct {
	Name       string
	Value      float64
	Percentage float64
}

// Analysis is the result of the budget allocation stage.
type Analysis struct {
	Total           float64
	Breakdown       []Breakdown
	Recommendations string
	Pipeline        PipelineData
}

// PipelineData carries the per-night and per-day budgets consumed by the
// hotel, transport, and activities stages.
type PipelineData struct {
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

const (
	categoryAccommodation = "accommodation"
	categoryTransport     = "transport"
	categoryActivities    = "activities"
	categoryFood          = "food"
	categoryMiscellaneous = "miscellaneous"
)

// Category order is fixed so breakdowns render consistently.
var categories = []string{
	categoryAccommodation,
	categoryTransport,
	categoryActivities,
	categoryFood,
	categoryMiscellaneous,
}

// tripTypeAllocations maps trip type to category percentages. Each row sums
// to 100. Unknown trip types use the family allocation.
var tripTypeAllocations = map[string]map[string]float64{
	"luxurious": {
		categoryAccommodation: 40,
		categoryTransport:     25,
		categoryActivities:    20,
		categoryFood:          10,
		categoryMiscellaneous: 5,
	},
	"adventurous": {
		categoryAccommodation: 25,
		categoryTransport:     20,
		categoryActivities:    35,
		categoryFood:          12,
		categoryMiscellaneous: 8,
	},
	"family": {
		categoryAccommodation: 30,
		categoryTransport:     25,
		categoryActivities:    25,
		categoryFood:          15,
		categoryMiscellaneous: 5,
	},
	"budget": {
		categoryAccommodation: 30,
		categoryTransport:     30,
		categoryActivities:    20,
		categoryFood:          15,
		categoryMiscellaneous: 5,
	},
	"cultural": {
		categoryAccommodation: 28,
		categoryTransport:     22,
		categoryActivities:    30,
		categoryFood:          15,
		categoryMiscellaneous: 5,
	},
}

func allocationFor(tripType string) map[string]float64 {
	if allocation, ok := tripTypeAllocations[tripType]; ok {
		return allocation
	}
	return tripTypeAllocations["family"]
}
