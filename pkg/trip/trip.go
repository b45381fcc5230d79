package trip

import (
	"errors"
	"time"

	"github.com/tripforge/tripforge/pkg/budget"
	"github.com/tripforge/tripforge/pkg/hotel"
	"github.com/tripforge/tripforge/pkg/itinerary"
	"github.com/tripforge/tripforge/pkg/transport"
)

var ErrTripNotFound = errors.New("trip not found")

// SavedTrip is a snapshot of one finished wizard run: the original trip
// details plus whatever the user selected at each stage. Stages the user
// skipped stay nil.
type SavedTrip struct {
	Id                 string
	UserId             string
	TripDetails        budget.TripRequest
	Budget             *budget.Analysis
	Hotel              *hotel.Hotel
	Transport          *transport.Mode
	Itinerary          *itinerary.Plan
	TotalEstimatedCost float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
