package pipeline

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/event_bus"
)

// Allocation is the budget context carried between wizard stages for one
// user session.
type Allocation struct {
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

// Coordinator keeps the latest budget allocation per user and clamps the
// budgets requested by the hotel, transport, and activities stages so a
// stage can never spend more than its share. A new budget analysis
// replaces the stored context for that user.
type Coordinator struct {
	mu       sync.RWMutex
	sessions map[string]Allocation
}

func NewCoordinator(bus *event_bus.EventBus) *Coordinator {
	c := &Coordinator{
		sessions: make(map[string]Allocation),
	}
	event_bus.SubscribeTyped[event_bus.BudgetAllocated](bus, event_bus.EventBudgetAllocated,
		func(e event_bus.EventT[event_bus.BudgetAllocated]) error {
			c.store(e.Data)
			return nil
		})
	return c
}

func (c *Coordinator) store(data event_bus.BudgetAllocated) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[data.UserId] = Allocation{
		TotalBudget:            data.TotalBudget,
		AccommodationBudget:    data.AccommodationBudget,
		HotelBudgetPerNight:    data.HotelBudgetPerNight,
		TransportBudget:        data.TransportBudget,
		ActivitiesBudget:       data.ActivitiesBudget,
		ActivitiesBudgetPerDay: data.ActivitiesBudgetPerDay,
		FoodBudget:             data.FoodBudget,
		FoodBudgetPerDay:       data.FoodBudgetPerDay,
		MiscellaneousBudget:    data.MiscellaneousBudget,
		TripDurationDays:       data.TripDurationDays,
		TripDurationNights:     data.TripDurationNights,
	}
	log.Debugf("stored budget pipeline for user %s (hotel/night: %.2f, activities/day: %.2f)",
		data.UserId, data.HotelBudgetPerNight, data.ActivitiesBudgetPerDay)
}

// Current returns the stored allocation for the user, if any.
func (c *Coordinator) Current(userId string) (Allocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	allocation, ok := c.sessions[userId]
	return allocation, ok
}

// HotelMaxPrice clamps the requested nightly price ceiling to the per-night
// accommodation budget. Without a stored allocation the requested value is
// returned unchanged.
func (c *Coordinator) HotelMaxPrice(userId string, requested float64) float64 {
	allocation, ok := c.Current(userId)
	if !ok || allocation.HotelBudgetPerNight <= 0 {
		return requested
	}
	if requested <= 0 || allocation.HotelBudgetPerNight < requested {
		return allocation.HotelBudgetPerNight
	}
	return requested
}

// TransportBudget replaces the requested transport allocation with the
// pipeline value when one exists.
func (c *Coordinator) TransportBudget(userId string, requested float64) float64 {
	allocation, ok := c.Current(userId)
	if !ok || allocation.TransportBudget <= 0 {
		return requested
	}
	return allocation.TransportBudget
}

// ActivitiesBudget replaces the requested activities allocation with the
// pipeline value when one exists.
func (c *Coordinator) ActivitiesBudget(userId string, requested float64) float64 {
	allocation, ok := c.Current(userId)
	if !ok || allocation.ActivitiesBudget <= 0 {
		return requested
	}
	return allocation.ActivitiesBudget
}

// Reset drops the stored allocation for the user.
func (c *Coordinator) Reset(userId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userId)
}
