package trip

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/event_bus"
	"github.com/tripforge/tripforge/internal/utils"
	"github.com/tripforge/tripforge/pkg/user"
)

type Service interface {
	Save(ctx context.Context, trip SavedTrip) (SavedTrip, error)
	Get(ctx context.Context, tripId string) (SavedTrip, error)
	List(ctx context.Context) ([]SavedTrip, error)
	Update(ctx context.Context, trip SavedTrip) (SavedTrip, error)
	Delete(ctx context.Context, tripId string) (bool, error)
}

type ServiceImpl struct {
	repo     Repository
	eventBus *event_bus.EventBus
	clock    utils.Clock
}

func NewTripService(repo Repository, eventBus *event_bus.EventBus, clock utils.Clock) Service {
	return &ServiceImpl{repo: repo, eventBus: eventBus, clock: clock}
}

// Save stores a finished plan for the current user. The total estimated
// cost is recomputed from the snapshot so stale client values cannot be
// persisted.
func (s *ServiceImpl) Save(ctx context.Context, trip SavedTrip) (SavedTrip, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return SavedTrip{}, fmt.Errorf("failed to get current user: %w", err)
	}

	now := s.clock.Now()
	trip.Id = uuid.NewString()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	trip.TotalEstimatedCost = estimateTotalCost(trip)

	stored, err := s.repo.Store(ctx, userId, trip)
	if err != nil {
		return SavedTrip{}, err
	}

	err = s.eventBus.Publish(event_bus.NewEvent(
		ctx,
		event_bus.EventTripSaved,
		event_bus.TripSaved{
			TripId:      stored.Id,
			UserId:      userId,
			Destination: stored.TripDetails.Destination,
		},
	))
	if err != nil {
		log.Errorf("failed to publish trip saved event: %v", err)
	}

	return stored, nil
}

func (s *ServiceImpl) Get(ctx context.Context, tripId string) (SavedTrip, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return SavedTrip{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId, tripId)
}

func (s *ServiceImpl) List(ctx context.Context) ([]SavedTrip, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.List(ctx, userId)
}

func (s *ServiceImpl) Update(ctx context.Context, trip SavedTrip) (SavedTrip, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return SavedTrip{}, fmt.Errorf("failed to get current user: %w", err)
	}

	existing, err := s.repo.Get(ctx, userId, trip.Id)
	if err != nil {
		return SavedTrip{}, err
	}

	trip.CreatedAt = existing.CreatedAt
	trip.UpdatedAt = s.clock.Now()
	trip.TotalEstimatedCost = estimateTotalCost(trip)

	return s.repo.Update(ctx, userId, trip)
}

func (s *ServiceImpl) Delete(ctx context.Context, tripId string) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, tripId)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("trip %s not deleted, probably because it does not exist or the user (%s) is not the owner", tripId, userId)
		return false, ErrTripNotFound
	}
	return true, nil
}

// estimateTotalCost sums the selected hotel stay, transport option, and
// planned activities.
func estimateTotalCost(trip SavedTrip) float64 {
	var total float64

	if trip.Hotel != nil {
		nights := trip.TripDetails.Days()
		if nights < 1 {
			nights = 1
		}
		total += trip.Hotel.Price * float64(nights)
	}

	if trip.Transport != nil && len(trip.Transport.Options) > 0 {
		travellers := trip.TripDetails.Adults + trip.TripDetails.Children
		if travellers < 1 {
			travellers = 1
		}
		// Options arrive from the client and are not guaranteed sorted.
		cheapest := trip.Transport.Options[0].Price
		for _, option := range trip.Transport.Options[1:] {
			if option.Price < cheapest {
				cheapest = option.Price
			}
		}
		total += cheapest * float64(travellers)
	}

	if trip.Itinerary != nil {
		total += trip.Itinerary.TotalActivitiesCost
	}

	return total
}
