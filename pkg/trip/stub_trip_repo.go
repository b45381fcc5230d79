package trip

import (
	"context"
	"sort"
)

type StubTripRepo struct {
	data map[string]SavedTrip
}

func NewStubTripRepo() *StubTripRepo {
	return &StubTripRepo{data: map[string]SavedTrip{}}
}

func (s *StubTripRepo) Store(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error) {
	trip.UserId = userId
	s.data[trip.Id] = trip
	return trip, nil
}

func (s *StubTripRepo) Get(ctx context.Context, userId string, tripId string) (SavedTrip, error) {
	trip, ok := s.data[tripId]
	if !ok || trip.UserId != userId {
		return SavedTrip{}, ErrTripNotFound
	}
	return trip, nil
}

func (s *StubTripRepo) List(ctx context.Context, userId string) ([]SavedTrip, error) {
	trips := make([]SavedTrip, 0, len(s.data))
	for _, trip := range s.data {
		if trip.UserId == userId {
			trips = append(trips, trip)
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

func (s *StubTripRepo) Update(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error) {
	existing, ok := s.data[trip.Id]
	if !ok || existing.UserId != userId {
		return SavedTrip{}, ErrTripNotFound
	}
	trip.UserId = userId
	s.data[trip.Id] = trip
	return trip, nil
}

func (s *StubTripRepo) Delete(ctx context.Context, userId string, tripId string) (bool, error) {
	trip, ok := s.data[tripId]
	if !ok || trip.UserId != userId {
		return false, nil
	}
	delete(s.data, tripId)
	return true, nil
}

func (s *StubTripRepo) Cleanup() {
	s.data = map[string]SavedTrip{}
}
