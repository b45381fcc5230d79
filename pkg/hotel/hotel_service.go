package hotel

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/pkg/amadeus"
	"github.com/tripforge/tripforge/pkg/pipeline"
	"github.com/tripforge/tripforge/pkg/user"
)

type Service interface {
	Search(ctx context.Context, request SearchRequest) (SearchResult, error)
}

type ServiceImpl struct {
	booking     BookingClient
	amadeus     amadeus.Client
	coordinator *pipeline.Coordinator
}

func NewService(booking BookingClient, amadeusClient amadeus.Client, coordinator *pipeline.Coordinator) *ServiceImpl {
	return &ServiceImpl{
		booking:     booking,
		amadeus:     amadeusClient,
		coordinator: coordinator,
	}
}

// Search returns hotels for the stay, trying the live sources first and
// degrading to generated data. The nightly price ceiling is clamped to the
// accommodation budget from the pipeline when one exists.
func (s *ServiceImpl) Search(ctx context.Context, request SearchRequest) (SearchResult, error) {
	uid := user.CurrentIdOrAnonymous(ctx)
	request.MaxPrice = s.coordinator.HotelMaxPrice(uid, request.MaxPrice)
	log.Debugf("searching hotels in %s with max price ₹%.2f/night", request.Destination, request.MaxPrice)

	if hotels := s.searchBooking(ctx, request); len(hotels) > 0 {
		return SearchResult{Hotels: hotels, TotalCount: len(hotels)}, nil
	}

	if hotels := s.searchAmadeus(ctx, request); len(hotels) > 0 {
		return SearchResult{Hotels: hotels, TotalCount: len(hotels)}, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	hotels := generateHotels(rng, request, request.MaxPrice)
	return SearchResult{Hotels: hotels, TotalCount: len(hotels)}, nil
}

func (s *ServiceImpl) searchBooking(ctx context.Context, request SearchRequest) []Hotel {
	hotels, err := s.booking.SearchHotels(ctx, request)
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			log.Debug("no RapidAPI key configured, skipping Booking.com search")
		} else {
			log.Warnf("Booking.com search failed: %v", err)
		}
		return nil
	}
	if len(hotels) > 0 {
		log.Infof("Retrieved %d hotels from Booking.com", len(hotels))
	}
	return hotels
}

func (s *ServiceImpl) searchAmadeus(ctx context.Context, request SearchRequest) []Hotel {
	cityCode, ok := amadeus.CityCode(request.Destination)
	if !ok {
		return nil
	}

	offers, err := s.amadeus.SearchHotels(ctx, cityCode, request.CheckIn, request.CheckOut,
		request.Adults, request.MaxPrice, maxResults)
	if err != nil {
		if errors.Is(err, amadeus.ErrNotConfigured) {
			log.Debug("Amadeus credentials not configured, skipping hotel offers")
		} else {
			log.Warnf("Amadeus hotel search failed: %v", err)
		}
		return nil
	}

	hotels := make([]Hotel, 0, len(offers))
	for idx, offer := range offers {
		if request.MaxPrice > 0 && offer.PricePerNight > request.MaxPrice*1.5 {
			continue
		}

		rating := 4.0
		if parsed, err := strconv.ParseFloat(offer.Rating, 64); err == nil && parsed > 0 {
			rating = parsed
		}

		description := offer.Description
		if description == "" {
			description = fmt.Sprintf("%s room at %s", offer.RoomType, offer.Name)
		}

		amenities := offer.Amenities
		if len(amenities) > 5 {
			amenities = amenities[:5]
		}
		if len(amenities) == 0 {
			amenities = []string{"WiFi", "Air Conditioning", "Room Service"}
		}

		hotels = append(hotels, Hotel{
			Id:          "amadeus_" + offer.HotelId,
			Name:        offer.Name,
			Price:       float64(int(offer.PricePerNight)),
			Rating:      rating,
			Image:       hotelImage(idx),
			Location:    request.Destination,
			Amenities:   amenities,
			Description: description,
			Tag:         tagForPrice(offer.PricePerNight, false),
		})
	}
	return hotels
}
