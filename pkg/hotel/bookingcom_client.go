package hotel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/config"
	"golang.org/x/time/rate"
)

const (
	bookingBaseURL = "https://booking-com.p.rapidapi.com/v1"
	bookingHost    = "booking-com.p.rapidapi.com"
	maxResults     = 15
)

var ErrNoAPIKey = errors.New("RapidAPI key is not configured")

// BookingClient searches real hotel availability through the Booking.com
// API on RapidAPI.
type BookingClient interface {
	SearchHotels(ctx context.Context, request SearchRequest) ([]Hotel, error)
}

type BookingClientImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	// The free RapidAPI tier has a monthly quota; the limiter keeps a
	// burst of wizard sessions from burning through it.
	limiter *rate.Limiter
}

func NewBookingClient(cfg config.RapidAPI) *BookingClientImpl {
	return &BookingClientImpl{
		apiKey:  cfg.Key,
		baseURL: bookingBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

type bookingLocation struct {
	DestId   json.Number `json:"dest_id"`
	DestType string      `json:"dest_type"`
}

type bookingHotel struct {
	HotelId        json.Number `json:"hotel_id"`
	HotelName      string      `json:"hotel_name"`
	HotelNameTrans string      `json:"hotel_name_trans"`
	Address        string      `json:"address"`
	City           string      `json:"city"`
	ReviewScore    float64     `json:"review_score"`
	MainPhotoUrl   string      `json:"main_photo_url"`
	MaxPhotoUrl    string      `json:"max_photo_url"`
	IsFamily       bool        `json:"is_family_friendly"`
	Facilities     string      `json:"hotel_facilities"`
	PriceBreakdown struct {
		GrossPrice json.Number `json:"gross_price"`
	} `json:"price_breakdown"`
}

// SearchHotels resolves the destination to a Booking.com location and
// fetches priced availability for the stay.
func (c *BookingClientImpl) SearchHotels(ctx context.Context, request SearchRequest) ([]Hotel, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	location, err := c.findLocation(ctx, request.Destination)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("dest_id", location.DestId.String())
	params.Set("dest_type", location.DestType)
	params.Set("checkin_date", request.CheckIn.Format("2006-01-02"))
	params.Set("checkout_date", request.CheckOut.Format("2006-01-02"))
	params.Set("adults_number", strconv.Itoa(request.Adults))
	params.Set("children_number", strconv.Itoa(request.Children))
	params.Set("room_number", "1")
	params.Set("units", "metric")
	params.Set("order_by", "popularity")
	params.Set("filter_by_currency", "INR")
	params.Set("locale", "en-gb")
	params.Set("page_number", "0")

	var response struct {
		Result []bookingHotel `json:"result"`
	}
	if err := c.get(ctx, c.baseURL+"/hotels/search", params, &response); err != nil {
		return nil, err
	}

	nights := request.Nights()
	hotels := make([]Hotel, 0, maxResults)
	for idx, data := range response.Result {
		if len(hotels) >= maxResults {
			break
		}

		gross, _ := data.PriceBreakdown.GrossPrice.Float64()
		pricePerNight := gross / float64(nights)
		if pricePerNight == 0 {
			pricePerNight = 2000
		}
		// Over-budget results are dropped with a 50% grace margin.
		if request.MaxPrice > 0 && pricePerNight > request.MaxPrice*1.5 {
			continue
		}

		image := data.MainPhotoUrl
		if image == "" {
			image = data.MaxPhotoUrl
		}
		if image == "" {
			image = hotelImage(idx)
		}

		location := data.Address
		if location == "" {
			location = data.City
		}
		if location == "" {
			location = request.Destination
		}

		rating := data.ReviewScore
		if rating == 0 {
			rating = 4.0
		}

		description := data.HotelNameTrans
		if description == "" {
			description = data.HotelName
		}

		hotels = append(hotels, Hotel{
			Id:          fmt.Sprintf("real_hotel_%s", data.HotelId.String()),
			Name:        data.HotelName,
			Price:       float64(int(pricePerNight)),
			Rating:      rating,
			Image:       image,
			Location:    location,
			Amenities:   parseFacilities(data.Facilities),
			Description: description,
			Tag:         tagForPrice(pricePerNight, data.IsFamily),
		})
	}

	return hotels, nil
}

func (c *BookingClientImpl) findLocation(ctx context.Context, destination string) (bookingLocation, error) {
	params := url.Values{}
	params.Set("name", strings.TrimSpace(destination))
	params.Set("locale", "en-gb")

	var locations []bookingLocation
	if err := c.get(ctx, c.baseURL+"/hotels/locations", params, &locations); err != nil {
		return bookingLocation{}, err
	}
	if len(locations) == 0 {
		return bookingLocation{}, fmt.Errorf("no location found for: %s", destination)
	}

	location := locations[0]
	if location.DestId.String() == "" {
		return bookingLocation{}, fmt.Errorf("invalid destination id for: %s", destination)
	}
	if location.DestType == "" {
		location.DestType = "city"
	}
	return location, nil
}

func (c *BookingClientImpl) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", bookingHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return fmt.Errorf("RapidAPI key invalid or subscription required")
	case http.StatusTooManyRequests:
		return fmt.Errorf("RapidAPI rate limit exceeded")
	default:
		return fmt.Errorf("Booking.com API returned non-OK status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return err
	}
	return nil
}

// facilityNames maps substrings of the raw facilities field to display names.
var facilityNames = []struct {
	key  string
	name string
}{
	{"wifi", "Free WiFi"},
	{"pool", "Swimming Pool"},
	{"gym", "Fitness Center"},
	{"spa", "Spa"},
	{"restaurant", "Restaurant"},
	{"bar", "Bar"},
	{"parking", "Free Parking"},
	{"breakfast", "Breakfast Included"},
	{"ac", "Air Conditioning"},
	{"room service", "Room Service"},
}

func parseFacilities(facilities string) []string {
	defaults := []string{"WiFi", "Air Conditioning", "Room Service"}
	if facilities == "" {
		return defaults
	}

	lower := strings.ToLower(facilities)
	var amenities []string
	for _, facility := range facilityNames {
		if strings.Contains(lower, facility.key) && len(amenities) < 5 {
			amenities = append(amenities, facility.name)
		}
	}
	if len(amenities) == 0 {
		return defaults
	}
	return amenities
}
