package amadeus

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
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const baseURL = "https://test.api.amadeus.com"

var ErrNotConfigured = errors.New("Amadeus credentials are not configured")

// currencyToINR converts Amadeus responses (often EUR) to rupees.
var currencyToINR = map[string]float64{
	"EUR": 90.0,
	"USD": 83.0,
	"GBP": 105.0,
	"INR": 1.0,
	"AED": 22.5,
	"SGD": 62.0,
}

type FlightOffer struct {
	Airline       string
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
	Duration      string
	Price         float64
	CabinClass    string
	Stops         int
}

type HotelOffer struct {
	HotelId       string
	Name          string
	Rating        string
	PricePerNight float64
	RoomType      string
	Description   string
	Amenities     []string
}

// Client wraps the Amadeus self-service APIs. All prices are returned
// in INR.
type Client interface {
	SearchFlights(ctx context.Context, origin, destination string, departure time.Time, adults int, maxPrice float64, maxResults int) ([]FlightOffer, error)
	SearchHotels(ctx context.Context, cityCode string, checkIn, checkOut time.Time, adults int, maxPrice float64, maxResults int) ([]HotelOffer, error)
}

type ClientImpl struct {
	oauthConfig *clientcredentials.Config
	baseURL     string
	configured  bool
}

func NewClient(cfg config.Amadeus) *ClientImpl {
	return &ClientImpl{
		oauthConfig: &clientcredentials.Config{
			ClientID:     cfg.APIKey,
			ClientSecret: cfg.APISecret,
			TokenURL:     baseURL + "/v1/security/oauth2/token",
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		baseURL:    baseURL,
		configured: cfg.APIKey != "" && cfg.APISecret != "",
	}
}

func (c *ClientImpl) httpClient(ctx context.Context) (*http.Client, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}
	return c.oauthConfig.Client(ctx), nil
}

func convertToINR(amount float64, currency string) float64 {
	conversionRate, ok := currencyToINR[strings.ToUpper(currency)]
	if !ok {
		conversionRate = 90.0
	}
	return float64(int(amount*conversionRate*100)) / 100
}

type flightOffersResponse struct {
	Data []struct {
		NumberOfBookableSeats int `json:"numberOfBookableSeats"`
		Itineraries           []struct {
			Duration string `json:"duration"`
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
				Number      string `json:"number"`
				Departure   struct {
					At string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					At string `json:"at"`
				} `json:"arrival"`
				Cabin string `json:"cabin"`
			} `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			Total    string `json:"total"`
			Currency string `json:"currency"`
		} `json:"price"`
	} `json:"data"`
}

// SearchFlights calls the Flight Offers Search API. Origin and destination
// are IATA codes.
func (c *ClientImpl) SearchFlights(ctx context.Context, origin, destination string, departure time.Time, adults int, maxPrice float64, maxResults int) ([]FlightOffer, error) {
	client, err := c.httpClient(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("originLocationCode", origin)
	params.Set("destinationLocationCode", destination)
	params.Set("departureDate", departure.Format("2006-01-02"))
	params.Set("adults", strconv.Itoa(adults))
	params.Set("max", strconv.Itoa(maxResults))
	params.Set("currencyCode", "INR")
	params.Set("nonStop", "false")
	if maxPrice <= 0 {
		maxPrice = 50000
	}
	params.Set("maxPrice", strconv.Itoa(int(maxPrice)))

	var response flightOffersResponse
	if err := c.get(ctx, client, "/v2/shopping/flight-offers", params, &response); err != nil {
		return nil, err
	}

	flights := make([]FlightOffer, 0, maxResults)
	for _, offer := range response.Data {
		if len(flights) >= maxResults {
			break
		}
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		itinerary := offer.Itineraries[0]
		segment := itinerary.Segments[0]

		total, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil || total == 0 {
			continue
		}
		currency := offer.Price.Currency
		if currency == "" {
			currency = "EUR"
		}

		cabin := segment.Cabin
		if cabin == "" {
			cabin = "ECONOMY"
		}

		flights = append(flights, FlightOffer{
			Airline:       segment.CarrierCode,
			FlightNumber:  segment.CarrierCode + segment.Number,
			DepartureTime: segment.Departure.At,
			ArrivalTime:   segment.Arrival.At,
			Duration:      itinerary.Duration,
			Price:         convertToINR(total, currency),
			CabinClass:    cabin,
			Stops:         len(itinerary.Segments) - 1,
		})
	}

	if len(flights) > 0 {
		log.Infof("Parsed %d flights from Amadeus", len(flights))
	}
	return flights, nil
}

type hotelListResponse struct {
	Data []struct {
		HotelId string `json:"hotelId"`
	} `json:"data"`
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelId   string   `json:"hotelId"`
			Name      string   `json:"name"`
			Rating    string   `json:"rating"`
			Amenities []string `json:"amenities"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
			Room struct {
				TypeEstimated struct {
					Category string `json:"category"`
				} `json:"typeEstimated"`
				Description struct {
					Text string `json:"text"`
				} `json:"description"`
			} `json:"room"`
		} `json:"offers"`
	} `json:"data"`
}

// SearchHotels lists hotels for the city then fetches priced offers for
// the stay. Hotel offers need production API access; in the test
// environment this regularly returns an empty set.
func (c *ClientImpl) SearchHotels(ctx context.Context, cityCode string, checkIn, checkOut time.Time, adults int, maxPrice float64, maxResults int) ([]HotelOffer, error) {
	client, err := c.httpClient(ctx)
	if err != nil {
		return nil, err
	}

	listParams := url.Values{}
	listParams.Set("cityCode", cityCode)
	listParams.Set("radius", "50")
	listParams.Set("radiusUnit", "KM")
	listParams.Set("hotelSource", "ALL")

	var list hotelListResponse
	if err := c.get(ctx, client, "/v1/reference-data/locations/hotels/by-city", listParams, &list); err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		return nil, nil
	}

	hotelIds := make([]string, 0, maxResults)
	for _, h := range list.Data {
		if len(hotelIds) >= maxResults {
			break
		}
		hotelIds = append(hotelIds, h.HotelId)
	}

	offerParams := url.Values{}
	offerParams.Set("hotelIds", strings.Join(hotelIds, ","))
	offerParams.Set("checkInDate", checkIn.Format("2006-01-02"))
	offerParams.Set("checkOutDate", checkOut.Format("2006-01-02"))
	offerParams.Set("adults", strconv.Itoa(adults))
	offerParams.Set("roomQuantity", "1")
	offerParams.Set("currency", "INR")
	if maxPrice > 0 {
		offerParams.Set("priceRange", fmt.Sprintf("0-%d", int(maxPrice)))
	}

	var offers hotelOffersResponse
	if err := c.get(ctx, client, "/v3/shopping/hotel-offers", offerParams, &offers); err != nil {
		return nil, err
	}

	hotels := make([]HotelOffer, 0, maxResults)
	for _, data := range offers.Data {
		if len(hotels) >= maxResults {
			break
		}
		if len(data.Offers) == 0 {
			continue
		}
		first := data.Offers[0]

		total, err := strconv.ParseFloat(first.Price.Total, 64)
		if err != nil || total == 0 {
			continue
		}
		currency := first.Price.Currency
		if currency == "" {
			currency = "EUR"
		}

		roomType := first.Room.TypeEstimated.Category
		if roomType == "" {
			roomType = "Standard"
		}

		hotels = append(hotels, HotelOffer{
			HotelId:       data.Hotel.HotelId,
			Name:          data.Hotel.Name,
			Rating:        data.Hotel.Rating,
			PricePerNight: convertToINR(total, currency),
			RoomType:      roomType,
			Description:   first.Room.Description.Text,
			Amenities:     data.Hotel.Amenities,
		})
	}

	if len(hotels) > 0 {
		log.Infof("Parsed %d hotels from Amadeus", len(hotels))
	}
	return hotels, nil
}

func (c *ClientImpl) get(ctx context.Context, client *http.Client, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("Amadeus API returned non-OK status: %d", resp.StatusCode)
		log.Error(err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return err
	}
	return nil
}
