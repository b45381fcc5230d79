package hotel

import (
	"fmt"
	"math/rand"
	"strings"
)

type chainEntry struct {
	name      string
	basePrice float64
	rating    float64
}

// Real Indian hotel chains bucketed by price band, used when no live hotel
// source is available.
var hotelChains = map[string][]chainEntry{
	"luxury": {
		{"Taj Palace", 8000, 4.7},
		{"The Oberoi", 12000, 4.8},
		{"ITC Grand", 9000, 4.6},
		{"Leela Palace", 11000, 4.8},
		{"JW Marriott", 7500, 4.6},
	},
	"premium": {
		{"Hyatt Regency", 5500, 4.5},
		{"Radisson Blu", 4500, 4.4},
		{"Novotel", 4000, 4.3},
		{"Holiday Inn", 3500, 4.2},
		{"Crowne Plaza", 5000, 4.4},
	},
	"midrange": {
		{"Lemon Tree Hotel", 2500, 4.0},
		{"Ginger Hotel", 2000, 3.9},
		{"Treebo Hotels", 1800, 3.8},
		{"FabHotel", 1500, 3.7},
		{"Bloom Hotel", 2200, 4.0},
	},
	"budget": {
		{"OYO Flagship", 1200, 3.5},
		{"Collection O", 1000, 3.6},
		{"Zostel", 800, 4.2},
		{"GoStays", 900, 3.4},
		{"Spot ON", 1100, 3.5},
	},
}

var destinationAreas = map[string][]string{
	"goa":       {"Calangute", "Baga Beach", "Anjuna", "Candolim", "Panjim"},
	"mumbai":    {"Colaba", "Bandra", "Andheri", "Powai", "Lower Parel"},
	"delhi":     {"Connaught Place", "Aerocity", "Karol Bagh", "Paharganj", "Dwarka"},
	"bangalore": {"MG Road", "Whitefield", "Indiranagar", "Koramangala", "Electronic City"},
	"chennai":   {"T Nagar", "Anna Salai", "Egmore", "Mylapore", "OMR"},
	"jaipur":    {"City Palace Area", "MI Road", "Bani Park", "Malviya Nagar", "Vaishali Nagar"},
}

var defaultAreas = []string{"City Center", "Downtown", "Near Station", "Airport Road", "Main Street"}

var amenitiesPool = [][]string{
	{"Free WiFi", "Swimming Pool", "Gym", "Restaurant", "Room Service"},
	{"Free WiFi", "Parking", "Restaurant", "24/7 Front Desk"},
	{"Free WiFi", "Complimentary Breakfast", "AC Rooms", "TV"},
	{"WiFi", "Hot Water", "Clean Rooms", "Laundry Service"},
	{"Free WiFi", "Bar", "Spa", "Conference Room", "Airport Shuttle"},
	{"WiFi", "Rooftop Restaurant", "Gym", "Pool", "Concierge"},
}

var categoryTags = map[string]string{
	"luxury":   TagLuxuryPick,
	"premium":  TagBestValue,
	"midrange": TagFamilyFriendly,
	"budget":   TagBudgetFriendly,
}

var hotelImages = []string{
	"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
	"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=800",
	"https://images.unsplash.com/photo-1445019980597-93fa8acb246c?w=800",
	"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800",
	"https://images.unsplash.com/photo-1582719508461-905c673771fd?w=800",
	"https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800",
	"https://images.unsplash.com/photo-1564501049412-61c2a3083791?w=800",
	"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
	"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=800",
	"https://images.unsplash.com/photo-1512918728675-ed5a9ecdebfd?w=800",
	"https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800",
	"https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800",
	"https://images.unsplash.com/photo-1618773928121-c32242e63f39?w=800",
	"https://images.unsplash.com/photo-1590490360182-c33d57733427?w=800",
	"https://images.unsplash.com/photo-1455587734955-081b22074882?w=800",
}

func hotelImage(index int) string {
	return hotelImages[index%len(hotelImages)]
}

// generateHotels builds a realistic result set from the chain tables when
// no live source is configured or reachable. maxPrice is the nightly
// ceiling.
func generateHotels(rng *rand.Rand, request SearchRequest, maxPrice float64) []Hotel {
	var pool []chainEntry
	switch {
	case maxPrice > 8000:
		pool = append(pool, hotelChains["luxury"]...)
		pool = append(pool, hotelChains["luxury"]...)
		pool = append(pool, hotelChains["premium"]...)
	case maxPrice > 4000:
		pool = append(pool, hotelChains["premium"]...)
		pool = append(pool, hotelChains["premium"]...)
		pool = append(pool, hotelChains["midrange"]...)
	case maxPrice > 1500:
		pool = append(pool, hotelChains["midrange"]...)
		pool = append(pool, hotelChains["midrange"]...)
		pool = append(pool, hotelChains["budget"]...)
	default:
		pool = append(pool, hotelChains["budget"]...)
		pool = append(pool, hotelChains["budget"]...)
		pool = append(pool, hotelChains["midrange"]...)
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	areas := destinationAreas[strings.ToLower(request.Destination)]
	if areas == nil {
		areas = defaultAreas
	}

	count := min(maxResults, len(pool))
	hotels := make([]Hotel, 0, count)
	for i := 0; i < count; i++ {
		entry := pool[i]

		// A non-positive ceiling means "no ceiling": keep chain base prices.
		price := entry.basePrice * (0.8 + rng.Float64()*0.4)
		if maxPrice > 0 && price > maxPrice*1.2 {
			price = maxPrice * (0.7 + rng.Float64()*0.2)
		}

		category := "budget"
		switch {
		case price > 8000:
			category = "luxury"
		case price > 4000:
			category = "premium"
		case price > 1500:
			category = "midrange"
		}

		hotels = append(hotels, Hotel{
			Id:       fmt.Sprintf("hotel_%d", i+1),
			Name:     fmt.Sprintf("%s %s", entry.name, request.Destination),
			Price:    float64(int(price)),
			Rating:   entry.rating + (rng.Float64()*0.4 - 0.2),
			Image:    hotelImage(i),
			Location: areas[rng.Intn(len(areas))],
			Amenities: append([]string(nil),
				amenitiesPool[rng.Intn(len(amenitiesPool))]...),
			Description: fmt.Sprintf("Well-appointed %s hotel in %s, perfect for %s travelers.",
				category, request.Destination, request.TripType),
			Tag: categoryTags[category],
		})
	}

	return hotels
}
