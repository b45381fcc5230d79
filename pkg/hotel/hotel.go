package hotel

import "time"

// Tags surfaced on hotel cards in the wizard.
const (
	TagLuxuryPick     = "Luxury Pick"
	TagBestValue      = "Best Value"
	TagFamilyFriendly = "Family Friendly"
	TagBudgetFriendly = "Budget Friendly"
)

type Hotel struct {
	Id          string
	Name        string
	Price       float64
	Rating      float64
	Image       string
	Location    string
	Amenities   []string
	Description string
	Tag         string
}

type SearchRequest struct {
	Destination string
	CheckIn     time.Time
	CheckOut    time.Time
	Adults      int
	Children    int
	MaxPrice    float64
	TripType    string
}

// Nights returns the stay length, never less than one night.
func (r SearchRequest) Nights() int {
	nights := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

type SearchResult struct {
	Hotels     []Hotel
	TotalCount int
}

// tagForPrice maps a nightly price to the tag shown on the card.
func tagForPrice(pricePerNight float64, familyFriendly bool) string {
	switch {
	case pricePerNight > 8000:
		return TagLuxuryPick
	case pricePerNight < 1500:
		return TagBudgetFriendly
	case familyFriendly:
		return TagFamilyFriendly
	default:
		return TagBestValue
	}
}
