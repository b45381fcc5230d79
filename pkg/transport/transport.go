package transport

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Notes shown next to each transport mode in the wizard.
const (
	NoteFastest         = "Fastest"
	NoteMostComfortable = "Most Comfortable"
	NoteMostAffordable  = "Most Affordable"
	NoteMostFlexible    = "Most Flexible"
)

// Option is one concrete departure offered by a carrier.
type Option struct {
	Carrier   string
	Time      string
	Price     float64
	Duration  string
	ClassType string
}

// Mode groups the options for one way of travelling the route.
type Mode struct {
	Mode       string
	Icon       string
	Duration   string
	PriceRange string
	Note       string
	Options    []Option
}

type SearchRequest struct {
	Origin           string
	Destination      string
	TravelDate       time.Time
	Adults           int
	Children         int
	BudgetAllocation float64
}

type SearchResult struct {
	Modes []Mode
}

func sortByPrice(options []Option) {
	sort.Slice(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
}

// priceRange renders "₹min - ₹max" over the options.
func priceRange(options []Option) string {
	if len(options) == 0 {
		return ""
	}
	minPrice, maxPrice := options[0].Price, options[0].Price
	for _, opt := range options[1:] {
		if opt.Price < minPrice {
			minPrice = opt.Price
		}
		if opt.Price > maxPrice {
			maxPrice = opt.Price
		}
	}
	return fmt.Sprintf("₹%s - ₹%s", formatINR(minPrice), formatINR(maxPrice))
}

func formatINR(price float64) string {
	digits := strconv.Itoa(int(price))
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ",")
	if negative {
		return "-" + formatted
	}
	return formatted
}

// sanitizePrice extracts a single numeric price from model output, which
// can contain currency markers, grouping commas, or a range. Ranges
// collapse to their lower bound.
func sanitizePrice(raw string) (float64, error) {
	price := strings.TrimSpace(raw)
	price = strings.ReplaceAll(price, "INR", "")
	price = strings.ReplaceAll(price, "₹", "")
	price = strings.ReplaceAll(price, ",", "")
	price = strings.TrimSpace(price)

	if idx := strings.Index(price, "-"); idx > 0 {
		price = strings.TrimSpace(price[:idx])
	}

	value, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse price %q: %w", raw, err)
	}
	return value, nil
}
