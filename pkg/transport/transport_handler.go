package transport

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/rest"
)

type SearchRequestDTO struct {
	Origin           string  `json:"origin"`
	Destination      string  `json:"destination"`
	TravelDate       string  `json:"travel_date"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	BudgetAllocation float64 `json:"budget_allocation"`
}

type OptionDTO struct {
	Carrier   string  `json:"carrier"`
	Time      string  `json:"time"`
	Price     float64 `json:"price"`
	Duration  string  `json:"duration"`
	ClassType string  `json:"class_type"`
}

type ModeDTO struct {
	Mode       string      `json:"mode"`
	Icon       string      `json:"icon"`
	Duration   string      `json:"duration"`
	PriceRange string      `json:"price_range"`
	Note       string      `json:"note"`
	Options    []OptionDTO `json:"options"`
}

type SearchResultDTO struct {
	TransportModes []ModeDTO `json:"transport_modes"`
}

type Handler struct {
	transportService Service
}

func NewHandler(transportService Service) *Handler {
	return &Handler{transportService}
}

// Search godoc
// @Summary Search transport options
// @Description Search flights, trains, buses, and cabs between two cities
// @Tags Transport
// @Accept json
// @Produce json
// @Param request body SearchRequestDTO true "Route and travel details"
// @Success 200 {object} SearchResultDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/transport/search [post]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log.Debug("Searching transport options")
	w.Header().Set("Content-Type", "application/json")

	var requestDTO SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&requestDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	request, err := dtoToSearchRequest(requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	result, err := h.transportService.Search(r.Context(), request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(searchResultToDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func dtoToSearchRequest(dto SearchRequestDTO) (SearchRequest, error) {
	var travelDate time.Time
	if dto.TravelDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.TravelDate)
		if err != nil {
			return SearchRequest{}, errInvalidDate("travel_date")
		}
		travelDate = parsed
	}

	adults := dto.Adults
	if adults == 0 {
		adults = 2
	}

	return SearchRequest{
		Origin:           dto.Origin,
		Destination:      dto.Destination,
		TravelDate:       travelDate,
		Adults:           adults,
		Children:         dto.Children,
		BudgetAllocation: dto.BudgetAllocation,
	}, nil
}

func searchResultToDTO(result SearchResult) SearchResultDTO {
	modes := make([]ModeDTO, 0, len(result.Modes))
	for _, m := range result.Modes {
		modes = append(modes, ModeToDTO(m))
	}
	return SearchResultDTO{TransportModes: modes}
}

func ModeToDTO(m Mode) ModeDTO {
	options := make([]OptionDTO, 0, len(m.Options))
	for _, o := range m.Options {
		options = append(options, OptionDTO{
			Carrier:   o.Carrier,
			Time:      o.Time,
			Price:     o.Price,
			Duration:  o.Duration,
			ClassType: o.ClassType,
		})
	}
	return ModeDTO{
		Mode:       m.Mode,
		Icon:       m.Icon,
		Duration:   m.Duration,
		PriceRange: m.PriceRange,
		Note:       m.Note,
		Options:    options,
	}
}

func DTOToMode(dto ModeDTO) Mode {
	options := make([]Option, 0, len(dto.Options))
	for _, o := range dto.Options {
		options = append(options, Option{
			Carrier:   o.Carrier,
			Time:      o.Time,
			Price:     o.Price,
			Duration:  o.Duration,
			ClassType: o.ClassType,
		})
	}
	return Mode{
		Mode:       dto.Mode,
		Icon:       dto.Icon,
		Duration:   dto.Duration,
		PriceRange: dto.PriceRange,
		Note:       dto.Note,
		Options:    options,
	}
}

type invalidDateError struct {
	field string
}

func (e invalidDateError) Error() string {
	return e.field + " must be a YYYY-MM-DD date"
}

func errInvalidDate(field string) error {
	return invalidDateError{field: field}
}
