package hotel

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/rest"
)

type SearchRequestDTO struct {
	Destination string  `json:"destination"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	MaxPrice    float64 `json:"max_price"`
	TripType    string  `json:"trip_type"`
}

type HotelDTO struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Location    string   `json:"location"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Tag         string   `json:"tag"`
}

type SearchResultDTO struct {
	Hotels     []HotelDTO `json:"hotels"`
	TotalCount int        `json:"total_count"`
}

type Handler struct {
	hotelService Service
}

func NewHandler(hotelService Service) *Handler {
	return &Handler{hotelService}
}

// Search godoc
// @Summary Search hotels
// @Description Search hotels for a stay, constrained by the allocated accommodation budget
// @Tags Hotels
// @Accept json
// @Produce json
// @Param request body SearchRequestDTO true "Search criteria"
// @Success 200 {object} SearchResultDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/hotels/search [post]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log.Debug("Searching hotels")
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

	result, err := h.hotelService.Search(r.Context(), request)
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
	checkIn, err := time.Parse("2006-01-02", dto.CheckIn)
	if err != nil {
		return SearchRequest{}, errInvalidDate("check_in")
	}
	checkOut, err := time.Parse("2006-01-02", dto.CheckOut)
	if err != nil {
		return SearchRequest{}, errInvalidDate("check_out")
	}

	adults := dto.Adults
	if adults == 0 {
		adults = 2
	}

	return SearchRequest{
		Destination: dto.Destination,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      adults,
		Children:    dto.Children,
		MaxPrice:    dto.MaxPrice,
		TripType:    dto.TripType,
	}, nil
}

func searchResultToDTO(result SearchResult) SearchResultDTO {
	hotels := make([]HotelDTO, 0, len(result.Hotels))
	for _, h := range result.Hotels {
		hotels = append(hotels, HotelToDTO(h))
	}
	return SearchResultDTO{Hotels: hotels, TotalCount: result.TotalCount}
}

func HotelToDTO(h Hotel) HotelDTO {
	return HotelDTO{
		Id:          h.Id,
		Name:        h.Name,
		Price:       h.Price,
		Rating:      h.Rating,
		Image:       h.Image,
		Location:    h.Location,
		Amenities:   h.Amenities,
		Description: h.Description,
		Tag:         h.Tag,
	}
}

func DTOToHotel(dto HotelDTO) Hotel {
	return Hotel{
		Id:          dto.Id,
		Name:        dto.Name,
		Price:       dto.Price,
		Rating:      dto.Rating,
		Image:       dto.Image,
		Location:    dto.Location,
		Amenities:   dto.Amenities,
		Description: dto.Description,
		Tag:         dto.Tag,
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
