package budget

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/rest"
)

// TripRequestDTO is the wire shape shared with the SPA. Dates are
// YYYY-MM-DD strings.
type TripRequestDTO struct {
	TripType    string  `json:"trip_type"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
}

type BreakdownDTO struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

type AnalysisDTO struct {
	Total           float64        `json:"total"`
	Breakdown       []BreakdownDTO `json:"breakdown"`
	Recommendations string         `json:"recommendations"`
}

type Handler struct {
	budgetService Service
}

func NewHandler(budgetService Service) *Handler {
	return &Handler{budgetService}
}

// Analyze godoc
// @Summary Analyze trip budget
// @Description Split the total trip budget into category allocations with recommendations
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body TripRequestDTO true "Trip details"
// @Success 200 {object} AnalysisDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/budget/analyze [post]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	log.Debug("Analyzing trip budget")
	w.Header().Set("Content-Type", "application/json")

	var requestDTO TripRequestDTO
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

	request, err := DTOToTripRequest(requestDTO)
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

	analysis, err := h.budgetService.Allocate(r.Context(), request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AnalysisToDTO(analysis)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func AnalysisToDTO(analysis Analysis) AnalysisDTO {
	breakdown := make([]BreakdownDTO, 0, len(analysis.Breakdown))
	for _, b := range analysis.Breakdown {
		breakdown = append(breakdown, BreakdownDTO{
			Name:       b.Name,
			Value:      b.Value,
			Percentage: b.Percentage,
		})
	}
	return AnalysisDTO{
		Total:           analysis.Total,
		Breakdown:       breakdown,
		Recommendations: analysis.Recommendations,
	}
}

func DTOToAnalysis(dto AnalysisDTO) Analysis {
	breakdown := make([]Breakdown, 0, len(dto.Breakdown))
	for _, b := range dto.Breakdown {
		breakdown = append(breakdown, Breakdown{
			Name:       b.Name,
			Value:      b.Value,
			Percentage: b.Percentage,
		})
	}
	return Analysis{
		Total:           dto.Total,
		Breakdown:       breakdown,
		Recommendations: dto.Recommendations,
	}
}

func DTOToTripRequest(dto TripRequestDTO) (TripRequest, error) {
	startDate, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		return TripRequest{}, errInvalidDate("start_date")
	}
	endDate, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		return TripRequest{}, errInvalidDate("end_date")
	}
	if endDate.Before(startDate) {
		return TripRequest{}, errEndBeforeStart
	}
	if dto.Budget <= 0 {
		return TripRequest{}, errBudgetNotPositive
	}

	adults := dto.Adults
	if adults == 0 {
		adults = 2
	}

	return TripRequest{
		TripType:    dto.TripType,
		Origin:      dto.Origin,
		Destination: dto.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      dto.Budget,
		Adults:      adults,
		Children:    dto.Children,
	}, nil
}

func TripRequestToDTO(request TripRequest) TripRequestDTO {
	return TripRequestDTO{
		TripType:    request.TripType,
		Origin:      request.Origin,
		Destination: request.Destination,
		StartDate:   request.StartDate.Format("2006-01-02"),
		EndDate:     request.EndDate.Format("2006-01-02"),
		Budget:      request.Budget,
		Adults:      request.Adults,
		Children:    request.Children,
	}
}
