package itinerary

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/rest"
)

type RequestDTO struct {
	Destination      string   `json:"destination"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	TripType         string   `json:"trip_type"`
	BudgetAllocation float64  `json:"budget_allocation"`
	Interests        []string `json:"interests"`
}

type ActivityDTO struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Time        string  `json:"time"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

type DayPlanDTO struct {
	Day        int           `json:"day"`
	Date       string        `json:"date"`
	Activities []ActivityDTO `json:"activities"`
	TotalCost  float64       `json:"total_cost"`
}

type PlanDTO struct {
	Itinerary           []DayPlanDTO `json:"itinerary"`
	TotalActivitiesCost float64      `json:"total_activities_cost"`
	Recommendations     string       `json:"recommendations"`
}

type Handler struct {
	itineraryService Service
}

func NewHandler(itineraryService Service) *Handler {
	return &Handler{itineraryService}
}

// Generate godoc
// @Summary Generate itinerary
// @Description Generate a day-by-day activity plan for the trip
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body RequestDTO true "Trip details and interests"
// @Success 200 {object} PlanDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/itinerary/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log.Debug("Generating itinerary")
	w.Header().Set("Content-Type", "application/json")

	var requestDTO RequestDTO
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

	request, err := dtoToRequest(requestDTO)
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

	plan, err := h.itineraryService.Generate(r.Context(), request)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(PlanToDTO(plan)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func dtoToRequest(dto RequestDTO) (Request, error) {
	startDate, err := time.Parse("2006-01-02", dto.StartDate)
	if err != nil {
		return Request{}, errInvalidDate("start_date")
	}
	endDate, err := time.Parse("2006-01-02", dto.EndDate)
	if err != nil {
		return Request{}, errInvalidDate("end_date")
	}
	if endDate.Before(startDate) {
		return Request{}, errEndBeforeStart
	}

	return Request{
		Destination:      dto.Destination,
		StartDate:        startDate,
		EndDate:          endDate,
		TripType:         dto.TripType,
		BudgetAllocation: dto.BudgetAllocation,
		Interests:        dto.Interests,
	}, nil
}

func PlanToDTO(plan Plan) PlanDTO {
	days := make([]DayPlanDTO, 0, len(plan.Itinerary))
	for _, day := range plan.Itinerary {
		activities := make([]ActivityDTO, 0, len(day.Activities))
		for _, activity := range day.Activities {
			activities = append(activities, ActivityDTO(activity))
		}
		days = append(days, DayPlanDTO{
			Day:        day.Day,
			Date:       day.Date,
			Activities: activities,
			TotalCost:  day.TotalCost,
		})
	}
	return PlanDTO{
		Itinerary:           days,
		TotalActivitiesCost: plan.TotalActivitiesCost,
		Recommendations:     plan.Recommendations,
	}
}

func DTOToPlan(dto PlanDTO) Plan {
	days := make([]DayPlan, 0, len(dto.Itinerary))
	for _, day := range dto.Itinerary {
		activities := make([]Activity, 0, len(day.Activities))
		for _, activity := range day.Activities {
			activities = append(activities, Activity(activity))
		}
		days = append(days, DayPlan{
			Day:        day.Day,
			Date:       day.Date,
			Activities: activities,
			TotalCost:  day.TotalCost,
		})
	}
	return Plan{
		Itinerary:           days,
		TotalActivitiesCost: dto.TotalActivitiesCost,
		Recommendations:     dto.Recommendations,
	}
}
