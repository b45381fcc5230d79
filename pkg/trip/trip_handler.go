package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/internal/rest"
	"github.com/tripforge/tripforge/pkg/budget"
	"github.com/tripforge/tripforge/pkg/hotel"
	"github.com/tripforge/tripforge/pkg/itinerary"
	"github.com/tripforge/tripforge/pkg/transport"
	"github.com/tripforge/tripforge/pkg/user"
)

type SavedTripDTO struct {
	Id                 string                `json:"id,omitempty"`
	TripDetails        budget.TripRequestDTO `json:"trip_details"`
	Budget             *budget.AnalysisDTO   `json:"budget,omitempty"`
	Hotel              *hotel.HotelDTO       `json:"hotel,omitempty"`
	Transport          *transport.ModeDTO    `json:"transport,omitempty"`
	Itinerary          *itinerary.PlanDTO    `json:"itinerary,omitempty"`
	TotalEstimatedCost float64               `json:"total_estimated_cost"`
	CreatedAt          string                `json:"created_at,omitempty"`
	UpdatedAt          string                `json:"updated_at,omitempty"`
}

type Handler struct {
	tripService Service
}

func NewHandler(tripService Service) *Handler {
	return &Handler{tripService}
}

// Save godoc
// @Summary Save a planned trip
// @Description Store the finished plan with the selected hotel, transport, and itinerary
// @Tags Trips
// @Accept json
// @Produce json
// @Param trip body SavedTripDTO true "Trip plan"
// @Success 201 {object} SavedTripDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 403 {string} string "User not found"
// @Router /api/trips [post]
// @Security XUserId
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	log.Debug("Saving trip")
	w.Header().Set("Content-Type", "application/json")

	trip, ok := h.decodeTrip(w, r)
	if !ok {
		return
	}

	stored, err := h.tripService.Save(r.Context(), trip)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TripToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// List godoc
// @Summary List saved trips
// @Description Get all trips saved by the current user, newest first
// @Tags Trips
// @Produce json
// @Success 200 {array} SavedTripDTO
// @Failure 403 {string} string "User not found"
// @Router /api/trips [get]
// @Security XUserId
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log.Debug("Listing trips")
	w.Header().Set("Content-Type", "application/json")

	trips, err := h.tripService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	tripsDTO := make([]SavedTripDTO, 0, len(trips))
	for _, trip := range trips {
		tripsDTO = append(tripsDTO, TripToDTO(trip))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tripsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Get godoc
// @Summary Get a saved trip
// @Description Get one saved trip by its id
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} SavedTripDTO
// @Failure 403 {string} string "User not found"
// @Failure 404 {string} string "Trip not found"
// @Router /api/trips/{tripId} [get]
// @Security XUserId
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log.Debug("Getting trip")
	w.Header().Set("Content-Type", "application/json")
	tripId := mux.Vars(r)["tripId"]

	trip, err := h.tripService.Get(r.Context(), tripId)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TripToDTO(trip)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Update godoc
// @Summary Update a saved trip
// @Description Replace a saved trip's plan by its id
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param trip body SavedTripDTO true "Trip plan"
// @Success 200 {object} SavedTripDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 403 {string} string "User not found"
// @Failure 404 {string} string "Trip not found"
// @Router /api/trips/{tripId} [put]
// @Security XUserId
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log.Debug("Updating trip")
	w.Header().Set("Content-Type", "application/json")
	tripId := mux.Vars(r)["tripId"]

	trip, ok := h.decodeTrip(w, r)
	if !ok {
		return
	}
	trip.Id = tripId

	updated, err := h.tripService.Update(r.Context(), trip)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TripToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Delete godoc
// @Summary Delete a saved trip
// @Description Delete one saved trip by its id
// @Tags Trips
// @Param tripId path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 403 {string} string "User not found"
// @Failure 404 {string} string "Trip not found"
// @Router /api/trips/{tripId} [delete]
// @Security XUserId
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting trip")
	tripId := mux.Vars(r)["tripId"]

	if _, err := h.tripService.Delete(r.Context(), tripId); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeTrip(w http.ResponseWriter, r *http.Request) (SavedTrip, bool) {
	var tripDTO SavedTripDTO
	if err := json.NewDecoder(r.Body).Decode(&tripDTO); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return SavedTrip{}, false
	}

	trip, err := DTOToTrip(tripDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: err.Error(),
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return SavedTrip{}, false
	}
	return trip, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrNoUser):
		http.Error(w, "User not found", http.StatusForbidden)
	case errors.Is(err, ErrTripNotFound):
		http.Error(w, "Trip not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func TripToDTO(trip SavedTrip) SavedTripDTO {
	dto := SavedTripDTO{
		Id:                 trip.Id,
		TripDetails:        budget.TripRequestToDTO(trip.TripDetails),
		TotalEstimatedCost: trip.TotalEstimatedCost,
	}
	if !trip.CreatedAt.IsZero() {
		dto.CreatedAt = trip.CreatedAt.Format(time.RFC3339)
	}
	if !trip.UpdatedAt.IsZero() {
		dto.UpdatedAt = trip.UpdatedAt.Format(time.RFC3339)
	}
	if trip.Budget != nil {
		analysis := budget.AnalysisToDTO(*trip.Budget)
		dto.Budget = &analysis
	}
	if trip.Hotel != nil {
		h := hotel.HotelToDTO(*trip.Hotel)
		dto.Hotel = &h
	}
	if trip.Transport != nil {
		mode := transport.ModeToDTO(*trip.Transport)
		dto.Transport = &mode
	}
	if trip.Itinerary != nil {
		plan := itinerary.PlanToDTO(*trip.Itinerary)
		dto.Itinerary = &plan
	}
	return dto
}

func DTOToTrip(dto SavedTripDTO) (SavedTrip, error) {
	details, err := budget.DTOToTripRequest(dto.TripDetails)
	if err != nil {
		return SavedTrip{}, err
	}

	trip := SavedTrip{
		Id:                 dto.Id,
		TripDetails:        details,
		TotalEstimatedCost: dto.TotalEstimatedCost,
	}
	if dto.Budget != nil {
		analysis := budget.DTOToAnalysis(*dto.Budget)
		trip.Budget = &analysis
	}
	if dto.Hotel != nil {
		h := hotel.DTOToHotel(*dto.Hotel)
		trip.Hotel = &h
	}
	if dto.Transport != nil {
		mode := transport.DTOToMode(*dto.Transport)
		trip.Transport = &mode
	}
	if dto.Itinerary != nil {
		plan := itinerary.DTOToPlan(*dto.Itinerary)
		trip.Itinerary = &plan
	}
	return trip, nil
}
