package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/tripforge/tripforge/pkg/budget"
	"github.com/tripforge/tripforge/pkg/hotel"
	"github.com/tripforge/tripforge/pkg/itinerary"
	"github.com/tripforge/tripforge/pkg/transport"
)

type Repository interface {
	Store(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error)
	Get(ctx context.Context, userId string, tripId string) (SavedTrip, error)
	List(ctx context.Context, userId string) ([]SavedTrip, error)
	Update(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error)
	Delete(ctx context.Context, userId string, tripId string) (bool, error)
}

type RepositoryImpl struct {
	db *pgxpool.Pool
}

func NewTripRepo(db *pgxpool.Pool) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// snapshotRecord is the JSONB shape of a saved trip. It mirrors the wire
// DTOs so a stored trip reads back exactly as it was submitted.
type snapshotRecord struct {
	TripDetails budget.TripRequestDTO `json:"trip_details"`
	Budget      *budget.AnalysisDTO   `json:"budget,omitempty"`
	Hotel       *hotel.HotelDTO       `json:"hotel,omitempty"`
	Transport   *transport.ModeDTO    `json:"transport,omitempty"`
	Itinerary   *itinerary.PlanDTO    `json:"itinerary,omitempty"`
}

func toSnapshot(trip SavedTrip) snapshotRecord {
	record := snapshotRecord{
		TripDetails: budget.TripRequestToDTO(trip.TripDetails),
	}
	if trip.Budget != nil {
		analysis := budget.AnalysisToDTO(*trip.Budget)
		record.Budget = &analysis
	}
	if trip.Hotel != nil {
		h := hotel.HotelToDTO(*trip.Hotel)
		record.Hotel = &h
	}
	if trip.Transport != nil {
		mode := transport.ModeToDTO(*trip.Transport)
		record.Transport = &mode
	}
	if trip.Itinerary != nil {
		plan := itinerary.PlanToDTO(*trip.Itinerary)
		record.Itinerary = &plan
	}
	return record
}

func fromSnapshot(record snapshotRecord) (SavedTrip, error) {
	details, err := budget.DTOToTripRequest(record.TripDetails)
	if err != nil {
		return SavedTrip{}, fmt.Errorf("invalid stored trip details: %w", err)
	}
	trip := SavedTrip{TripDetails: details}
	if record.Budget != nil {
		analysis := budget.DTOToAnalysis(*record.Budget)
		trip.Budget = &analysis
	}
	if record.Hotel != nil {
		h := hotel.DTOToHotel(*record.Hotel)
		trip.Hotel = &h
	}
	if record.Transport != nil {
		mode := transport.DTOToMode(*record.Transport)
		trip.Transport = &mode
	}
	if record.Itinerary != nil {
		plan := itinerary.DTOToPlan(*record.Itinerary)
		trip.Itinerary = &plan
	}
	return trip, nil
}

func (r RepositoryImpl) Store(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error) {
	snapshot, err := json.Marshal(toSnapshot(trip))
	if err != nil {
		err := fmt.Errorf("could not serialize trip snapshot: %w", err)
		log.Error(err)
		return SavedTrip{}, err
	}

	query := `INSERT INTO trip (
					id,
					user_id,
					destination,
					start_date,
					end_date,
					total_estimated_cost,
					snapshot,
					created,
					updated
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.Exec(ctx, query,
		trip.Id,
		userId,
		trip.TripDetails.Destination,
		trip.TripDetails.StartDate,
		trip.TripDetails.EndDate,
		trip.TotalEstimatedCost,
		snapshot,
		trip.CreatedAt,
		trip.UpdatedAt,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return SavedTrip{}, err
	}

	trip.UserId = userId
	return trip, nil
}

func (r RepositoryImpl) Get(ctx context.Context, userId string, tripId string) (SavedTrip, error) {
	query := `SELECT id, total_estimated_cost, snapshot, created, updated
				FROM trip WHERE id = $1 AND user_id = $2`

	var (
		id        string
		totalCost float64
		snapshot  []byte
		created   time.Time
		updated   time.Time
	)
	err := r.db.QueryRow(ctx, query, tripId, userId).
		Scan(&id, &totalCost, &snapshot, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SavedTrip{}, ErrTripNotFound
		}
		err := fmt.Errorf("error scanning row: %w", err)
		log.Error(err)
		return SavedTrip{}, err
	}

	return r.hydrate(id, userId, totalCost, snapshot, created, updated)
}

func (r RepositoryImpl) List(ctx context.Context, userId string) ([]SavedTrip, error) {
	query := `SELECT id, total_estimated_cost, snapshot, created, updated
				FROM trip WHERE user_id = $1 ORDER BY created DESC`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query trips: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var trips []SavedTrip
	for rows.Next() {
		var (
			id        string
			totalCost float64
			snapshot  []byte
			created   time.Time
			updated   time.Time
		)
		if err := rows.Scan(&id, &totalCost, &snapshot, &created, &updated); err != nil {
			err := fmt.Errorf("error scanning row: %w", err)
			log.Error(err)
			return nil, err
		}
		trip, err := r.hydrate(id, userId, totalCost, snapshot, created, updated)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return trips, nil
}

func (r RepositoryImpl) Update(ctx context.Context, userId string, trip SavedTrip) (SavedTrip, error) {
	snapshot, err := json.Marshal(toSnapshot(trip))
	if err != nil {
		err := fmt.Errorf("could not serialize trip snapshot: %w", err)
		log.Error(err)
		return SavedTrip{}, err
	}

	query := `UPDATE trip SET
					destination = $1,
					start_date = $2,
					end_date = $3,
					total_estimated_cost = $4,
					snapshot = $5,
					updated = $6
				WHERE id = $7 AND user_id = $8`
	result, err := r.db.Exec(ctx, query,
		trip.TripDetails.Destination,
		trip.TripDetails.StartDate,
		trip.TripDetails.EndDate,
		trip.TotalEstimatedCost,
		snapshot,
		trip.UpdatedAt,
		trip.Id,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return SavedTrip{}, err
	}
	if result.RowsAffected() == 0 {
		return SavedTrip{}, ErrTripNotFound
	}

	trip.UserId = userId
	return trip, nil
}

func (r RepositoryImpl) Delete(ctx context.Context, userId string, tripId string) (bool, error) {
	query := "DELETE FROM trip WHERE id = $1 AND user_id = $2"
	result, err := r.db.Exec(ctx, query, tripId, userId)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

func (r RepositoryImpl) hydrate(id, userId string, totalCost float64, snapshot []byte, created, updated time.Time) (SavedTrip, error) {
	var record snapshotRecord
	if err := json.Unmarshal(snapshot, &record); err != nil {
		err := fmt.Errorf("could not parse trip snapshot %s: %w", id, err)
		log.Error(err)
		return SavedTrip{}, err
	}
	trip, err := fromSnapshot(record)
	if err != nil {
		log.Error(err)
		return SavedTrip{}, err
	}
	trip.Id = id
	trip.UserId = userId
	trip.TotalEstimatedCost = totalCost
	trip.CreatedAt = created
	trip.UpdatedAt = updated
	return trip, nil
}
