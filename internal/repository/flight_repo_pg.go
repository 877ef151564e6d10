package repository

import (
	"context"
	"errors"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightColumns = `id, name, airplane_id, source_airport_id, destination_airport_id, departure_time, arrival_time, status, total_seats, available_seats, price_cents, created_at, updated_at`

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (name, airplane_id, source_airport_id, destination_airport_id, departure_time, arrival_time, status, total_seats, available_seats, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9)
		RETURNING id, available_seats, created_at, updated_at`,
		flight.Name, flight.AirplaneID, flight.SourceAirportID, flight.DestinationAirportID,
		flight.DepartureTime, flight.ArrivalTime, flight.Status, flight.TotalSeats, flight.PriceCents).
		Scan(&flight.ID, &flight.AvailableSeats, &flight.CreatedAt, &flight.UpdatedAt)
}

func (r *PGFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	err := r.db.QueryRow(ctx, `UPDATE flights SET name=$1, airplane_id=$2, source_airport_id=$3, destination_airport_id=$4,
		departure_time=$5, arrival_time=$6, status=$7, price_cents=$8, updated_at=now()
		WHERE id=$9 RETURNING updated_at`,
		flight.Name, flight.AirplaneID, flight.SourceAirportID, flight.DestinationAirportID,
		flight.DepartureTime, flight.ArrivalTime, flight.Status, flight.PriceCents, flight.ID).
		Scan(&flight.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrFlightNotFound
	}
	return err
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.Name, &f.AirplaneID, &f.SourceAirportID, &f.DestinationAirportID,
		&f.DepartureTime, &f.ArrivalTime, &f.Status, &f.TotalSeats, &f.AvailableSeats,
		&f.PriceCents, &f.CreatedAt, &f.UpdatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
