package repository

import (
	"context"
	"errors"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, airplane *domain.Airplane) error
	Update(ctx context.Context, airplane *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, `SELECT id, tail_number, model, total_seats, economy_seats, business_seats, first_class_seats FROM airplanes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.TailNumber, &a.Model, &a.TotalSeats, &a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT id, tail_number, model, total_seats, economy_seats, business_seats, first_class_seats FROM airplanes WHERE id = $1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.TailNumber, &a.Model, &a.TotalSeats, &a.EconomySeats, &a.BusinessSeats, &a.FirstClassSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirplaneNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	return r.db.QueryRow(ctx, `INSERT INTO airplanes (tail_number, model, total_seats, economy_seats, business_seats, first_class_seats)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		airplane.TailNumber, airplane.Model, airplane.TotalSeats, airplane.EconomySeats, airplane.BusinessSeats, airplane.FirstClassSeats).
		Scan(&airplane.ID)
}

func (r *PGAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airplanes SET tail_number=$1, model=$2, total_seats=$3, economy_seats=$4, business_seats=$5, first_class_seats=$6 WHERE id=$7`,
		airplane.TailNumber, airplane.Model, airplane.TotalSeats, airplane.EconomySeats, airplane.BusinessSeats, airplane.FirstClassSeats, airplane.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirplaneNotFound
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirplaneNotFound
	}
	return nil
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, city, country, code FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.Code); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, city, country, code FROM airports WHERE id = $1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.City, &a.Country, &a.Code); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirportNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return r.db.QueryRow(ctx, `INSERT INTO airports (name, city, country, code) VALUES ($1, $2, $3, $4) RETURNING id`,
		airport.Name, airport.City, airport.Country, airport.Code).Scan(&airport.ID)
}

func (r *PGAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	cmd, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, city=$2, country=$3, code=$4 WHERE id=$5`,
		airport.Name, airport.City, airport.Country, airport.Code, airport.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrAirportNotFound
	}
	return nil
}

var (
	_ AirplaneRepository = (*PGAirplaneRepository)(nil)
	_ AirportRepository  = (*PGAirportRepository)(nil)
)
