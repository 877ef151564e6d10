package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateWithPayment inserts the booking, its passengers, debits the
	// owner's wallet by PriceCents and appends the withdrawal entry, all in
	// one transaction. The wallet is created with zero balance if absent.
	CreateWithPayment(ctx context.Context, booking *domain.Booking) error
	// CancelWithRefund flips the booking to CANCELLED, credits the wallet by
	// the original price and appends the deposit entry, all in one
	// transaction. Returns domain.ErrAlreadyCancelled without touching
	// anything if the booking is already cancelled.
	CancelWithRefund(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ConfirmPending(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	ListPendingBefore(ctx context.Context, deadline time.Time) ([]int64, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) CreateWithPayment(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// The upsert takes the row lock whether the wallet exists or not, so
	// concurrent bookings against the same wallet serialize here.
	var walletID, balance int64
	if err := tx.QueryRow(ctx, `INSERT INTO wallets (user_id, balance_cents) VALUES ($1, 0)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		RETURNING id, balance_cents`, booking.UserID).Scan(&walletID, &balance); err != nil {
		return err
	}
	if balance < booking.PriceCents {
		return domain.ErrInsufficientFunds
	}

	cmd, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats - 1, updated_at = now()
		WHERE id = $1 AND available_seats > 0`, booking.FlightID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoAvailableSeats
	}

	booking.Status = domain.BookingStatusPending
	if err := tx.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, flight_id, price_cents, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		booking.Reference, booking.UserID, booking.FlightID, booking.PriceCents, booking.Status).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		return err
	}

	for i := range booking.Passengers {
		p := &booking.Passengers[i]
		p.BookingID = booking.ID
		if err := tx.QueryRow(ctx, `INSERT INTO passengers (booking_id, name, age, passport_number)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			p.BookingID, p.Name, p.Age, p.PassportNumber).Scan(&p.ID); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance_cents = balance_cents - $1, updated_at = now() WHERE id = $2`,
		booking.PriceCents, walletID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO wallet_transactions (wallet_id, booking_id, reference, amount_cents, type, description)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		walletID, booking.ID, booking.Reference, booking.PriceCents, domain.TransactionTypeWithdrawal,
		fmt.Sprintf("Payment for booking %s, flight %d", booking.Reference, booking.FlightID)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) CancelWithRefund(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT id, reference, user_id, flight_id, price_cents, status, created_at, updated_at
		FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	if b.Status == domain.BookingStatusCancelled {
		return b, domain.ErrAlreadyCancelled
	}

	if err := tx.QueryRow(ctx, `UPDATE bookings SET status = $1, updated_at = now() WHERE id = $2 RETURNING updated_at`,
		domain.BookingStatusCancelled, bookingID).Scan(&b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatusCancelled

	var walletID int64
	if err := tx.QueryRow(ctx, `UPDATE wallets SET balance_cents = balance_cents + $1, updated_at = now()
		WHERE user_id = $2 RETURNING id`, b.PriceCents, b.UserID).Scan(&walletID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO wallet_transactions (wallet_id, booking_id, reference, amount_cents, type, description)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		walletID, b.ID, b.Reference, b.PriceCents, domain.TransactionTypeDeposit,
		fmt.Sprintf("Refund for booking %s, flight %d", b.Reference, b.FlightID)); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `UPDATE flights SET available_seats = available_seats + 1, updated_at = now() WHERE id = $1`, b.FlightID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ConfirmPending(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
		RETURNING id, reference, user_id, flight_id, price_cents, status, created_at, updated_at`,
		domain.BookingStatusConfirmed, bookingID, domain.BookingStatusPending)
	b, err := scanBooking(row)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Nothing matched: missing booking or wrong state.
	if _, err := r.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	return nil, domain.ErrBookingNotPending
}

func (r *PGBookingRepository) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT id, reference, user_id, flight_id, price_cents, status, created_at, updated_at
		FROM bookings WHERE id = $1`, bookingID)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, booking_id, name, age, passport_number FROM passengers WHERE booking_id = $1 ORDER BY id`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Name, &p.Age, &p.PassportNumber); err != nil {
			return nil, err
		}
		b.Passengers = append(b.Passengers, p)
	}
	return b, rows.Err()
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, flight_id, price_cents, status, created_at, updated_at
		FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, reference, user_id, flight_id, price_cents, status, created_at, updated_at
		FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListPendingBefore(ctx context.Context, deadline time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM bookings WHERE status = $1 AND created_at <= $2`,
		domain.BookingStatusPending, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.FlightID, &b.PriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.FlightID, &b.PriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
