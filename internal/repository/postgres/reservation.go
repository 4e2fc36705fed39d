package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

const reservationColumns = `id, user_id, book_id, reservation_date, expiration_date, status`

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, user_id, book_id, reservation_date, expiration_date, status)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, res.ID, res.UserID, res.BookID, res.ReservationDate, res.ExpirationDate, res.Status)
	return err
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&res.ID, &res.UserID, &res.BookID, &res.ReservationDate, &res.ExpirationDate, &res.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET expiration_date=$1, status=$2 WHERE id=$3`
	result, err := r.db.ExecContext(ctx, query, res.ExpirationDate, res.Status, res.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("reservation %s: %w", res.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY reservation_date DESC`)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY reservation_date DESC`, userID)
}

func (r *reservationRepository) ListByBook(ctx context.Context, bookID string) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE book_id = $1 ORDER BY reservation_date DESC`, bookID)
}

func (r *reservationRepository) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE status = $1 ORDER BY reservation_date DESC`, status)
}

func (r *reservationRepository) ListOpen(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE status IN ($1, $2) ORDER BY expiration_date`,
		domain.ReservationStatusPending, domain.ReservationStatusConfirmed)
}

func (r *reservationRepository) ListExpired(ctx context.Context, asOf time.Time) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE expiration_date < $1 ORDER BY expiration_date`, asOf)
}

func (r *reservationRepository) ListReservedBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE reservation_date BETWEEN $1 AND $2 ORDER BY reservation_date`, start, end)
}

func (r *reservationRepository) CountActiveByUser(ctx context.Context, userID string, asOf time.Time) (int, error) {
	var count int
	query := `SELECT count(*) FROM reservations WHERE user_id = $1 AND status IN ($2, $3) AND expiration_date >= $4`
	err := r.db.QueryRowContext(ctx, query, userID, domain.ReservationStatusPending, domain.ReservationStatusConfirmed, asOf).Scan(&count)
	return count, err
}

func (r *reservationRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.BookID, &res.ReservationDate, &res.ExpirationDate, &res.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
