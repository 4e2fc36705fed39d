package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusFulfilled ReservationStatus = "FULFILLED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
)

// DefaultReservationDays is the hold period granted when no custom period
// is requested.
const DefaultReservationDays = 3

// Reservation is a hold placed by a user on a claimed book.
//
// State machine: PENDING -> CONFIRMED -> FULFILLED, with CANCELLED reachable
// from PENDING or CONFIRMED at any time and EXPIRED reachable from PENDING
// or CONFIRMED once the expiration date passes. FULFILLED, CANCELLED and
// EXPIRED are terminal.
type Reservation struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	BookID          string            `json:"book_id"`
	ReservationDate time.Time         `json:"reservation_date"`
	ExpirationDate  time.Time         `json:"expiration_date"`
	Status          ReservationStatus `json:"status"`
}

// NewReservation places a PENDING hold expiring reservationDays after the
// reservation date.
func NewReservation(id, userID, bookID string, reservationDate time.Time, reservationDays int) *Reservation {
	reservationDate = Date(reservationDate)
	return &Reservation{
		ID:              id,
		UserID:          userID,
		BookID:          bookID,
		ReservationDate: reservationDate,
		ExpirationDate:  reservationDate.AddDate(0, 0, reservationDays),
		Status:          ReservationStatusPending,
	}
}

// IsExpired reports whether today is past the expiration date. Expiration
// is a function of the calendar, not a stored transition.
func (r *Reservation) IsExpired(today time.Time) bool {
	return Date(today).After(r.ExpirationDate)
}

// IsActive reports whether the reservation still holds a claim: PENDING or
// CONFIRMED and not expired.
func (r *Reservation) IsActive(today time.Time) bool {
	return r.open() && !r.IsExpired(today)
}

func (r *Reservation) open() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// Confirm moves a PENDING, unexpired reservation to CONFIRMED.
func (r *Reservation) Confirm(today time.Time) bool {
	if r.Status != ReservationStatusPending || r.IsExpired(today) {
		return false
	}
	r.Status = ReservationStatusConfirmed
	return true
}

// Fulfill marks the reservation FULFILLED when the held book is checked out.
func (r *Reservation) Fulfill(today time.Time) bool {
	if !r.open() || r.IsExpired(today) {
		return false
	}
	r.Status = ReservationStatusFulfilled
	return true
}

// Cancel moves an open reservation to CANCELLED, regardless of expiration.
func (r *Reservation) Cancel() bool {
	if !r.open() {
		return false
	}
	r.Status = ReservationStatusCancelled
	return true
}

// Extend pushes the expiration date out by additionalDays.
func (r *Reservation) Extend(additionalDays int, today time.Time) bool {
	if additionalDays <= 0 {
		return false
	}
	if !r.open() || r.IsExpired(today) {
		return false
	}
	r.ExpirationDate = r.ExpirationDate.AddDate(0, 0, additionalDays)
	return true
}

// DaysUntilExpiration returns the whole days left before expiration, or 0
// when already expired.
func (r *Reservation) DaysUntilExpiration(today time.Time) int {
	if r.IsExpired(today) {
		return 0
	}
	return DaysBetween(Date(today), r.ExpirationDate)
}
