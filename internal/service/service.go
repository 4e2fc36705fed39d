package service

import (
	"context"
	"time"

	"library-circulation/internal/domain"
)

// BookService owns book CRUD, lookups and the status tracker. UpdateBookStatus
// is an unconditional write: legality of a status change is decided by the
// circulation coordinator before it calls here.
type BookService interface {
	AddBook(ctx context.Context, title, author, isbn string, publishDate time.Time, category domain.BookCategory) (*domain.Book, error)
	UpdateBook(ctx context.Context, bookID, title, author, isbn string, publishDate time.Time, category domain.BookCategory) (*domain.Book, error)
	UpdateBookStatus(ctx context.Context, bookID string, status domain.BookStatus) (*domain.Book, error)
	GetBookStatus(ctx context.Context, bookID string) (domain.BookStatus, error)
	DeleteBook(ctx context.Context, bookID string) error
	GetBook(ctx context.Context, bookID string) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
	ListBooksByStatus(ctx context.Context, status domain.BookStatus) ([]domain.Book, error)
	ListBooksByCategory(ctx context.Context, category domain.BookCategory) ([]domain.Book, error)
	ListAvailableBooks(ctx context.Context) ([]domain.Book, error)
	SearchBooksByTitle(ctx context.Context, keyword string) ([]domain.Book, error)
	SearchBooksByAuthor(ctx context.Context, keyword string) ([]domain.Book, error)
	ListBooksPublishedAfter(ctx context.Context, date time.Time) ([]domain.Book, error)
	ListBooksPublishedBefore(ctx context.Context, date time.Time) ([]domain.Book, error)
	ListBooksPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.Book, error)
}

// UserService owns user CRUD, lookups and fine accounting persistence.
type UserService interface {
	RegisterUser(ctx context.Context, firstName, lastName, email, phoneNumber string, userType domain.UserType) (*domain.User, error)
	UpdateUser(ctx context.Context, userID, firstName, lastName, email, phoneNumber string, userType domain.UserType) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListUsersByType(ctx context.Context, userType domain.UserType) ([]domain.User, error)
	SearchUsersByName(ctx context.Context, keyword string) ([]domain.User, error)
	ListLockedUsers(ctx context.Context) ([]domain.User, error)
	ListUsersWithFines(ctx context.Context) ([]domain.User, error)
	LockAccount(ctx context.Context, userID string) (*domain.User, error)
	UnlockAccount(ctx context.Context, userID string) (*domain.User, error)
	AddFine(ctx context.Context, userID string, amount float64) (*domain.User, error)
	ProcessFinePayment(ctx context.Context, userID string, amount float64) (*domain.User, error)
}

// LoanService is the read side of loans; all loan mutations go through the
// circulation coordinator.
type LoanService interface {
	GetLoan(ctx context.Context, loanID string) (*domain.Loan, error)
	ListActiveLoansForUser(ctx context.Context, userID string) ([]domain.Loan, error)
	ListLoansForUser(ctx context.Context, userID string) ([]domain.Loan, error)
	ListLoanHistoryForBook(ctx context.Context, bookID string) ([]domain.Loan, error)
	ListActiveLoans(ctx context.Context) ([]domain.Loan, error)
	ListOverdueLoans(ctx context.Context) ([]domain.Loan, error)
	ListLoansDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error)
	ListLoansBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error)
	GetActiveLoanForBook(ctx context.Context, bookID string) (*domain.Loan, error)
	TotalOutstandingFines(ctx context.Context) (float64, error)
}

// ReservationService is the read side of reservations.
type ReservationService interface {
	GetReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	ListActiveReservationsForUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ListReservationsForUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ListActiveReservationsForBook(ctx context.Context, bookID string) ([]domain.Reservation, error)
	ListReservationsForBook(ctx context.Context, bookID string) ([]domain.Reservation, error)
	ListActiveReservations(ctx context.Context) ([]domain.Reservation, error)
	ListReservationsByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	ListExpiredReservations(ctx context.Context) ([]domain.Reservation, error)
	ListReservationsBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error)
}

// CirculationService coordinates every cross-entity circulation action so
// that loan/reservation state, book status and user fines stay consistent.
// Writes within one action happen in a fixed order: loan or reservation
// state first, then book status, then user fines.
type CirculationService interface {
	Borrow(ctx context.Context, userID, bookID string) (*domain.Loan, error)
	Return(ctx context.Context, loanID string) (float64, error)
	Renew(ctx context.Context, loanID string) (*domain.Loan, error)
	Reserve(ctx context.Context, userID, bookID string) (*domain.Reservation, error)
	ConfirmReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	FulfillReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, reservationID string) (*domain.Reservation, error)
	ExtendReservation(ctx context.Context, reservationID string, additionalDays int) (*domain.Reservation, error)
	ExpireReservations(ctx context.Context) (int, error)
}
