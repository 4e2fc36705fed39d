package repository

import (
	"context"
	"time"

	"library-circulation/internal/domain"
)

// Repositories return domain.ErrNotFound (wrapped) when an id does not
// resolve. List methods return empty slices, never errors, for no matches.

type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Book, error)
	ListByStatus(ctx context.Context, status domain.BookStatus) ([]domain.Book, error)
	ListByCategory(ctx context.Context, category domain.BookCategory) ([]domain.Book, error)
	SearchByTitle(ctx context.Context, keyword string) ([]domain.Book, error)
	SearchByAuthor(ctx context.Context, keyword string) ([]domain.Book, error)
	ListPublishedAfter(ctx context.Context, date time.Time) ([]domain.Book, error)
	ListPublishedBefore(ctx context.Context, date time.Time) ([]domain.Book, error)
	ListPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.Book, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
	ListByType(ctx context.Context, userType domain.UserType) ([]domain.User, error)
	SearchByName(ctx context.Context, keyword string) ([]domain.User, error)
	ListLocked(ctx context.Context) ([]domain.User, error)
	ListWithFines(ctx context.Context) ([]domain.User, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	ListByBook(ctx context.Context, bookID string) ([]domain.Loan, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	ListActiveByBook(ctx context.Context, bookID string) ([]domain.Loan, error)
	ListActive(ctx context.Context) ([]domain.Loan, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	ListDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error)
	ListLoanedBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error)
	CountActiveByUser(ctx context.Context, userID string) (int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	ListByBook(ctx context.Context, bookID string) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
	// ListOpen returns reservations still in PENDING or CONFIRMED status,
	// whether or not their expiration date has passed.
	ListOpen(ctx context.Context) ([]domain.Reservation, error)
	// ListExpired returns reservations whose expiration date is strictly
	// before asOf, in any status.
	ListExpired(ctx context.Context, asOf time.Time) ([]domain.Reservation, error)
	ListReservedBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error)
	CountActiveByUser(ctx context.Context, userID string, asOf time.Time) (int, error)
}
