package postgres

import (
	"database/sql"

	"library-circulation/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles the per-entity repositories over one database handle.
type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.UserRepository
	repository.LoanRepository
	repository.ReservationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		BookRepository:        NewBookRepository(db),
		UserRepository:        NewUserRepository(db),
		LoanRepository:        NewLoanRepository(db),
		ReservationRepository: NewReservationRepository(db),
	}
}
