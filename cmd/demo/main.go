package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"library-circulation/internal/config"
	"library-circulation/internal/domain"
	"library-circulation/internal/logger"
	"library-circulation/internal/repository/postgres"
	"library-circulation/internal/service"
)

// Walks the full circulation workflow against a live database: register a
// user, add a book, borrow it, renew, return it late, then reserve it and
// let the reservation run to confirmation.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	clock := domain.SystemClock

	bookService := service.NewBookService(store.BookRepository, clock)
	userService := service.NewUserService(store.UserRepository, clock)
	circulation := service.NewCirculationService(
		store.BookRepository,
		store.UserRepository,
		store.LoanRepository,
		store.ReservationRepository,
		clock,
	)

	ctx := context.Background()

	// Unique emails so the walkthrough can run repeatedly against one database.
	run := uuid.NewString()[:8]

	user, err := userService.RegisterUser(ctx, "Ada", "Lovelace", "ada-"+run+"@example.edu", "5550001234", domain.UserTypeStudent)
	if err != nil {
		log.Fatalf("Failed to register user: %v", err)
	}
	logger.Info("Registered user", "user_id", user.ID, "type", user.UserType)

	book, err := bookService.AddBook(ctx, "Structure and Interpretation of Computer Programs",
		"Abelson and Sussman", "9780262510875",
		time.Date(1996, time.July, 25, 0, 0, 0, 0, time.UTC), domain.BookCategoryScience)
	if err != nil {
		log.Fatalf("Failed to add book: %v", err)
	}
	logger.Info("Added book", "book_id", book.ID, "status", book.Status)

	loan, err := circulation.Borrow(ctx, user.ID, book.ID)
	if err != nil {
		log.Fatalf("Failed to borrow book: %v", err)
	}
	logger.Info("Borrowed book", "loan_id", loan.ID, "due_date", loan.DueDate.Format("2006-01-02"))

	loan, err = circulation.Renew(ctx, loan.ID)
	if err != nil {
		log.Fatalf("Failed to renew loan: %v", err)
	}
	logger.Info("Renewed loan", "loan_id", loan.ID, "due_date", loan.DueDate.Format("2006-01-02"), "renewals", loan.RenewalCount)

	fine, err := circulation.Return(ctx, loan.ID)
	if err != nil {
		log.Fatalf("Failed to return book: %v", err)
	}
	logger.Info("Returned book", "loan_id", loan.ID, "fine", fine)

	// A second borrower takes the book, then the first user places a hold.
	other, err := userService.RegisterUser(ctx, "Grace", "Hopper", "grace-"+run+"@example.edu", "5550005678", domain.UserTypeFaculty)
	if err != nil {
		log.Fatalf("Failed to register second user: %v", err)
	}
	otherLoan, err := circulation.Borrow(ctx, other.ID, book.ID)
	if err != nil {
		log.Fatalf("Failed to borrow book for second user: %v", err)
	}
	logger.Info("Second user borrowed book", "loan_id", otherLoan.ID)

	res, err := circulation.Reserve(ctx, user.ID, book.ID)
	if err != nil {
		log.Fatalf("Failed to reserve book: %v", err)
	}
	logger.Info("Reserved book", "reservation_id", res.ID, "expires", res.ExpirationDate.Format("2006-01-02"))

	res, err = circulation.ConfirmReservation(ctx, res.ID)
	if err != nil {
		log.Fatalf("Failed to confirm reservation: %v", err)
	}
	logger.Info("Confirmed reservation", "reservation_id", res.ID, "status", res.Status)

	if _, err := circulation.Return(ctx, otherLoan.ID); err != nil {
		log.Fatalf("Failed to return second loan: %v", err)
	}

	res, err = circulation.FulfillReservation(ctx, res.ID)
	if err != nil {
		log.Fatalf("Failed to fulfill reservation: %v", err)
	}
	logger.Info("Fulfilled reservation", "reservation_id", res.ID, "status", res.Status)

	// Second user changes their mind about a hold.
	otherRes, err := circulation.Reserve(ctx, other.ID, book.ID)
	if err != nil {
		log.Fatalf("Failed to reserve book for second user: %v", err)
	}
	otherRes, err = circulation.CancelReservation(ctx, otherRes.ID)
	if err != nil {
		log.Fatalf("Failed to cancel reservation: %v", err)
	}
	logger.Info("Cancelled reservation", "reservation_id", otherRes.ID, "status", otherRes.Status)

	expired, err := circulation.ExpireReservations(ctx)
	if err != nil {
		log.Fatalf("Failed to run expiration sweep: %v", err)
	}
	logger.Info("Expiration sweep", "expired", expired)

	logger.Info("Demo walkthrough complete")
}
