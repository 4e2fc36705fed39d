package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-circulation/internal/domain"
	"library-circulation/internal/logger"
	"library-circulation/internal/repository"
)

// circulationService is the single writer of cross-entity consequences:
// book status, user fines and lockout all change only through it. Callers
// must serialize concurrent actions touching the same book or user.
type circulationService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
	loanRepo repository.LoanRepository
	resRepo  repository.ReservationRepository
	clock    domain.Clock
}

func NewCirculationService(
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
	loanRepo repository.LoanRepository,
	resRepo repository.ReservationRepository,
	clock domain.Clock,
) CirculationService {
	return &circulationService{
		bookRepo: bookRepo,
		userRepo: userRepo,
		loanRepo: loanRepo,
		resRepo:  resRepo,
		clock:    clock,
	}
}

// Borrow checks out an available book directly.
func (s *circulationService) Borrow(ctx context.Context, userID, bookID string) (*domain.Loan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if err := s.checkBorrowEligibility(ctx, user); err != nil {
		return nil, err
	}
	if book.Status != domain.BookStatusAvailable {
		return nil, fmt.Errorf("book %s is not available for checkout: %w", bookID, domain.ErrIllegalState)
	}

	loan, err := s.createLoan(ctx, user, book)
	if err != nil {
		return nil, err
	}
	logger.Info("Book borrowed", "loan_id", loan.ID, "user_id", userID, "book_id", bookID, "due_date", loan.DueDate)
	return loan, nil
}

// Return closes a loan. Writes are ordered loan, then book, then user fine,
// so a partial failure leaves the book re-checkable instead of the user
// double-charged.
func (s *circulationService) Return(ctx context.Context, loanID string) (float64, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return 0, err
	}
	if !loan.IsActive() {
		return 0, fmt.Errorf("loan %s is already returned: %w", loanID, domain.ErrIllegalState)
	}

	fine := loan.Return(s.clock.Today())
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return 0, err
	}
	if _, err := s.setBookStatus(ctx, loan.BookID, domain.BookStatusAvailable); err != nil {
		return 0, err
	}
	if fine > 0 {
		user, err := s.userRepo.GetByID(ctx, loan.UserID)
		if err != nil {
			return 0, err
		}
		if err := user.AddFine(fine); err != nil {
			return 0, err
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return 0, err
		}
		logger.Info("Overdue fine applied", "loan_id", loanID, "user_id", loan.UserID, "fine", fine, "account_locked", user.AccountLocked)
	}
	logger.Info("Book returned", "loan_id", loanID, "book_id", loan.BookID, "fine", fine)
	return fine, nil
}

// Renew extends a loan by the borrower's user-type loan period.
func (s *circulationService) Renew(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, loan.UserID)
	if err != nil {
		return nil, err
	}

	additionalDays := user.UserType.Policy().LoanPeriodDays
	if !loan.Renew(additionalDays, s.clock.Today()) {
		return nil, fmt.Errorf("loan %s cannot be renewed: returned, overdue, or renewal limit reached: %w", loanID, domain.ErrIllegalState)
	}
	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}
	logger.Info("Loan renewed", "loan_id", loanID, "due_date", loan.DueDate, "renewal_count", loan.RenewalCount)
	return loan, nil
}

// Reserve places a hold on a book that is already claimed. Available books
// are checked out directly, not reserved.
func (s *circulationService) Reserve(ctx context.Context, userID, bookID string) (*domain.Reservation, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	activeCount, err := s.resRepo.CountActiveByUser(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if !user.CanReserve(activeCount) {
		return nil, fmt.Errorf("user %s cannot make more reservations: account locked or maximum reservations reached: %w", userID, domain.ErrIllegalState)
	}
	if book.Status == domain.BookStatusAvailable {
		return nil, fmt.Errorf("book %s is available for checkout, no need to reserve: %w", bookID, domain.ErrIllegalState)
	}

	existing, err := s.resRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].BookID == bookID && existing[i].IsActive(today) {
			return nil, fmt.Errorf("user %s already has an active reservation for book %s: %w", userID, bookID, domain.ErrIllegalState)
		}
	}

	res := domain.NewReservation(uuid.NewString(), userID, bookID, today, domain.DefaultReservationDays)
	if err := s.resRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	logger.Info("Reservation placed", "reservation_id", res.ID, "user_id", userID, "book_id", bookID, "expires", res.ExpirationDate)
	return res, nil
}

// ConfirmReservation moves a PENDING reservation to CONFIRMED and marks the
// book RESERVED.
func (s *circulationService) ConfirmReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Confirm(s.clock.Today()) {
		return nil, fmt.Errorf("reservation %s cannot be confirmed: not pending or already expired: %w", reservationID, domain.ErrIllegalState)
	}
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	if _, err := s.setBookStatus(ctx, res.BookID, domain.BookStatusReserved); err != nil {
		return nil, err
	}
	logger.Info("Reservation confirmed", "reservation_id", reservationID, "book_id", res.BookID)
	return res, nil
}

// FulfillReservation converts an open reservation into a loan. The loan is
// created through the normal path minus the book-availability check: a held
// book is expected to be RESERVED, not AVAILABLE. The book's reserved
// linkage is trusted from the reservation state and not re-verified.
func (s *circulationService) FulfillReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, res.UserID)
	if err != nil {
		return nil, err
	}
	book, err := s.bookRepo.GetByID(ctx, res.BookID)
	if err != nil {
		return nil, err
	}

	if err := s.checkBorrowEligibility(ctx, user); err != nil {
		return nil, err
	}
	if !res.Fulfill(s.clock.Today()) {
		return nil, fmt.Errorf("reservation %s cannot be fulfilled: not open or already expired: %w", reservationID, domain.ErrIllegalState)
	}
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	loan, err := s.createLoan(ctx, user, book)
	if err != nil {
		return nil, err
	}
	logger.Info("Reservation fulfilled", "reservation_id", reservationID, "loan_id", loan.ID, "book_id", res.BookID)
	return res, nil
}

// CancelReservation cancels an open reservation and releases the book if it
// was being held for it.
func (s *circulationService) CancelReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Cancel() {
		return nil, fmt.Errorf("reservation %s cannot be cancelled: not pending or confirmed: %w", reservationID, domain.ErrIllegalState)
	}
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	if err := s.releaseBookIfReserved(ctx, res.BookID); err != nil {
		return nil, err
	}
	logger.Info("Reservation cancelled", "reservation_id", reservationID, "book_id", res.BookID)
	return res, nil
}

func (s *circulationService) ExtendReservation(ctx context.Context, reservationID string, additionalDays int) (*domain.Reservation, error) {
	if additionalDays <= 0 {
		return nil, fmt.Errorf("additional days must be positive: %w", domain.ErrInvalidArgument)
	}
	res, err := s.resRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Extend(additionalDays, s.clock.Today()) {
		return nil, fmt.Errorf("reservation %s cannot be extended: not open or already expired: %w", reservationID, domain.ErrIllegalState)
	}
	if err := s.resRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ExpireReservations sweeps open reservations past their expiration date,
// marking them EXPIRED and releasing held books. It returns the number of
// reservations transitioned; an immediate second run returns 0.
func (s *circulationService) ExpireReservations(ctx context.Context) (int, error) {
	open, err := s.resRepo.ListOpen(ctx)
	if err != nil {
		return 0, err
	}

	today := s.clock.Today()
	processed := 0
	for i := range open {
		res := &open[i]
		if !res.IsExpired(today) {
			continue
		}
		res.Status = domain.ReservationStatusExpired
		if err := s.resRepo.Update(ctx, res); err != nil {
			return processed, err
		}
		if err := s.releaseBookIfReserved(ctx, res.BookID); err != nil {
			return processed, err
		}
		processed++
	}
	if processed > 0 {
		logger.Info("Expired reservations processed", "count", processed)
	}
	return processed, nil
}

// checkBorrowEligibility applies the user eligibility gate against the
// current active-loan count.
func (s *circulationService) checkBorrowEligibility(ctx context.Context, user *domain.User) error {
	activeCount, err := s.loanRepo.CountActiveByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if !user.CanBorrow(activeCount) {
		return fmt.Errorf("user %s cannot borrow books: account locked, maximum loans reached, or fines outstanding: %w", user.ID, domain.ErrIllegalState)
	}
	return nil
}

// createLoan writes the new loan, then flips the book to CHECKED_OUT.
// Eligibility must already have been checked.
func (s *circulationService) createLoan(ctx context.Context, user *domain.User, book *domain.Book) (*domain.Loan, error) {
	loan := domain.NewLoan(uuid.NewString(), user.ID, book.ID, s.clock.Today(), user.UserType.Policy().LoanPeriodDays)
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	if _, err := s.setBookStatus(ctx, book.ID, domain.BookStatusCheckedOut); err != nil {
		return nil, err
	}
	return loan, nil
}

func (s *circulationService) setBookStatus(ctx context.Context, bookID string, status domain.BookStatus) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	book.Status = status
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// releaseBookIfReserved reverts a RESERVED book to AVAILABLE. Books in any
// other status (e.g. still CHECKED_OUT by the current borrower) are left
// untouched.
func (s *circulationService) releaseBookIfReserved(ctx context.Context, bookID string) error {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		return err
	}
	if book.Status != domain.BookStatusReserved {
		return nil
	}
	book.Status = domain.BookStatusAvailable
	return s.bookRepo.Update(ctx, book)
}
