package service

import (
	"context"
	"fmt"
	"time"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

type loanService struct {
	loanRepo repository.LoanRepository
	userRepo repository.UserRepository
	bookRepo repository.BookRepository
	clock    domain.Clock
}

func NewLoanService(loanRepo repository.LoanRepository, userRepo repository.UserRepository, bookRepo repository.BookRepository, clock domain.Clock) LoanService {
	return &loanService{loanRepo: loanRepo, userRepo: userRepo, bookRepo: bookRepo, clock: clock}
}

func (s *loanService) GetLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	return s.loanRepo.GetByID(ctx, loanID)
}

func (s *loanService) ListActiveLoansForUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.loanRepo.ListActiveByUser(ctx, userID)
}

func (s *loanService) ListLoansForUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.loanRepo.ListByUser(ctx, userID)
}

func (s *loanService) ListLoanHistoryForBook(ctx context.Context, bookID string) ([]domain.Loan, error) {
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, err
	}
	return s.loanRepo.ListByBook(ctx, bookID)
}

func (s *loanService) ListActiveLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListActive(ctx)
}

func (s *loanService) ListOverdueLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.ListOverdue(ctx, s.clock.Today())
}

func (s *loanService) ListLoansDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error) {
	return s.loanRepo.ListDueOn(ctx, domain.Date(dueDate))
}

func (s *loanService) ListLoansBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error) {
	return s.loanRepo.ListLoanedBetween(ctx, domain.Date(start), domain.Date(end))
}

// GetActiveLoanForBook returns the loan currently holding the book, or a
// NotFound error when the book has no active loan.
func (s *loanService) GetActiveLoanForBook(ctx context.Context, bookID string) (*domain.Loan, error) {
	if err := s.requireBook(ctx, bookID); err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.ListActiveByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, fmt.Errorf("no active loan for book %s: %w", bookID, domain.ErrNotFound)
	}
	return &loans[0], nil
}

// TotalOutstandingFines projects the fines accrued across all currently
// overdue loans without mutating any of them.
func (s *loanService) TotalOutstandingFines(ctx context.Context) (float64, error) {
	today := s.clock.Today()
	overdue, err := s.loanRepo.ListOverdue(ctx, today)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := range overdue {
		total += overdue[i].CurrentFine(today)
	}
	return total, nil
}

func (s *loanService) requireUser(ctx context.Context, userID string) error {
	_, err := s.userRepo.GetByID(ctx, userID)
	return err
}

func (s *loanService) requireBook(ctx context.Context, bookID string) error {
	_, err := s.bookRepo.GetByID(ctx, bookID)
	return err
}
