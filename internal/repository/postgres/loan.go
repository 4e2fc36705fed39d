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

const loanColumns = `id, user_id, book_id, loan_date, due_date, return_date, fine_amount, renewed, renewal_count`

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO loans (id, user_id, book_id, loan_date, due_date, return_date, fine_amount, renewed, renewal_count)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.UserID, l.BookID, l.LoanDate, l.DueDate, l.ReturnDate, l.FineAmount, l.Renewed, l.RenewalCount)
	return err
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	l := &domain.Loan{}
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.UserID, &l.BookID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.FineAmount, &l.Renewed, &l.RenewalCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("loan %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *loanRepository) Update(ctx context.Context, l *domain.Loan) error {
	query := `UPDATE loans SET due_date=$1, return_date=$2, fine_amount=$3, renewed=$4, renewal_count=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, l.DueDate, l.ReturnDate, l.FineAmount, l.Renewed, l.RenewalCount, l.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("loan %s: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans ORDER BY loan_date DESC`)
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE user_id = $1 ORDER BY loan_date DESC`, userID)
}

func (r *loanRepository) ListByBook(ctx context.Context, bookID string) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE book_id = $1 ORDER BY loan_date DESC`, bookID)
}

func (r *loanRepository) ListActiveByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE user_id = $1 AND return_date IS NULL ORDER BY due_date`, userID)
}

func (r *loanRepository) ListActiveByBook(ctx context.Context, bookID string) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE book_id = $1 AND return_date IS NULL ORDER BY loan_date DESC`, bookID)
}

func (r *loanRepository) ListActive(ctx context.Context) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE return_date IS NULL ORDER BY due_date`)
}

func (r *loanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE return_date IS NULL AND due_date < $1 ORDER BY due_date`, asOf)
}

func (r *loanRepository) ListDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE due_date = $1 ORDER BY loan_date`, dueDate)
}

func (r *loanRepository) ListLoanedBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error) {
	return r.list(ctx, `SELECT `+loanColumns+` FROM loans WHERE loan_date BETWEEN $1 AND $2 ORDER BY loan_date`, start, end)
}

func (r *loanRepository) CountActiveByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM loans WHERE user_id = $1 AND return_date IS NULL`, userID).Scan(&count)
	return count, err
}

func (r *loanRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.FineAmount, &l.Renewed, &l.RenewalCount); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
