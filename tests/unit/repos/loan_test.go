package repos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository/postgres"
)

func TestLoanRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Active Loan", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "book_id", "loan_date", "due_date", "return_date", "fine_amount", "renewed", "renewal_count"}).
			AddRow("l1", "u1", "b1", time.Now(), time.Now().AddDate(0, 0, 14), nil, 0.0, false, 0)

		mock.ExpectQuery("SELECT (.+) FROM loans WHERE id = \\$1").
			WithArgs("l1").
			WillReturnRows(rows)

		loan, err := repo.GetByID(ctx, "l1")
		assert.NoError(t, err)
		assert.True(t, loan.IsActive())
		assert.Nil(t, loan.ReturnDate)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM loans WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		loan, err := repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, loan)
	})
}

func TestLoanRepository_CountActiveByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM loans WHERE user_id = \\$1 AND return_date IS NULL").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountActiveByUser(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestLoanRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()
	asOf := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "user_id", "book_id", "loan_date", "due_date", "return_date", "fine_amount", "renewed", "renewal_count"}).
		AddRow("l1", "u1", "b1", asOf.AddDate(0, 0, -20), asOf.AddDate(0, 0, -6), nil, 0.0, false, 0)

	mock.ExpectQuery("SELECT (.+) FROM loans WHERE return_date IS NULL AND due_date < \\$1").
		WithArgs(asOf).
		WillReturnRows(rows)

	loans, err := repo.ListOverdue(ctx, asOf)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.True(t, loans[0].IsOverdue(asOf))
}

func TestLoanRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewLoanRepository(db)
	ctx := context.Background()

	loan := domain.NewLoan("l1", "u1", "b1", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), 14)
	loan.Return(time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC))

	mock.ExpectExec("UPDATE loans SET").
		WithArgs(loan.DueDate, loan.ReturnDate, loan.FineAmount, loan.Renewed, loan.RenewalCount, loan.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(ctx, loan))
}
