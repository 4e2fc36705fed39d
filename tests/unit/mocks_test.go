package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"library-circulation/internal/domain"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookRepo) Update(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListByStatus(ctx context.Context, status domain.BookStatus) ([]domain.Book, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListByCategory(ctx context.Context, category domain.BookCategory) ([]domain.Book, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) SearchByTitle(ctx context.Context, keyword string) ([]domain.Book, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) SearchByAuthor(ctx context.Context, keyword string) ([]domain.Book, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListPublishedAfter(ctx context.Context, date time.Time) ([]domain.Book, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListPublishedBefore(ctx context.Context, date time.Time) ([]domain.Book, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) ListPublishedBetween(ctx context.Context, start, end time.Time) ([]domain.Book, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Book), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByType(ctx context.Context, userType domain.UserType) ([]domain.User, error) {
	args := m.Called(ctx, userType)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) SearchByName(ctx context.Context, keyword string) ([]domain.User, error) {
	args := m.Called(ctx, keyword)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListLocked(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListWithFines(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByBook(ctx context.Context, bookID string) ([]domain.Loan, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Loan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActiveByBook(ctx context.Context, bookID string) ([]domain.Loan, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListActive(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListDueOn(ctx context.Context, dueDate time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, dueDate)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListLoanedBetween(ctx context.Context, start, end time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) CountActiveByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByBook(ctx context.Context, bookID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListOpen(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListExpired(ctx context.Context, asOf time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListReservedBetween(ctx context.Context, start, end time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) CountActiveByUser(ctx context.Context, userID string, asOf time.Time) (int, error) {
	args := m.Called(ctx, userID, asOf)
	return args.Int(0), args.Error(1)
}

// fixedClock pins Today to a single date for deterministic tests.
type fixedClock struct {
	today time.Time
}

func (c fixedClock) Today() time.Time {
	return c.today
}
