package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

const userColumns = `id, first_name, last_name, email, phone_number, registration_date, user_type, account_locked, fine_amount`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, first_name, last_name, email, phone_number, registration_date, user_type, account_locked, fine_amount)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.RegistrationDate, u.UserType, u.AccountLocked, u.FineAmount)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.RegistrationDate, &u.UserType, &u.AccountLocked, &u.FineAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.RegistrationDate, &u.UserType, &u.AccountLocked, &u.FineAmount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, phone_number=$4, user_type=$5, account_locked=$6, fine_amount=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, u.FirstName, u.LastName, u.Email, u.PhoneNumber, u.UserType, u.AccountLocked, u.FineAmount, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users ORDER BY last_name, first_name`)
}

func (r *userRepository) ListByType(ctx context.Context, userType domain.UserType) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE user_type = $1 ORDER BY last_name, first_name`, userType)
}

func (r *userRepository) SearchByName(ctx context.Context, keyword string) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' ORDER BY last_name, first_name`, keyword)
}

func (r *userRepository) ListLocked(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE account_locked ORDER BY last_name, first_name`)
}

func (r *userRepository) ListWithFines(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, `SELECT `+userColumns+` FROM users WHERE fine_amount > 0 ORDER BY fine_amount DESC`)
}

func (r *userRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PhoneNumber, &u.RegistrationDate, &u.UserType, &u.AccountLocked, &u.FineAmount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
