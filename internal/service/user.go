package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"library-circulation/internal/domain"
	"library-circulation/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

type userService struct {
	userRepo repository.UserRepository
	clock    domain.Clock
}

func NewUserService(userRepo repository.UserRepository, clock domain.Clock) UserService {
	return &userService{userRepo: userRepo, clock: clock}
}

func (s *userService) RegisterUser(ctx context.Context, firstName, lastName, email, phoneNumber string, userType domain.UserType) (*domain.User, error) {
	if err := validateUserData(firstName, lastName, email, phoneNumber, userType); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("user with email %s already exists: %w", email, domain.ErrInvalidArgument)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:               uuid.NewString(),
		FirstName:        firstName,
		LastName:         lastName,
		Email:            email,
		PhoneNumber:      phoneNumber,
		RegistrationDate: s.clock.Today(),
		UserType:         userType,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID, firstName, lastName, email, phoneNumber string, userType domain.UserType) (*domain.User, error) {
	if err := validateUserData(firstName, lastName, email, phoneNumber, userType); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Email != email {
		if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
			return nil, fmt.Errorf("user with email %s already exists: %w", email, domain.ErrInvalidArgument)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.PhoneNumber = phoneNumber
	user.UserType = userType
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) ListUsersByType(ctx context.Context, userType domain.UserType) ([]domain.User, error) {
	return s.userRepo.ListByType(ctx, userType)
}

func (s *userService) SearchUsersByName(ctx context.Context, keyword string) ([]domain.User, error) {
	return s.userRepo.SearchByName(ctx, keyword)
}

func (s *userService) ListLockedUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListLocked(ctx)
}

func (s *userService) ListUsersWithFines(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListWithFines(ctx)
}

// LockAccount is an administrative override; it does not require the fine
// threshold to have been reached.
func (s *userService) LockAccount(ctx context.Context, userID string) (*domain.User, error) {
	return s.setLocked(ctx, userID, true)
}

func (s *userService) UnlockAccount(ctx context.Context, userID string) (*domain.User, error) {
	return s.setLocked(ctx, userID, false)
}

func (s *userService) setLocked(ctx context.Context, userID string, locked bool) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.AccountLocked = locked
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AddFine(ctx context.Context, userID string, amount float64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.AddFine(amount); err != nil {
		return nil, fmt.Errorf("fine amount must be positive: %w", err)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ProcessFinePayment(ctx context.Context, userID string, amount float64) (*domain.User, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", domain.ErrInvalidArgument)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.PayFine(amount) {
		return nil, fmt.Errorf("payment amount exceeds outstanding fine: %w", domain.ErrInvalidArgument)
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func validateUserData(firstName, lastName, email, phoneNumber string, userType domain.UserType) error {
	if strings.TrimSpace(firstName) == "" {
		return fmt.Errorf("first name cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(lastName) == "" {
		return fmt.Errorf("last name cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if strings.TrimSpace(email) == "" || !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %w", domain.ErrInvalidArgument)
	}
	if !phonePattern.MatchString(phoneNumber) {
		return fmt.Errorf("phone number must be 10 digits: %w", domain.ErrInvalidArgument)
	}
	if !userType.Valid() {
		return fmt.Errorf("unknown user type %q: %w", userType, domain.ErrInvalidArgument)
	}
	return nil
}
