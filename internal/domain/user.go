package domain

import "time"

type UserType string

const (
	UserTypeStudent    UserType = "STUDENT"
	UserTypeFaculty    UserType = "FACULTY"
	UserTypeStaff      UserType = "STAFF"
	UserTypeResearcher UserType = "RESEARCHER"
	UserTypeAdmin      UserType = "ADMIN"
	UserTypeGuest      UserType = "GUEST"
)

// UserPolicy fixes the borrowing privileges of a user type.
type UserPolicy struct {
	MaxLoans        int
	MaxReservations int
	LoanPeriodDays  int
}

var userPolicies = map[UserType]UserPolicy{
	UserTypeStudent:    {MaxLoans: 3, MaxReservations: 2, LoanPeriodDays: 14},
	UserTypeFaculty:    {MaxLoans: 5, MaxReservations: 3, LoanPeriodDays: 30},
	UserTypeStaff:      {MaxLoans: 4, MaxReservations: 2, LoanPeriodDays: 21},
	UserTypeResearcher: {MaxLoans: 7, MaxReservations: 5, LoanPeriodDays: 60},
	UserTypeAdmin:      {MaxLoans: 10, MaxReservations: 5, LoanPeriodDays: 30},
	UserTypeGuest:      {MaxLoans: 1, MaxReservations: 0, LoanPeriodDays: 7},
}

// Policy returns the privilege table entry for the user type. Unknown types
// fall back to the GUEST policy.
func (t UserType) Policy() UserPolicy {
	if p, ok := userPolicies[t]; ok {
		return p
	}
	return userPolicies[UserTypeGuest]
}

// Valid reports whether t is one of the declared user types.
func (t UserType) Valid() bool {
	_, ok := userPolicies[t]
	return ok
}

// Fine policy constants, applied identically everywhere fines are added or
// paid so lockout logic cannot diverge.
const (
	// BorrowFineLimit blocks new loans once the outstanding fine reaches it.
	BorrowFineLimit = 10.0
	// LockoutThreshold locks the account; only payment below it unlocks.
	LockoutThreshold = 50.0
)

// User is a library member. Active loans and reservations are repository
// queries keyed by the user id, not stored collections.
type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	RegistrationDate time.Time `json:"registration_date"`
	UserType         UserType  `json:"user_type"`
	AccountLocked    bool      `json:"account_locked"`
	FineAmount       float64   `json:"fine_amount"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// CanBorrow reports whether the user may take another loan given their
// current number of active loans.
func (u *User) CanBorrow(activeLoanCount int) bool {
	return !u.AccountLocked &&
		activeLoanCount < u.UserType.Policy().MaxLoans &&
		u.FineAmount < BorrowFineLimit
}

// CanReserve reports whether the user may place another reservation given
// their current number of active reservations.
func (u *User) CanReserve(activeReservationCount int) bool {
	return !u.AccountLocked &&
		activeReservationCount < u.UserType.Policy().MaxReservations
}

// AddFine increases the outstanding fine and locks the account once the
// lockout threshold is reached.
func (u *User) AddFine(amount float64) error {
	if amount <= 0 {
		return ErrInvalidArgument
	}
	u.FineAmount += amount
	if u.FineAmount >= LockoutThreshold {
		u.AccountLocked = true
	}
	return nil
}

// PayFine reduces the outstanding fine. It returns false without touching
// any state when the amount is non-positive or exceeds the balance. Paying
// below the lockout threshold clears the lock.
func (u *User) PayFine(amount float64) bool {
	if amount <= 0 || amount > u.FineAmount {
		return false
	}
	u.FineAmount -= amount
	if u.FineAmount < LockoutThreshold {
		u.AccountLocked = false
	}
	return true
}
