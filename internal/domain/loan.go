package domain

import "time"

const (
	// MaxRenewals caps the number of times a single loan can be renewed.
	MaxRenewals = 2
	// FineRatePerDay accrues for each day a loan stays out past its due date.
	FineRatePerDay = 0.50
)

// Loan is a single borrowing transaction. It is terminal once ReturnDate is
// set; the fine computed at return is fixed permanently.
type Loan struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	BookID       string     `json:"book_id"`
	LoanDate     time.Time  `json:"loan_date"`
	DueDate      time.Time  `json:"due_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	FineAmount   float64    `json:"fine_amount"`
	Renewed      bool       `json:"renewed"`
	RenewalCount int        `json:"renewal_count"`
}

// NewLoan starts a loan on the given date with a due date loanPeriodDays out.
func NewLoan(id, userID, bookID string, loanDate time.Time, loanPeriodDays int) *Loan {
	loanDate = Date(loanDate)
	return &Loan{
		ID:       id,
		UserID:   userID,
		BookID:   bookID,
		LoanDate: loanDate,
		DueDate:  loanDate.AddDate(0, 0, loanPeriodDays),
	}
}

// IsActive reports whether the book is still out.
func (l *Loan) IsActive() bool {
	return l.ReturnDate == nil
}

// IsOverdue reports whether the loan is active and past due as of today.
func (l *Loan) IsOverdue(today time.Time) bool {
	return l.ReturnDate == nil && Date(today).After(l.DueDate)
}

// Renew extends the due date. It refuses, without mutating anything, when
// the loan is returned, overdue, or already renewed MaxRenewals times.
func (l *Loan) Renew(additionalDays int, today time.Time) bool {
	if l.ReturnDate != nil {
		return false
	}
	if l.RenewalCount >= MaxRenewals {
		return false
	}
	if l.IsOverdue(today) {
		return false
	}
	l.DueDate = l.DueDate.AddDate(0, 0, additionalDays)
	l.Renewed = true
	l.RenewalCount++
	return true
}

// Return closes the loan and returns the fine owed. Calling it on an
// already-returned loan is a no-op returning 0.
func (l *Loan) Return(today time.Time) float64 {
	if l.ReturnDate != nil {
		return 0
	}
	returned := Date(today)
	l.ReturnDate = &returned
	if returned.After(l.DueDate) {
		l.FineAmount = float64(DaysBetween(l.DueDate, returned)) * FineRatePerDay
		return l.FineAmount
	}
	return 0
}

// CurrentFine projects the fine as of today without mutating the loan:
// the fixed amount once returned, the accrued amount while overdue, else 0.
func (l *Loan) CurrentFine(today time.Time) float64 {
	if l.ReturnDate != nil {
		return l.FineAmount
	}
	if l.IsOverdue(today) {
		return float64(DaysBetween(l.DueDate, Date(today))) * FineRatePerDay
	}
	return 0
}
