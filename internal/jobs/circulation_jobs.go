package jobs

import (
	"context"

	"library-circulation/internal/logger"
)

// ExpireReservations sweeps reservations whose hold period has lapsed,
// releasing the books they held.
func (jr *JobRunner) ExpireReservations() {
	jr.runWithRecovery("ExpireReservations", func() {
		ctx := context.Background()

		count, err := jr.circulation.ExpireReservations(ctx)
		if err != nil {
			logger.Error("Failed to expire reservations", "error", err, "expired_before_failure", count)
			return
		}
		logger.Info("Reservation expiration sweep finished", "expired", count)
	})
}

// ReportOverdueLoans logs the overdue-loan backlog and the total fine that
// would accrue if every overdue book came back today.
func (jr *JobRunner) ReportOverdueLoans() {
	jr.runWithRecovery("ReportOverdueLoans", func() {
		ctx := context.Background()

		overdue, err := jr.loans.ListOverdueLoans(ctx)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}
		total, err := jr.loans.TotalOutstandingFines(ctx)
		if err != nil {
			logger.Error("Failed to total outstanding fines", "error", err)
			return
		}

		logger.Info("Overdue loan report", "overdue_count", len(overdue), "projected_fines", total)
		for _, loan := range overdue {
			logger.Debug("Overdue loan",
				"loan_id", loan.ID,
				"user_id", loan.UserID,
				"book_id", loan.BookID,
				"due_date", loan.DueDate)
		}
	})
}
