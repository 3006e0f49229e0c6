package domain

import "time"

// Loan display statuses
const (
	LoanStatusActive   = "active"
	LoanStatusOverdue  = "overdue"
	LoanStatusPending  = "pending"
	LoanStatusReturned = "returned"
)

// ActiveLoanStatuses are the stored statuses that count as an open loan.
var ActiveLoanStatuses = []string{LoanStatusActive, LoanStatusOverdue, LoanStatusPending}

// DeriveLoanStatus computes a loan's display status from its dates. The
// stored status column is never trusted for returned/overdue decisions.
// A loan whose expected check-in equals now is not yet overdue.
func DeriveLoanStatus(actualCheckin *time.Time, expectedCheckin time.Time, status string, now time.Time) string {
	switch {
	case actualCheckin != nil:
		return LoanStatusReturned
	case now.After(expectedCheckin):
		return LoanStatusOverdue
	case status == "" || status == LoanStatusPending:
		return LoanStatusActive
	default:
		return status
	}
}
