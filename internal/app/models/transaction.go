package models

import (
	"fmt"
	"time"
)

// Transaction records a financial movement on a student account. The
// amount is stored in integer cents and is always non-negative; the
// direction is carried by IsCredit (credit = payment received, debit =
// fee charged).
type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	AmountCents int64     `json:"amountCents" db:"amount_cents" example:"125050"`
	Description string    `json:"description" db:"description" example:"Tuition fee"`
	IsCredit    bool      `json:"isCredit" db:"is_credit"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// TypeString returns the credit/debit filter value for the transaction.
func (t *Transaction) TypeString() string {
	if t.IsCredit {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}

// FormatCents renders an integer cents amount as a decimal string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
