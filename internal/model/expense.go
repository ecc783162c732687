package model

import "time"

// Expense представляет расход, привязанный к поездке.
type Expense struct {
	ID          string    `db:"id" json:"id"`
	TripID      string    `db:"trip_id" json:"trip_id"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	Category    string    `db:"category" json:"category"`
	ExpenseDate time.Time `db:"expense_date" json:"expense_date"`
	Settled     bool      `db:"settled" json:"settled"`
}
