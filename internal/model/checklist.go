package model

import "time"

// ChecklistItem представляет пункт организационного чек-листа поездки.
// ItemOrder уникален в пределах поездки.
type ChecklistItem struct {
	ID           string     `db:"id" json:"id"`
	TripID       string     `db:"trip_id" json:"trip_id"`
	Title        string     `db:"title" json:"title"`
	DueDate      *time.Time `db:"due_date" json:"due_date,omitempty"`
	AssigneeRole string     `db:"assignee_role" json:"assignee_role"` // роль ответственного, свободный текст
	ItemOrder    int        `db:"item_order" json:"item_order"`
	Done         bool       `db:"done" json:"done"`
}
