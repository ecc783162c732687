package model

import (
	"time"

	"github.com/lib/pq"
)

// Trip представляет поездку (ретрит), созданную из заполненного брифа.
type Trip struct {
	ID               string         `db:"id" json:"id"`
	Title            string         `db:"title" json:"title"`
	Description      string         `db:"description" json:"description"`
	StartDate        time.Time      `db:"start_date" json:"start_date"`
	EndDate          time.Time      `db:"end_date" json:"end_date"`
	ParticipantCount int            `db:"participant_count" json:"participant_count"`
	BudgetLevel      string         `db:"budget_level" json:"budget_level"` // уровень бюджета: "low", "medium", "high"
	GoalTags         pq.StringArray `db:"goal_tags" json:"goal_tags"`       // цели поездки, сопоставляются с тегами активностей
	DestinationID    *string        `db:"destination_id" json:"destination_id,omitempty"`
	ShareToken       string         `db:"share_token" json:"-"` // токен доступа к маршруту по ссылке
	Status           string         `db:"status" json:"status"` // статус поездки: "draft", "completed"
}
