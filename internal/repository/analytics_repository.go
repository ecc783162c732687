package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AnalyticsRepository сохраняет события аналитики.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository создает новый репозиторий аналитики.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Insert сохраняет событие аналитики.
func (r *AnalyticsRepository) Insert(eventName string, tripID *string, props model.Props) error {
	_, err := r.db.Exec(
		"INSERT INTO analytics_events (id, event_name, trip_id, properties) VALUES ($1, $2, $3, $4)",
		uuid.NewString(), eventName, tripID, props)
	if err != nil {
		return fmt.Errorf("не удалось сохранить событие аналитики: %w", err)
	}
	return nil
}
