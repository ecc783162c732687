package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// TripRepository обеспечивает доступ к данным поездок в базе данных.
type TripRepository struct {
	db *sqlx.DB
}

// NewTripRepository создает новый репозиторий для поездок.
func NewTripRepository(db *sqlx.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Create сохраняет новую поездку. Возвращает ID созданной записи.
func (r *TripRepository) Create(trip *model.Trip) (string, error) {
	trip.ID = uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO trips (id, title, description, start_date, end_date, participant_count, budget_level, goal_tags, destination_id, share_token, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		trip.ID, trip.Title, trip.Description, trip.StartDate, trip.EndDate,
		trip.ParticipantCount, trip.BudgetLevel, trip.GoalTags, trip.DestinationID,
		trip.ShareToken, trip.Status)
	if err != nil {
		return "", fmt.Errorf("не удалось создать поездку: %w", err)
	}
	return trip.ID, nil
}

// GetByID возвращает поездку по ID.
func (r *TripRepository) GetByID(id string) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetByShareToken возвращает поездку по токену публичной ссылки.
func (r *TripRepository) GetByShareToken(token string) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.Get(&trip, "SELECT * FROM trips WHERE share_token=$1", token)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// List возвращает последние поездки (для списков в боте и на главной).
func (r *TripRepository) List(limit int) ([]model.Trip, error) {
	trips := []model.Trip{}
	err := r.db.Select(&trips, "SELECT * FROM trips ORDER BY start_date DESC LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка поездок: %w", err)
	}
	return trips, nil
}

// UpdateStatus обновляет статус поездки.
func (r *TripRepository) UpdateStatus(id string, status string) error {
	_, err := r.db.Exec("UPDATE trips SET status=$1 WHERE id=$2", status, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить статус поездки: %w", err)
	}
	return nil
}
