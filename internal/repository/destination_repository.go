package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
)

// DestinationRepository обеспечивает доступ к каталогу направлений.
type DestinationRepository struct {
	db *sqlx.DB
}

// NewDestinationRepository создает новый репозиторий направлений.
func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// FindAll возвращает все направления каталога.
func (r *DestinationRepository) FindAll() ([]model.Destination, error) {
	destinations := []model.Destination{}
	err := r.db.Select(&destinations, "SELECT * FROM destinations ORDER BY city")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка направлений: %w", err)
	}
	return destinations, nil
}

// GetByID получает направление по его идентификатору.
func (r *DestinationRepository) GetByID(id string) (*model.Destination, error) {
	var destination model.Destination
	err := r.db.Get(&destination, "SELECT * FROM destinations WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &destination, nil
}

// GetAttractions возвращает достопримечательности направления.
func (r *DestinationRepository) GetAttractions(destinationID string) ([]model.Attraction, error) {
	attractions := []model.Attraction{}
	err := r.db.Select(&attractions,
		"SELECT * FROM attractions WHERE destination_id=$1 ORDER BY name", destinationID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении достопримечательностей: %w", err)
	}
	return attractions, nil
}
