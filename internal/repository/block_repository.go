package repository

import (
	"fmt"
	"time"

	"tripplanner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// BlockRepository обеспечивает доступ к блокам маршрута в базе данных.
type BlockRepository struct {
	db *sqlx.DB
}

// NewBlockRepository создает новый репозиторий блоков маршрута.
func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// InsertBatch сохраняет сгенерированные блоки одной многострочной вставкой.
// Блокам присваиваются новые идентификаторы.
func (r *BlockRepository) InsertBatch(blocks []model.ItineraryBlock) ([]model.ItineraryBlock, error) {
	if len(blocks) == 0 {
		return blocks, nil
	}
	for i := range blocks {
		blocks[i].ID = uuid.NewString()
	}
	_, err := r.db.NamedExec(
		`INSERT INTO itinerary_blocks (id, trip_id, activity_id, title, start_time, end_time, location, notes, block_order)
		 VALUES (:id, :trip_id, :activity_id, :title, :start_time, :end_time, :location, :notes, :block_order)`,
		blocks)
	if err != nil {
		return nil, fmt.Errorf("не удалось сохранить блоки маршрута: %w", err)
	}
	return blocks, nil
}

// ListByTrip возвращает блоки поездки в порядке следования.
func (r *BlockRepository) ListByTrip(tripID string) ([]model.ItineraryBlock, error) {
	blocks := []model.ItineraryBlock{}
	err := r.db.Select(&blocks,
		"SELECT * FROM itinerary_blocks WHERE trip_id=$1 ORDER BY block_order", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении блоков маршрута: %w", err)
	}
	return blocks, nil
}

// GetByID возвращает блок по ID.
func (r *BlockRepository) GetByID(id string) (*model.ItineraryBlock, error) {
	var block model.ItineraryBlock
	err := r.db.Get(&block, "SELECT * FROM itinerary_blocks WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// UpdateOrderAndTimes записывает новые порядок и время блока после перестановки.
func (r *BlockRepository) UpdateOrderAndTimes(block *model.ItineraryBlock) error {
	_, err := r.db.Exec(
		"UPDATE itinerary_blocks SET block_order=$1, start_time=$2, end_time=$3 WHERE id=$4",
		block.BlockOrder, block.StartTime, block.EndTime, block.ID)
	if err != nil {
		return fmt.Errorf("не удалось обновить порядок блока: %w", err)
	}
	return nil
}

// UpdateTimes записывает новое время блока (сдвиг в ран-листе).
func (r *BlockRepository) UpdateTimes(id string, start, end time.Time) error {
	_, err := r.db.Exec(
		"UPDATE itinerary_blocks SET start_time=$1, end_time=$2 WHERE id=$3", start, end, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить время блока: %w", err)
	}
	return nil
}

// UpdateFields обновляет редактируемые поля блока.
func (r *BlockRepository) UpdateFields(id string, title, notes, location string) error {
	_, err := r.db.Exec(
		"UPDATE itinerary_blocks SET title=$1, notes=$2, location=$3 WHERE id=$4",
		title, notes, location, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить блок: %w", err)
	}
	return nil
}

// Delete удаляет блок маршрута.
func (r *BlockRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM itinerary_blocks WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить блок: %w", err)
	}
	return nil
}
