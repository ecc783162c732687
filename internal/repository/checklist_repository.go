package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ChecklistRepository обеспечивает доступ к пунктам чек-листа в базе данных.
type ChecklistRepository struct {
	db *sqlx.DB
}

// NewChecklistRepository создает новый репозиторий чек-листа.
func NewChecklistRepository(db *sqlx.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// InsertBatch сохраняет пункты чек-листа одной многострочной вставкой.
func (r *ChecklistRepository) InsertBatch(items []model.ChecklistItem) ([]model.ChecklistItem, error) {
	if len(items) == 0 {
		return items, nil
	}
	for i := range items {
		items[i].ID = uuid.NewString()
	}
	_, err := r.db.NamedExec(
		`INSERT INTO checklist_items (id, trip_id, title, due_date, assignee_role, item_order, done)
		 VALUES (:id, :trip_id, :title, :due_date, :assignee_role, :item_order, :done)`,
		items)
	if err != nil {
		return nil, fmt.Errorf("не удалось сохранить пункты чек-листа: %w", err)
	}
	return items, nil
}

// ListByTrip возвращает пункты чек-листа поездки в порядке следования.
func (r *ChecklistRepository) ListByTrip(tripID string) ([]model.ChecklistItem, error) {
	items := []model.ChecklistItem{}
	err := r.db.Select(&items,
		"SELECT * FROM checklist_items WHERE trip_id=$1 ORDER BY item_order", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении чек-листа: %w", err)
	}
	return items, nil
}

// UpdateDone переключает флаг выполнения пункта.
func (r *ChecklistRepository) UpdateDone(id string, done bool) error {
	_, err := r.db.Exec("UPDATE checklist_items SET done=$1 WHERE id=$2", done, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить пункт чек-листа: %w", err)
	}
	return nil
}

// UpdateOrder записывает новый порядковый номер пункта.
func (r *ChecklistRepository) UpdateOrder(id string, order int) error {
	_, err := r.db.Exec("UPDATE checklist_items SET item_order=$1 WHERE id=$2", order, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить порядок пункта: %w", err)
	}
	return nil
}

// UpdateFields обновляет редактируемые поля пункта.
func (r *ChecklistRepository) UpdateFields(id string, title, assigneeRole string) error {
	_, err := r.db.Exec(
		"UPDATE checklist_items SET title=$1, assignee_role=$2 WHERE id=$3",
		title, assigneeRole, id)
	if err != nil {
		return fmt.Errorf("не удалось обновить пункт чек-листа: %w", err)
	}
	return nil
}

// Delete удаляет пункт чек-листа.
func (r *ChecklistRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM checklist_items WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("не удалось удалить пункт чек-листа: %w", err)
	}
	return nil
}
