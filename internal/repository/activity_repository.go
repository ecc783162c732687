package repository

import (
	"fmt"
	"strings"

	"tripplanner/internal/model"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ActivityRepository обеспечивает доступ к каталогу активностей (только чтение).
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository создает новый репозиторий каталога активностей.
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// FindAll возвращает все активности каталога, отсортированные по названию.
func (r *ActivityRepository) FindAll() ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.db.Select(&activities, "SELECT * FROM activities ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении каталога активностей: %w", err)
	}
	return activities, nil
}

// FindByTagOverlap возвращает активности, теги которых пересекаются с целями
// поездки, в порядке выдачи хранилища, не более limit штук.
func (r *ActivityRepository) FindByTagOverlap(tags []string, limit int) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.db.Select(&activities,
		"SELECT * FROM activities WHERE tags && $1 LIMIT $2",
		pq.Array(tags), limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подборе активностей по тегам: %w", err)
	}
	return activities, nil
}

// Search выполняет поиск активностей по категории и ключевому слову.
func (r *ActivityRepository) Search(category string, keyword string) ([]model.Activity, error) {
	query := "SELECT * FROM activities WHERE 1=1"
	args := []interface{}{}
	if category != "" && strings.ToLower(category) != "any" {
		query += " AND LOWER(category)=LOWER(?)"
		args = append(args, category)
	}
	if keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		query += " AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)"
		args = append(args, kw, kw)
	}
	query += " ORDER BY title"
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	activities := []model.Activity{}
	if err := r.db.Select(&activities, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при поиске активностей: %w", err)
	}
	return activities, nil
}

// GetByID получает активность по ее идентификатору.
func (r *ActivityRepository) GetByID(id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.Get(&activity, "SELECT * FROM activities WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}
