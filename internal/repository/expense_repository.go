package repository

import (
	"fmt"

	"tripplanner/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ExpenseRepository обеспечивает доступ к расходам поездок в базе данных.
type ExpenseRepository struct {
	db *sqlx.DB
}

// NewExpenseRepository создает новый репозиторий расходов.
func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create сохраняет новый расход. Возвращает ID созданной записи.
func (r *ExpenseRepository) Create(expense *model.Expense) (string, error) {
	expense.ID = uuid.NewString()
	_, err := r.db.Exec(
		`INSERT INTO expenses (id, trip_id, description, amount, category, expense_date, settled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount,
		expense.Category, expense.ExpenseDate, expense.Settled)
	if err != nil {
		return "", fmt.Errorf("не удалось сохранить расход: %w", err)
	}
	return expense.ID, nil
}

// ListByTrip возвращает расходы поездки.
func (r *ExpenseRepository) ListByTrip(tripID string) ([]model.Expense, error) {
	expenses := []model.Expense{}
	err := r.db.Select(&expenses,
		"SELECT * FROM expenses WHERE trip_id=$1 ORDER BY expense_date", tripID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении расходов: %w", err)
	}
	return expenses, nil
}

// TotalByTrip возвращает сумму расходов поездки.
func (r *ExpenseRepository) TotalByTrip(tripID string) (float64, error) {
	var total float64
	err := r.db.Get(&total,
		"SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE trip_id=$1", tripID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчете расходов: %w", err)
	}
	return total, nil
}
