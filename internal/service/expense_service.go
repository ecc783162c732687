package service

import (
	"errors"
	"time"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// ErrBadAmount возвращается при попытке записать неположительный расход.
var ErrBadAmount = errors.New("сумма расхода должна быть больше нуля")

// ExpenseService содержит бизнес-логику учета расходов поездки.
type ExpenseService struct {
	expenseRepo *repository.ExpenseRepository
}

// NewExpenseService создает новый сервис расходов.
func NewExpenseService(expenseRepo *repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// AddExpense записывает расход поездки.
func (s *ExpenseService) AddExpense(tripID, description, category string, amount float64, date time.Time) (*model.Expense, error) {
	if amount <= 0 {
		return nil, ErrBadAmount
	}
	if date.IsZero() {
		date = time.Now()
	}
	expense := &model.Expense{
		TripID:      tripID,
		Description: description,
		Amount:      amount,
		Category:    category,
		ExpenseDate: date,
	}
	if _, err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListWithTotal возвращает расходы поездки и их сумму.
func (s *ExpenseService) ListWithTotal(tripID string) ([]model.Expense, float64, error) {
	expenses, err := s.expenseRepo.ListByTrip(tripID)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.TotalByTrip(tripID)
	if err != nil {
		return expenses, 0, err
	}
	return expenses, total, nil
}
