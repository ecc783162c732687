package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/model"
	"tripplanner/internal/repository"

	"github.com/google/uuid"
)

// Brief представляет заполненный бриф поездки, поданный пользователем.
type Brief struct {
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ParticipantCount int       `json:"participant_count"`
	BudgetLevel      string    `json:"budget_level"`
	GoalTags         []string  `json:"goal_tags"`
}

// Ошибки валидации брифа. Обнаруживаются до каких-либо записей в хранилище.
var (
	ErrTitleRequired   = errors.New("название поездки обязательно")
	ErrTitleTooLong    = errors.New("название поездки длиннее 200 символов")
	ErrDescTooLong     = errors.New("описание длиннее 2000 символов")
	ErrBadParticipants = errors.New("число участников должно быть от 2 до 1000")
	ErrBadBudgetLevel  = errors.New("уровень бюджета должен быть low, medium или high")
	ErrTooManyGoals    = errors.New("не больше 10 целей поездки")
	ErrEndBeforeStart  = errors.New("дата окончания раньше даты начала")
)

// TripService содержит бизнес-логику, связанную с поездками.
type TripService struct {
	tripRepo *repository.TripRepository
}

// NewTripService создает новый сервис поездок.
func NewTripService(tripRepo *repository.TripRepository) *TripService {
	return &TripService{tripRepo: tripRepo}
}

// ValidateBrief проверяет бриф перед созданием поездки.
func ValidateBrief(brief *Brief) error {
	if strings.TrimSpace(brief.Title) == "" {
		return ErrTitleRequired
	}
	if len(brief.Title) > 200 {
		return ErrTitleTooLong
	}
	if len(brief.Description) > 2000 {
		return ErrDescTooLong
	}
	if brief.ParticipantCount < 2 || brief.ParticipantCount > 1000 {
		return ErrBadParticipants
	}
	switch brief.BudgetLevel {
	case "low", "medium", "high":
	default:
		return ErrBadBudgetLevel
	}
	if len(brief.GoalTags) > 10 {
		return ErrTooManyGoals
	}
	if brief.EndDate.Before(brief.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// CreateTrip валидирует бриф и создает поездку в статусе "draft".
// Выбранное направление берется из контекста сессии планирования.
func (s *TripService) CreateTrip(brief *Brief, selection Selection) (*model.Trip, error) {
	if err := ValidateBrief(brief); err != nil {
		return nil, err
	}
	trip := &model.Trip{
		Title:            strings.TrimSpace(brief.Title),
		Description:      strings.TrimSpace(brief.Description),
		StartDate:        brief.StartDate,
		EndDate:          brief.EndDate,
		ParticipantCount: brief.ParticipantCount,
		BudgetLevel:      brief.BudgetLevel,
		GoalTags:         brief.GoalTags,
		ShareToken:       uuid.NewString(),
		Status:           "draft",
	}
	if selection.DestinationID != "" {
		destID := selection.DestinationID
		trip.DestinationID = &destID
	}
	if _, err := s.tripRepo.Create(trip); err != nil {
		return nil, fmt.Errorf("ошибка при создании поездки: %w", err)
	}
	return trip, nil
}

// GetTrip возвращает поездку по ID.
func (s *TripService) GetTrip(id string) (*model.Trip, error) {
	return s.tripRepo.GetByID(id)
}

// GetByShareToken возвращает поездку по публичному токену.
func (s *TripService) GetByShareToken(token string) (*model.Trip, error) {
	return s.tripRepo.GetByShareToken(token)
}

// ListTrips возвращает последние поездки.
func (s *TripService) ListTrips(limit int) ([]model.Trip, error) {
	return s.tripRepo.List(limit)
}
