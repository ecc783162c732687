package planner

import (
	"fmt"
	"time"

	"tripplanner/internal/model"
)

// GenerateItinerary строит блоки маршрута по дням поездки из пула активностей.
// Пул должен быть предварительно отобран по пересечению тегов с целями поездки
// и ограничен ActivitiesPerDay * число дней; лишние элементы игнорируются.
// Каждый день получает утренний блок, до трех активностей с паузами и вечерний блок.
func GenerateItinerary(trip *model.Trip, pool []model.Activity) ([]model.ItineraryBlock, error) {
	if trip.EndDate.Before(trip.StartDate) {
		return nil, ErrInvalidDateRange
	}
	days := DayCount(trip.StartDate, trip.EndDate)

	blocks := []model.ItineraryBlock{}
	for day := 0; day < days; day++ {
		current := dayStart(trip.StartDate, day)

		blocks = append(blocks, model.ItineraryBlock{
			TripID:     trip.ID,
			Title:      "Morning Energizer",
			StartTime:  current,
			EndTime:    current.Add(OpenerMinutes * time.Minute),
			Location:   "Meeting Point",
			Notes:      "Start the day with energy!",
			BlockOrder: len(blocks),
		})
		current = current.Add(OpenerMinutes * time.Minute)

		for _, activity := range daySlice(pool, day) {
			activityID := activity.ID
			end := current.Add(time.Duration(activity.DurationMinutes) * time.Minute)
			blocks = append(blocks, model.ItineraryBlock{
				TripID:     trip.ID,
				ActivityID: &activityID,
				Title:      activity.Title,
				StartTime:  current,
				EndTime:    end,
				Location:   "TBD",
				Notes:      activity.Description,
				BlockOrder: len(blocks),
			})
			current = end.Add(BufferMinutes * time.Minute)
		}

		blocks = append(blocks, model.ItineraryBlock{
			TripID:     trip.ID,
			Title:      "Reflection & Dinner",
			StartTime:  current,
			EndTime:    current.Add(CloserMinutes * time.Minute),
			Location:   "Dining Area",
			Notes:      "Share highlights and enjoy dinner together",
			BlockOrder: len(blocks),
		})
	}
	return blocks, nil
}

// PoolLimit проверяет диапазон дат поездки и возвращает размер пула
// активностей для генерации (ActivitiesPerDay на каждый день).
// Вызывается до обращения к каталогу, чтобы некорректный диапазон
// давал ошибку валидации, а не ошибку запроса с отрицательным лимитом.
func PoolLimit(trip *model.Trip) (int, error) {
	if trip.EndDate.Before(trip.StartDate) {
		return 0, ErrInvalidDateRange
	}
	return DayCount(trip.StartDate, trip.EndDate) * ActivitiesPerDay, nil
}

// daySlice возвращает активности, отведенные на указанный день.
// Если пул короче, последние дни получают меньше активностей или ни одной.
func daySlice(pool []model.Activity, day int) []model.Activity {
	from := day * ActivitiesPerDay
	if from >= len(pool) {
		return nil
	}
	to := from + ActivitiesPerDay
	if to > len(pool) {
		to = len(pool)
	}
	return pool[from:to]
}

// SeedChecklist формирует чек-лист для свежесгенерированного маршрута:
// шесть фиксированных организационных задач плюс по одному пункту
// подготовки материалов на каждый блок с привязанной активностью.
func SeedChecklist(tripID string, blocks []model.ItineraryBlock) []model.ChecklistItem {
	items := []model.ChecklistItem{
		{TripID: tripID, Title: "Send trip details to all participants", AssigneeRole: "Organizer"},
		{TripID: tripID, Title: "Book transportation", AssigneeRole: "Logistics Lead"},
		{TripID: tripID, Title: "Reserve activity slots", AssigneeRole: "Activity Coordinator"},
		{TripID: tripID, Title: "Prepare participant list", AssigneeRole: "Organizer"},
		{TripID: tripID, Title: "Pack emergency supplies", AssigneeRole: "Safety Officer"},
		{TripID: tripID, Title: "Confirm all bookings 24h before", AssigneeRole: "Organizer"},
	}
	for i := range items {
		items[i].ItemOrder = i
	}

	for _, block := range blocks {
		if block.ActivityID == nil {
			continue
		}
		due := block.StartTime
		items = append(items, model.ChecklistItem{
			TripID:       tripID,
			Title:        fmt.Sprintf("Prepare materials for %s", block.Title),
			DueDate:      &due,
			AssigneeRole: "Activity Coordinator",
			ItemOrder:    len(items),
		})
	}
	return items
}
