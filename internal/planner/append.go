package planner

import (
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/model"
)

// AppendActivity строит новый блок для активности в конце маршрута и пункты
// чек-листа подготовки к ней. Новый блок начинается через BufferMinutes после
// последнего блока; если блоков еще нет - завтра в то же время (от now).
// Сохранение блока и пунктов выполняет вызывающий код.
func AppendActivity(activity *model.Activity, tripID string, lastBlock *model.ItineraryBlock, now time.Time) (model.ItineraryBlock, []model.ChecklistItem) {
	var start time.Time
	if lastBlock != nil {
		start = lastBlock.EndTime.Add(BufferMinutes * time.Minute)
	} else {
		start = now.Add(24 * time.Hour)
	}
	end := start.Add(time.Duration(activity.DurationMinutes) * time.Minute)

	order := 0
	if lastBlock != nil {
		order = lastBlock.BlockOrder + 1
	}

	notes := activity.Description
	if notes == "" {
		notes = "Added from Activity Library"
	}
	activityID := activity.ID
	block := model.ItineraryBlock{
		TripID:     tripID,
		ActivityID: &activityID,
		Title:      activity.Title,
		StartTime:  start,
		EndTime:    end,
		Location:   "TBD",
		Notes:      notes,
		BlockOrder: order,
	}

	items := prepItems(activity, tripID, start)
	return block, items
}

// prepItems выводит пункты подготовки из пакета свойств активности.
// Материалы и заметки по безопасности дают отдельные пункты; если нет
// ни того, ни другого - один общий пункт подготовки.
func prepItems(activity *model.Activity, tripID string, due time.Time) []model.ChecklistItem {
	items := []model.ChecklistItem{}

	if materials := propText(activity.Props, "materials", "equipment"); materials != "" {
		items = append(items, model.ChecklistItem{
			TripID:       tripID,
			Title:        fmt.Sprintf("Prepare materials for %q: %s", activity.Title, materials),
			DueDate:      &due,
			AssigneeRole: "Activity Coordinator",
			ItemOrder:    extraItemBaseOrder + len(items),
		})
	}
	if safety := propText(activity.Props, "safety", "risk_notes"); safety != "" {
		items = append(items, model.ChecklistItem{
			TripID:       tripID,
			Title:        fmt.Sprintf("Review safety guidelines for %q: %s", activity.Title, safety),
			DueDate:      &due,
			AssigneeRole: "Safety Officer",
			ItemOrder:    extraItemBaseOrder + len(items),
		})
	}
	if len(items) == 0 {
		items = append(items, model.ChecklistItem{
			TripID:       tripID,
			Title:        fmt.Sprintf("Prepare for activity: %s", activity.Title),
			DueDate:      &due,
			AssigneeRole: "Activity Coordinator",
			ItemOrder:    extraItemBaseOrder,
		})
	}
	return items
}

// propText достает первое непустое свойство из перечисленных ключей.
// Списки превращаются в строку через запятую.
func propText(props model.Props, keys ...string) string {
	for _, key := range keys {
		value, ok := props[key]
		if !ok || value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				parts = append(parts, fmt.Sprint(item))
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}
