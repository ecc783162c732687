// Package planner содержит чистую логику планирования: генерацию маршрута
// и чек-листа, перестановку с пересчетом времени и добавление активности.
// Пакет не выполняет I/O - сохранение результатов лежит на вызывающем коде.
package planner

import (
	"errors"
	"time"
)

// Фиксированные параметры расписания дня.
const (
	DayStartHour     = 9   // локальный час начала каждого дня
	OpenerMinutes    = 30  // длительность утреннего блока
	CloserMinutes    = 120 // длительность вечернего блока
	BufferMinutes    = 15  // пауза между соседними блоками
	ActivitiesPerDay = 3   // максимум активностей в день

	// Пункты чек-листа, созданные при добавлении активности, нумеруются
	// с большим отступом, чтобы сортироваться после сгенерированных.
	extraItemBaseOrder = 1000
)

// ErrInvalidDateRange возвращается, когда дата окончания поездки раньше даты начала.
var ErrInvalidDateRange = errors.New("дата окончания поездки раньше даты начала")

// DayCount возвращает количество календарных дней поездки включительно.
// Даты нормализуются в UTC: в сутки перехода на летнее время меньше
// 24 часов, и деление по локальному времени теряло бы день.
func DayCount(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// dayStart возвращает момент начала расписания указанного дня поездки (09:00 локального времени).
func dayStart(tripStart time.Time, day int) time.Time {
	d := tripStart.AddDate(0, 0, day)
	return time.Date(d.Year(), d.Month(), d.Day(), DayStartHour, 0, 0, 0, tripStart.Location())
}
