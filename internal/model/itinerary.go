package model

import "time"

// ItineraryBlock представляет один блок маршрута с фиксированным временным интервалом.
// Блоки поездки полностью упорядочены по BlockOrder.
type ItineraryBlock struct {
	ID         string    `db:"id" json:"id"`
	TripID     string    `db:"trip_id" json:"trip_id"`
	ActivityID *string   `db:"activity_id" json:"activity_id,omitempty"` // NULL для служебных блоков (открытие/закрытие дня)
	Title      string    `db:"title" json:"title"`
	StartTime  time.Time `db:"start_time" json:"start_time"`
	EndTime    time.Time `db:"end_time" json:"end_time"`
	Location   string    `db:"location" json:"location"`
	Notes      string    `db:"notes" json:"notes"`
	BlockOrder int       `db:"block_order" json:"block_order"`
}

// Duration возвращает длительность блока.
func (b *ItineraryBlock) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}
