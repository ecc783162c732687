package model

// AnalyticsEvent представляет событие аналитики (генерация маршрута, сдвиг блока и т.п.).
type AnalyticsEvent struct {
	ID        string  `db:"id" json:"id"`
	EventName string  `db:"event_name" json:"event_name"`
	TripID    *string `db:"trip_id" json:"trip_id,omitempty"`
	Props     Props   `db:"properties" json:"properties,omitempty"`
}
