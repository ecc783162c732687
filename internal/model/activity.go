package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// Props представляет произвольный набор свойств активности (JSONB-колонка).
// Может содержать списки материалов/снаряжения и заметки по безопасности.
type Props map[string]any

// Scan реализует sql.Scanner для чтения JSONB из базы.
func (p *Props) Scan(src any) error {
	if src == nil {
		*p = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("неподдерживаемый тип для props: %T", src)
	}
	return json.Unmarshal(data, p)
}

// Value реализует driver.Valuer для записи JSONB в базу.
func (p Props) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Activity представляет активность из каталога (read-only для логики планирования).
type Activity struct {
	ID              string         `db:"id" json:"id"`
	Title           string         `db:"title" json:"title"`
	Description     string         `db:"description" json:"description"`
	DurationMinutes int            `db:"duration_minutes" json:"duration_minutes"`
	CostLevel       string         `db:"cost_level" json:"cost_level"` // стоимость: "low", "medium", "high"
	Tags            pq.StringArray `db:"tags" json:"tags"`
	IsSignature     bool           `db:"is_signature" json:"is_signature"`
	Category        string         `db:"category" json:"category"`
	Props           Props          `db:"props" json:"props,omitempty"`
}
