package model

// Destination представляет город-направление из каталога.
type Destination struct {
	ID       string `db:"id" json:"id"`
	City     string `db:"city" json:"city"`
	ImageURL string `db:"image_url" json:"image_url"`
}

// Attraction представляет достопримечательность направления.
type Attraction struct {
	ID            string  `db:"id" json:"id"`
	DestinationID string  `db:"destination_id" json:"destination_id"`
	Name          string  `db:"name" json:"name"`
	Description   string  `db:"description" json:"description"`
	ImageURL      string  `db:"image_url" json:"image_url"`
	Latitude      float64 `db:"latitude" json:"lat"`
	Longitude     float64 `db:"longitude" json:"lng"`
}
