package entity

import "time"

// Event representa una entrada de calendario independiente (CRUD puro).
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
}
