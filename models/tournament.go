package models

import "time"

type Tournament struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	OrganizerID       int       `json:"organizer_id"`
	DefaultFormatCode string    `json:"default_format_code"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	CreatedAt         time.Time `json:"created_at"`
}
