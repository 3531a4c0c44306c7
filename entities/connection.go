package entities

import "time"

type Connection struct {
	SessionID string `gorm:"primaryKey" json:"session_id"`
	Phone     string `json:"phone"`
	State     string `json:"state"` // disconnected|pending|connected
	CreatedAt time.Time
	UpdatedAt time.Time
}
