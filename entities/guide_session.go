package entities

import "time"

// GuideSession holds the disclosure state of one visitor's guide view.
type GuideSession struct {
	SessionID string   `gorm:"primaryKey" json:"session_id"`
	GuideID   string   `gorm:"index" json:"guide_id"`
	OpenSteps []string `gorm:"serializer:json" json:"open_steps"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
