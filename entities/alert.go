package entities

import "time"

type Alert struct {
	AlertID   uint       `gorm:"primaryKey" json:"id"`
	Severity  string     `gorm:"index" json:"severity"`  // high|medium|low
	Variable  string     `gorm:"index" json:"variable"`  // soil|ndvi|temp|rainfall
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Region    string     `json:"region"`
	Timestamp time.Time  `gorm:"index" json:"timestamp"`
	Sparkline []float64  `gorm:"serializer:json" json:"sparkline"`
	BBox      [4]float64 `gorm:"serializer:json" json:"bbox"`
	CreatedAt time.Time
}
