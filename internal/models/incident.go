package models

import (
	"time"
)

// Incident - зафиксированный случай наводнения в районе
type Incident struct {
	ID             int64     `json:"id"`
	AreaID         int64     `json:"area_id"`
	AreaName       string    `json:"area_name"`
	Date           time.Time `json:"date"`
	FloodLevel     float64   `json:"flood_level"`
	DamageEstimate float64   `json:"damage_estimate"`
	Casualties     int64     `json:"casualties"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
