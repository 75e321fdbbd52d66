package model

import "time"

// ChatExchange is the audit record of one answered question. It is operational
// telemetry persisted out-of-band; session chat state itself is never stored.
type ChatExchange struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SessionID    string    `gorm:"size:64;not null;index" json:"session_id"`
	Question     string    `gorm:"type:text;not null" json:"question"`
	Category     string    `gorm:"size:16;not null;index" json:"category"`
	ContextChars int       `gorm:"not null" json:"context_chars"`
	Response     string    `gorm:"type:text;not null" json:"response"`
	CreatedAt    time.Time `json:"created_at"`
}
