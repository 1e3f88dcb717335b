package models

import "time"

// Notificacao is a per-resident notification record (package arrival,
// maintenance conclusion, announcements).
type Notificacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Mensagem  string    `gorm:"type:varchar(255);not null" json:"mensagem"`
	Lida      bool      `gorm:"default:false" json:"lida"`
	Data      time.Time `gorm:"autoCreateTime;index" json:"data"`
	ClienteID string    `gorm:"type:varchar(36);not null;index" json:"clienteId"`
}
