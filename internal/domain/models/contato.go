package models

import "time"

// Contato holds the reachable channels of a Cliente
type Contato struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Telefone  string    `gorm:"type:varchar(20);not null" json:"telefone"`
	Whatsapp  string    `gorm:"type:varchar(20);not null" json:"whatsapp"`
	ClienteID string    `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt time.Time `json:"createdAt"`
}
