package models

import "time"

// Sugestao is a suggestion sent by a resident to the administration
type Sugestao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Titulo    string    `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao string    `gorm:"type:varchar(500);not null" json:"descricao"`
	Lido      bool      `gorm:"default:false" json:"lido"`
	Data      time.Time `gorm:"autoCreateTime;index" json:"data"`
	ClienteID string    `gorm:"type:varchar(36);not null;index" json:"clienteId"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}
