package models

import "time"

// TipoAviso categoriza o comunicado
type TipoAviso string

const (
	AvisoGeral      TipoAviso = "GERAL"
	AvisoUrgente    TipoAviso = "URGENTE"
	AvisoManutencao TipoAviso = "MANUTENCAO"
)

// Aviso is an announcement published by the administration
type Aviso struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Titulo    string    `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao string    `gorm:"type:varchar(500);not null" json:"descricao"`
	Tipo      TipoAviso `gorm:"type:varchar(12);default:GERAL" json:"tipo"`
	Data      time.Time `gorm:"autoCreateTime" json:"data"`
	AdminID   string    `gorm:"type:varchar(36);not null" json:"adminId"`

	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}
