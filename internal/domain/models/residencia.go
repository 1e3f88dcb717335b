package models

import "time"

// TipoResidencia distingue casas de apartamentos
type TipoResidencia string

const (
	TipoCasa        TipoResidencia = "CASA"
	TipoApartamento TipoResidencia = "APARTAMENTO"
)

// Residencia is a unit (house/apartment) owned by exactly one Cliente
type Residencia struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	NumeroCasa     string         `gorm:"type:varchar(4);not null" json:"numeroCasa"`
	Rua            string         `gorm:"type:varchar(100);not null" json:"rua"`
	DataResidencia time.Time      `json:"dataResidencia"`
	Tipo           TipoResidencia `gorm:"type:varchar(12)" json:"tipo"`
	Proprietario   string         `gorm:"type:varchar(100)" json:"proprietario"`
	ClienteID      string         `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt      time.Time      `json:"createdAt"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}
