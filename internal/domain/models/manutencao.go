package models

import "time"

// StatusManutencao lifecycle: PENDENTE -> CONCLUIDO
type StatusManutencao string

const (
	ManutencaoPendente  StatusManutencao = "PENDENTE"
	ManutencaoConcluido StatusManutencao = "CONCLUIDO"
)

// Manutencao is a maintenance ticket opened by a resident
type Manutencao struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Titulo     string           `gorm:"type:varchar(100);not null" json:"titulo"`
	Descricao  string           `gorm:"type:varchar(500);not null" json:"descricao"`
	Prioridade bool             `gorm:"default:false" json:"prioridade"`
	Status     StatusManutencao `gorm:"type:varchar(10);default:PENDENTE" json:"status"`
	Data       time.Time        `gorm:"autoCreateTime" json:"data"`
	ClienteID  string           `gorm:"type:varchar(36);not null;index" json:"clienteId"`

	Cliente *Cliente `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
}
