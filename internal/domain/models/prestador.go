package models

import "time"

// Prestador is a service-provider booking tied to a residence
type Prestador struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Nome         string       `gorm:"type:varchar(100);not null" json:"nome"`
	CPF          string       `gorm:"column:cpf;type:varchar(14);not null" json:"cpf"`
	Contato      string       `gorm:"type:varchar(20);not null" json:"contato"`
	Email        string       `gorm:"type:varchar(100)" json:"email"`
	Servico      string       `gorm:"type:varchar(100);not null" json:"servico"`
	DataServico  time.Time    `gorm:"index" json:"dataServico"`
	Horario      string       `gorm:"type:varchar(5)" json:"horario"`
	Observacoes  string       `gorm:"type:varchar(191)" json:"observacoes"`
	Status       StatusVisita `gorm:"type:varchar(10);default:AGENDADA" json:"status"`
	DataEntrada  *time.Time   `json:"dataEntrada"`
	DataSaida    *time.Time   `json:"dataSaida"`
	ResidenciaID uint         `gorm:"not null;index" json:"residenciaId"`
	ClienteID    string       `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt    time.Time    `json:"createdAt"`

	Residencia *Residencia `gorm:"foreignKey:ResidenciaID" json:"residencia,omitempty"`
}
