package models

import "time"

// Visitante is the concierge gate log: every person that actually
// walked in, whether scheduled beforehand or not.
type Visitante struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Nome        string       `gorm:"type:varchar(100);not null" json:"nome"`
	CPF         string       `gorm:"column:cpf;type:varchar(11);not null;index" json:"cpf"`
	NumeroCasa  string       `gorm:"type:varchar(4);not null" json:"numeroCasa"`
	Placa       string       `gorm:"type:varchar(7)" json:"placa"`
	Observacoes string       `gorm:"type:varchar(191)" json:"observacoes"`
	Status      StatusVisita `gorm:"type:varchar(10);default:DENTRO" json:"status"`
	DataEntrada time.Time    `gorm:"index" json:"dataEntrada"`
	DataSaida   *time.Time   `json:"dataSaida"`
	PorteiroID  string       `gorm:"type:varchar(36)" json:"porteiroId"`
	CreatedAt   time.Time    `json:"createdAt"`
}
