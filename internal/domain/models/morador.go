package models

import "time"

// TipoMorador classifica o ocupante da residência
type TipoMorador string

const (
	MoradorTitular     TipoMorador = "TITULAR"
	MoradorDependente  TipoMorador = "DEPENDENTE"
	MoradorFuncionario TipoMorador = "FUNCIONARIO"
)

// Morador is an occupant registered under a residence
type Morador struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Nome         string      `gorm:"type:varchar(100);not null" json:"nome"`
	Parentesco   string      `gorm:"type:varchar(40);not null" json:"parentesco"`
	DataNasc     time.Time   `json:"dataNasc"`
	CPF          string      `gorm:"column:cpf;type:varchar(11);not null" json:"cpf"`
	Email        string      `gorm:"type:varchar(100)" json:"email"`
	Contato      string      `gorm:"type:varchar(20);not null" json:"contato"`
	TipoMorador  TipoMorador `gorm:"type:varchar(15)" json:"tipoMorador"`
	ResidenciaID uint        `gorm:"not null;index" json:"residenciaId"`
	ClienteID    string      `gorm:"type:varchar(36);not null;index" json:"clienteId"`
	CreatedAt    time.Time   `json:"createdAt"`
}
