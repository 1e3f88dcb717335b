package models

import (
	"time"

	"github.com/Hellwig19/Com-Dominium-API/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EstadoCivil do cliente
type EstadoCivil string

const (
	EstadoCivilSolteiro   EstadoCivil = "SOLTEIRO"
	EstadoCivilCasado     EstadoCivil = "CASADO"
	EstadoCivilSeparado   EstadoCivil = "SEPARADO"
	EstadoCivilDivorciado EstadoCivil = "DIVORCIADO"
	EstadoCivilViuvo      EstadoCivil = "VIUVO"
)

// Cliente is the condominium unit owner and the account behind the
// resident-facing routes. The ID is a UUID string, matching the
// original schema.
type Cliente struct {
	ID          string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nome        string      `gorm:"type:varchar(100);not null" json:"nome"`
	CPF         string      `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null" json:"cpf"`
	RG          string      `gorm:"column:rg;type:varchar(14);not null" json:"rg"`
	Email       string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	DataNasc    time.Time   `json:"dataNasc"`
	EstadoCivil EstadoCivil `gorm:"type:varchar(15)" json:"estadoCivil"`
	Profissao   string      `gorm:"type:varchar(60)" json:"profissao"`
	Senha       string      `gorm:"type:varchar(100);not null" json:"-"`
	Ativo       bool        `gorm:"default:true" json:"ativo"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`

	// Relations
	Residencias []Residencia `gorm:"foreignKey:ClienteID" json:"residencias,omitempty"`
	Contatos    []Contato    `gorm:"foreignKey:ClienteID" json:"contatos,omitempty"`
}

// BeforeCreate assigns the UUID and hashes the password when a plain
// one was provided
func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Senha != "" && len(c.Senha) < 60 {
		hash, err := utils.HashPassword(c.Senha)
		if err != nil {
			return err
		}
		c.Senha = hash
	}
	return nil
}
