package models

import (
	"time"

	"github.com/Hellwig19/Com-Dominium-API/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin is a staff account. Nivel drives the permission table:
// 2 = síndico/administração, 3 = portaria, 5 = super-admin.
type Admin struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Nome      string    `gorm:"type:varchar(100);not null" json:"nome"`
	CPF       string    `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null" json:"cpf"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"type:varchar(100);not null" json:"-"`
	Nivel     int       `gorm:"not null;default:2" json:"nivel"`
	Ativo     bool      `gorm:"default:true" json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Senha != "" && len(a.Senha) < 60 {
		hash, err := utils.HashPassword(a.Senha)
		if err != nil {
			return err
		}
		a.Senha = hash
	}
	return nil
}

// LogAdmin is the audit trail for sensitive admin actions
// (deactivations, deletions).
type LogAdmin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Descricao   string    `gorm:"type:varchar(191);not null" json:"descricao"`
	Complemento string    `gorm:"type:varchar(191)" json:"complemento"`
	AdminID     string    `gorm:"type:varchar(36);not null" json:"adminId"`
	CreatedAt   time.Time `json:"createdAt"`
}
