package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfaceAdminService defines the admin service interface
type InterfaceAdminService interface {
	GetAllAdmins() ([]models.Admin, error)
	GetAdminByID(id string) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error
	UpdateAdmin(id string, updates map[string]interface{}) (*models.Admin, error)
	DeleteAdmin(id, requesterID string) error
	GetLogs() ([]models.LogAdmin, error)
	EnsureDefaultAdmin() error
}

// AdminService manages staff accounts and the audit log
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

func (s *AdminService) GetAllAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("nome ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (s *AdminService) GetAdminByID(id string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	admin.CPF = utils.LimpaCPF(admin.CPF)

	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("cpf = ?", admin.CPF).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCPFJaCadastrado
	}
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailJaCadastrado
	}

	return s.DB.Create(admin).Error
}

func (s *AdminService) UpdateAdmin(id string, updates map[string]interface{}) (*models.Admin, error) {
	if _, err := s.GetAdminByID(id); err != nil {
		return nil, err
	}

	if senha, ok := updates["senha"].(string); ok && senha != "" {
		hash, err := utils.HashPassword(senha)
		if err != nil {
			return nil, err
		}
		updates["senha"] = hash
	}

	if err := s.DB.Model(&models.Admin{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetAdminByID(id)
}

func (s *AdminService) DeleteAdmin(id, requesterID string) error {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Admin{}, "id = ?", id).Error; err != nil {
		return err
	}
	return s.DB.Create(&models.LogAdmin{
		Descricao:   "Excluiu administrador",
		Complemento: admin.Nome,
		AdminID:     requesterID,
	}).Error
}

func (s *AdminService) GetLogs() ([]models.LogAdmin, error) {
	var logs []models.LogAdmin
	if err := s.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureDefaultAdmin seeds the super-admin account on first boot so the
// system is never locked out
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.Admin{
		Nome:  "Administrador",
		CPF:   s.Config.DefaultAdminCPF,
		Email: "admin@comdominium.local",
		Senha: s.Config.DefaultAdminPassword,
		Nivel: 5,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("Conta super-admin padrão criada para o CPF %s", admin.CPF)
	return nil
}
