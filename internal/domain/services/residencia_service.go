package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceResidenciaService defines the residence service interface
type InterfaceResidenciaService interface {
	GetAllResidencias() ([]models.Residencia, error)
	GetResidenciasByCliente(clienteID string) ([]models.Residencia, error)
	GetResidenciaByID(id uint) (*models.Residencia, error)
	CreateResidencia(residencia *models.Residencia) error
	UpdateResidencia(id uint, updates map[string]interface{}) (*models.Residencia, error)
	DeleteResidencia(id uint) error
}

// ResidenciaService manages the units of the condominium
type ResidenciaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResidenciaService creates a new residence service
func NewResidenciaService(db *gorm.DB, cfg *config.Config) InterfaceResidenciaService {
	return &ResidenciaService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ResidenciaService) GetAllResidencias() ([]models.Residencia, error) {
	var residencias []models.Residencia
	if err := s.DB.Preload("Cliente").Order("numero_casa ASC").Find(&residencias).Error; err != nil {
		return nil, err
	}
	return residencias, nil
}

func (s *ResidenciaService) GetResidenciasByCliente(clienteID string) ([]models.Residencia, error) {
	var residencias []models.Residencia
	if err := s.DB.Where("cliente_id = ?", clienteID).Find(&residencias).Error; err != nil {
		return nil, err
	}
	return residencias, nil
}

func (s *ResidenciaService) GetResidenciaByID(id uint) (*models.Residencia, error) {
	var residencia models.Residencia
	if err := s.DB.Preload("Cliente").First(&residencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &residencia, nil
}

func (s *ResidenciaService) CreateResidencia(residencia *models.Residencia) error {
	var cliente models.Cliente
	if err := s.DB.First(&cliente, "id = ?", residencia.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	return s.DB.Create(residencia).Error
}

func (s *ResidenciaService) UpdateResidencia(id uint, updates map[string]interface{}) (*models.Residencia, error) {
	if _, err := s.GetResidenciaByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Residencia{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetResidenciaByID(id)
}

// DeleteResidencia removes the unit and its occupants/vehicles together
func (s *ResidenciaService) DeleteResidencia(id uint) error {
	if _, err := s.GetResidenciaByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("residencia_id = ?", id).Delete(&models.Morador{}).Error; err != nil {
			return err
		}
		if err := tx.Where("residencia_id = ?", id).Delete(&models.Veiculo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Residencia{}, id).Error
	})
}
