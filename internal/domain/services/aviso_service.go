package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceAvisoService defines the announcement service interface
type InterfaceAvisoService interface {
	GetAllAvisos() ([]models.Aviso, error)
	GetAvisoByID(id uint) (*models.Aviso, error)
	CreateAviso(aviso *models.Aviso) error
	UpdateAviso(id uint, updates map[string]interface{}) (*models.Aviso, error)
	DeleteAviso(id uint) error
}

// AvisoService publishes administration announcements. New avisos go
// out on the MQTT broadcast topic as well.
type AvisoService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService
}

// NewAvisoService creates a new announcement service
func NewAvisoService(db *gorm.DB, cfg *config.Config, mqtt InterfaceMQTTService) InterfaceAvisoService {
	return &AvisoService{
		DB:     db,
		Config: cfg,
		MQTT:   mqtt,
	}
}

func (s *AvisoService) GetAllAvisos() ([]models.Aviso, error) {
	var avisos []models.Aviso
	if err := s.DB.Order("data DESC").Find(&avisos).Error; err != nil {
		return nil, err
	}
	return avisos, nil
}

func (s *AvisoService) GetAvisoByID(id uint) (*models.Aviso, error) {
	var aviso models.Aviso
	if err := s.DB.First(&aviso, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &aviso, nil
}

func (s *AvisoService) CreateAviso(aviso *models.Aviso) error {
	if aviso.Tipo == "" {
		aviso.Tipo = models.AvisoGeral
	}
	if err := s.DB.Create(aviso).Error; err != nil {
		return err
	}
	if s.MQTT != nil {
		_ = s.MQTT.PublishAviso(aviso.Titulo, aviso.Descricao, string(aviso.Tipo))
	}
	return nil
}

func (s *AvisoService) UpdateAviso(id uint, updates map[string]interface{}) (*models.Aviso, error) {
	if _, err := s.GetAvisoByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Aviso{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetAvisoByID(id)
}

func (s *AvisoService) DeleteAviso(id uint) error {
	aviso, err := s.GetAvisoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(aviso).Error
}
