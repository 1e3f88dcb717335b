package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfaceMoradorService defines the occupant service interface
type InterfaceMoradorService interface {
	GetAllMoradores() ([]models.Morador, error)
	GetMoradoresByCliente(clienteID string) ([]models.Morador, error)
	GetMoradorByID(id uint) (*models.Morador, error)
	CreateMorador(morador *models.Morador) error
	UpdateMorador(id uint, updates map[string]interface{}) (*models.Morador, error)
	DeleteMorador(id uint) error
}

// MoradorService manages occupants registered under residences
type MoradorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMoradorService creates a new occupant service
func NewMoradorService(db *gorm.DB, cfg *config.Config) InterfaceMoradorService {
	return &MoradorService{
		DB:     db,
		Config: cfg,
	}
}

func (s *MoradorService) GetAllMoradores() ([]models.Morador, error) {
	var moradores []models.Morador
	if err := s.DB.Order("nome ASC").Find(&moradores).Error; err != nil {
		return nil, err
	}
	return moradores, nil
}

func (s *MoradorService) GetMoradoresByCliente(clienteID string) ([]models.Morador, error) {
	var moradores []models.Morador
	if err := s.DB.Where("cliente_id = ?", clienteID).Find(&moradores).Error; err != nil {
		return nil, err
	}
	return moradores, nil
}

func (s *MoradorService) GetMoradorByID(id uint) (*models.Morador, error) {
	var morador models.Morador
	if err := s.DB.First(&morador, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &morador, nil
}

func (s *MoradorService) CreateMorador(morador *models.Morador) error {
	var residencia models.Residencia
	if err := s.DB.First(&residencia, morador.ResidenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	// The occupant always belongs to the residence owner
	morador.ClienteID = residencia.ClienteID
	morador.CPF = utils.LimpaCPF(morador.CPF)
	return s.DB.Create(morador).Error
}

func (s *MoradorService) UpdateMorador(id uint, updates map[string]interface{}) (*models.Morador, error) {
	if _, err := s.GetMoradorByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Morador{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetMoradorByID(id)
}

func (s *MoradorService) DeleteMorador(id uint) error {
	morador, err := s.GetMoradorByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(morador).Error
}
