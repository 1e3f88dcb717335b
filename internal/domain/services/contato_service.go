package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceContatoService defines the contact service interface
type InterfaceContatoService interface {
	GetContatosByCliente(clienteID string) ([]models.Contato, error)
	GetContatoByID(id uint) (*models.Contato, error)
	CreateContato(contato *models.Contato) error
	UpdateContato(id uint, updates map[string]interface{}) (*models.Contato, error)
	DeleteContato(id uint) error
}

// ContatoService manages resident contact channels
type ContatoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContatoService creates a new contact service
func NewContatoService(db *gorm.DB, cfg *config.Config) InterfaceContatoService {
	return &ContatoService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ContatoService) GetContatosByCliente(clienteID string) ([]models.Contato, error) {
	var contatos []models.Contato
	if err := s.DB.Where("cliente_id = ?", clienteID).Find(&contatos).Error; err != nil {
		return nil, err
	}
	return contatos, nil
}

func (s *ContatoService) GetContatoByID(id uint) (*models.Contato, error) {
	var contato models.Contato
	if err := s.DB.First(&contato, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &contato, nil
}

func (s *ContatoService) CreateContato(contato *models.Contato) error {
	var cliente models.Cliente
	if err := s.DB.First(&cliente, "id = ?", contato.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	return s.DB.Create(contato).Error
}

func (s *ContatoService) UpdateContato(id uint, updates map[string]interface{}) (*models.Contato, error) {
	if _, err := s.GetContatoByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Contato{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetContatoByID(id)
}

func (s *ContatoService) DeleteContato(id uint) error {
	contato, err := s.GetContatoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(contato).Error
}
