package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceSugestaoService defines the suggestion service interface
type InterfaceSugestaoService interface {
	GetAllSugestoes() ([]models.Sugestao, error)
	GetSugestoesByCliente(clienteID string) ([]models.Sugestao, error)
	GetSugestaoByID(id uint) (*models.Sugestao, error)
	CreateSugestao(sugestao *models.Sugestao) error
	MarcarLida(id uint) (*models.Sugestao, error)
	DeleteSugestao(id uint) error
}

// SugestaoService channels resident suggestions to the administration
type SugestaoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSugestaoService creates a new suggestion service
func NewSugestaoService(db *gorm.DB, cfg *config.Config) InterfaceSugestaoService {
	return &SugestaoService{
		DB:     db,
		Config: cfg,
	}
}

func (s *SugestaoService) GetAllSugestoes() ([]models.Sugestao, error) {
	var sugestoes []models.Sugestao
	if err := s.DB.Preload("Cliente").Order("data DESC").Find(&sugestoes).Error; err != nil {
		return nil, err
	}
	return sugestoes, nil
}

func (s *SugestaoService) GetSugestoesByCliente(clienteID string) ([]models.Sugestao, error) {
	var sugestoes []models.Sugestao
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data DESC").Find(&sugestoes).Error; err != nil {
		return nil, err
	}
	return sugestoes, nil
}

func (s *SugestaoService) GetSugestaoByID(id uint) (*models.Sugestao, error) {
	var sugestao models.Sugestao
	if err := s.DB.Preload("Cliente").First(&sugestao, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &sugestao, nil
}

func (s *SugestaoService) CreateSugestao(sugestao *models.Sugestao) error {
	return s.DB.Create(sugestao).Error
}

// MarcarLida is the administration acknowledging the suggestion
func (s *SugestaoService) MarcarLida(id uint) (*models.Sugestao, error) {
	sugestao, err := s.GetSugestaoByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(sugestao).Update("lido", true).Error; err != nil {
		return nil, err
	}
	sugestao.Lido = true
	return sugestao, nil
}

func (s *SugestaoService) DeleteSugestao(id uint) error {
	sugestao, err := s.GetSugestaoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(sugestao).Error
}
