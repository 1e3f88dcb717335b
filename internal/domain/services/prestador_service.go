package services

import (
	"errors"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfacePrestadorService defines the service-provider interface
type InterfacePrestadorService interface {
	GetAllPrestadores() ([]models.Prestador, error)
	GetPrestadoresByCliente(clienteID string) ([]models.Prestador, error)
	GetPrestadorByID(id uint) (*models.Prestador, error)
	CreatePrestador(prestador *models.Prestador) error
	UpdatePrestador(id uint, updates map[string]interface{}) (*models.Prestador, error)
	RegistrarEntrada(id uint) (*models.Prestador, error)
	RegistrarSaida(id uint) (*models.Prestador, error)
	DeletePrestador(id uint) error
}

// PrestadorService manages service-provider bookings. The entry/exit
// flow mirrors the visit lifecycle.
type PrestadorService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPrestadorService creates a new service-provider service
func NewPrestadorService(db *gorm.DB, cfg *config.Config) InterfacePrestadorService {
	return &PrestadorService{
		DB:     db,
		Config: cfg,
	}
}

func (s *PrestadorService) GetAllPrestadores() ([]models.Prestador, error) {
	var prestadores []models.Prestador
	if err := s.DB.Preload("Residencia").Order("data_servico DESC").Find(&prestadores).Error; err != nil {
		return nil, err
	}
	return prestadores, nil
}

func (s *PrestadorService) GetPrestadoresByCliente(clienteID string) ([]models.Prestador, error) {
	var prestadores []models.Prestador
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data_servico DESC").Find(&prestadores).Error; err != nil {
		return nil, err
	}
	return prestadores, nil
}

func (s *PrestadorService) GetPrestadorByID(id uint) (*models.Prestador, error) {
	var prestador models.Prestador
	if err := s.DB.Preload("Residencia").First(&prestador, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &prestador, nil
}

func (s *PrestadorService) CreatePrestador(prestador *models.Prestador) error {
	var residencia models.Residencia
	if err := s.DB.First(&residencia, prestador.ResidenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	prestador.ClienteID = residencia.ClienteID
	prestador.CPF = utils.LimpaCPF(prestador.CPF)
	prestador.Status = models.VisitaAgendada
	return s.DB.Create(prestador).Error
}

func (s *PrestadorService) UpdatePrestador(id uint, updates map[string]interface{}) (*models.Prestador, error) {
	if _, err := s.GetPrestadorByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Prestador{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetPrestadorByID(id)
}

func (s *PrestadorService) RegistrarEntrada(id uint) (*models.Prestador, error) {
	prestador, err := s.GetPrestadorByID(id)
	if err != nil {
		return nil, err
	}
	if prestador.Status == models.VisitaSaiu {
		return nil, ErrVisitaEncerrada
	}
	agora := time.Now()
	if err := s.DB.Model(prestador).Updates(map[string]interface{}{
		"status":       models.VisitaDentro,
		"data_entrada": &agora,
	}).Error; err != nil {
		return nil, err
	}
	return s.GetPrestadorByID(id)
}

func (s *PrestadorService) RegistrarSaida(id uint) (*models.Prestador, error) {
	prestador, err := s.GetPrestadorByID(id)
	if err != nil {
		return nil, err
	}
	if prestador.Status == models.VisitaSaiu {
		return nil, ErrVisitaEncerrada
	}
	agora := time.Now()
	if err := s.DB.Model(prestador).Updates(map[string]interface{}{
		"status":     models.VisitaSaiu,
		"data_saida": &agora,
	}).Error; err != nil {
		return nil, err
	}
	return s.GetPrestadorByID(id)
}

func (s *PrestadorService) DeletePrestador(id uint) error {
	prestador, err := s.GetPrestadorByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(prestador).Error
}
