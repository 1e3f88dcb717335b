package services

import (
	"errors"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfaceVisitaService defines the scheduled-visit service interface
type InterfaceVisitaService interface {
	GetAllVisitas() ([]models.Visita, error)
	GetVisitasByCliente(clienteID string) ([]models.Visita, error)
	GetVisitasDoDia() ([]models.Visita, error)
	GetVisitaByID(id uint) (*models.Visita, error)
	CreateVisita(visita *models.Visita) error
	UpdateVisita(id uint, updates map[string]interface{}) (*models.Visita, error)
	RegistrarEntrada(id uint) (*models.Visita, error)
	RegistrarSaida(id uint) (*models.Visita, error)
	DeleteVisita(id uint) error
}

// VisitaService manages visits scheduled by residents
type VisitaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisitaService creates a new visit service
func NewVisitaService(db *gorm.DB, cfg *config.Config) InterfaceVisitaService {
	return &VisitaService{
		DB:     db,
		Config: cfg,
	}
}

func (s *VisitaService) GetAllVisitas() ([]models.Visita, error) {
	var visitas []models.Visita
	if err := s.DB.Preload("Residencia").Order("data_visita DESC").Find(&visitas).Error; err != nil {
		return nil, err
	}
	return visitas, nil
}

func (s *VisitaService) GetVisitasByCliente(clienteID string) ([]models.Visita, error) {
	var visitas []models.Visita
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data_visita DESC").Find(&visitas).Error; err != nil {
		return nil, err
	}
	return visitas, nil
}

// GetVisitasDoDia lists the concierge working set: everything expected
// today plus whoever is still inside.
func (s *VisitaService) GetVisitasDoDia() ([]models.Visita, error) {
	inicio := time.Now().Truncate(24 * time.Hour)
	fim := inicio.Add(24 * time.Hour)

	var visitas []models.Visita
	if err := s.DB.Preload("Residencia").
		Where("(data_visita >= ? AND data_visita < ?) OR status = ?", inicio, fim, models.VisitaDentro).
		Order("horario ASC").Find(&visitas).Error; err != nil {
		return nil, err
	}
	return visitas, nil
}

func (s *VisitaService) GetVisitaByID(id uint) (*models.Visita, error) {
	var visita models.Visita
	if err := s.DB.Preload("Residencia").First(&visita, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &visita, nil
}

func (s *VisitaService) CreateVisita(visita *models.Visita) error {
	var residencia models.Residencia
	if err := s.DB.First(&residencia, visita.ResidenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	visita.ClienteID = residencia.ClienteID
	visita.CPF = utils.LimpaCPF(visita.CPF)
	visita.Status = models.VisitaAgendada
	return s.DB.Create(visita).Error
}

func (s *VisitaService) UpdateVisita(id uint, updates map[string]interface{}) (*models.Visita, error) {
	if _, err := s.GetVisitaByID(id); err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Visita{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVisitaByID(id)
}

// RegistrarEntrada marks the visitor as inside the condominium
func (s *VisitaService) RegistrarEntrada(id uint) (*models.Visita, error) {
	visita, err := s.GetVisitaByID(id)
	if err != nil {
		return nil, err
	}
	if visita.Status == models.VisitaSaiu {
		return nil, ErrVisitaEncerrada
	}
	agora := time.Now()
	updates := map[string]interface{}{
		"status":       models.VisitaDentro,
		"data_entrada": &agora,
	}
	if err := s.DB.Model(visita).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVisitaByID(id)
}

// RegistrarSaida closes the visit
func (s *VisitaService) RegistrarSaida(id uint) (*models.Visita, error) {
	visita, err := s.GetVisitaByID(id)
	if err != nil {
		return nil, err
	}
	if visita.Status == models.VisitaSaiu {
		return nil, ErrVisitaEncerrada
	}
	agora := time.Now()
	updates := map[string]interface{}{
		"status":     models.VisitaSaiu,
		"data_saida": &agora,
	}
	if err := s.DB.Model(visita).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetVisitaByID(id)
}

func (s *VisitaService) DeleteVisita(id uint) error {
	visita, err := s.GetVisitaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(visita).Error
}
