package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/utils"

	"gorm.io/gorm"
)

// InterfaceEncomendaService defines the package service interface
type InterfaceEncomendaService interface {
	GetAllEncomendas() ([]models.Encomenda, error)
	GetEncomendasByCliente(clienteID string) ([]models.Encomenda, error)
	GetEncomendasPendentes() ([]models.Encomenda, error)
	GetEncomendaByID(id uint) (*models.Encomenda, error)
	RegistrarChegada(encomenda *models.Encomenda) error
	RegistrarRetirada(id uint, adminID string) (*models.Encomenda, error)
	DeleteEncomenda(id uint) error
}

// EncomendaService registers package arrivals and pickups at the front
// desk. Arrival generates the pickup code and notifies the resident.
type EncomendaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEncomendaService creates a new package service
func NewEncomendaService(db *gorm.DB, cfg *config.Config) InterfaceEncomendaService {
	return &EncomendaService{
		DB:     db,
		Config: cfg,
	}
}

func (s *EncomendaService) GetAllEncomendas() ([]models.Encomenda, error) {
	var encomendas []models.Encomenda
	if err := s.DB.Order("data_chegada DESC").Find(&encomendas).Error; err != nil {
		return nil, err
	}
	return encomendas, nil
}

func (s *EncomendaService) GetEncomendasByCliente(clienteID string) ([]models.Encomenda, error) {
	var encomendas []models.Encomenda
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data_chegada DESC").Find(&encomendas).Error; err != nil {
		return nil, err
	}
	return encomendas, nil
}

func (s *EncomendaService) GetEncomendasPendentes() ([]models.Encomenda, error) {
	var encomendas []models.Encomenda
	if err := s.DB.Where("status = ?", models.EncomendaAguardandoRetirada).
		Order("data_chegada ASC").Find(&encomendas).Error; err != nil {
		return nil, err
	}
	return encomendas, nil
}

func (s *EncomendaService) GetEncomendaByID(id uint) (*models.Encomenda, error) {
	var encomenda models.Encomenda
	if err := s.DB.First(&encomenda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &encomenda, nil
}

// RegistrarChegada stores the package with a fresh pickup code and
// writes the resident notification in the same transaction
func (s *EncomendaService) RegistrarChegada(encomenda *models.Encomenda) error {
	var cliente models.Cliente
	if err := s.DB.First(&cliente, "id = ?", encomenda.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}

	encomenda.Codigo = utils.GerarCodigoRetirada()
	encomenda.Status = models.EncomendaAguardandoRetirada
	if encomenda.DataChegada.IsZero() {
		encomenda.DataChegada = time.Now()
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(encomenda).Error; err != nil {
			return err
		}
		return tx.Create(&models.Notificacao{
			Mensagem:  fmt.Sprintf("Encomenda de %s chegou na portaria. Código de retirada: %s", encomenda.Remetente, encomenda.Codigo),
			ClienteID: encomenda.ClienteID,
		}).Error
	})
}

// RegistrarRetirada closes the package, recording who handed it over
func (s *EncomendaService) RegistrarRetirada(id uint, adminID string) (*models.Encomenda, error) {
	encomenda, err := s.GetEncomendaByID(id)
	if err != nil {
		return nil, err
	}
	if encomenda.Status == models.EncomendaEntregue {
		return nil, ErrEncomendaEntregue
	}

	agora := time.Now()
	updates := map[string]interface{}{
		"status":        models.EncomendaEntregue,
		"data_retirada": &agora,
	}
	if adminID != "" {
		updates["admin_entrega_id"] = adminID
	}
	if err := s.DB.Model(encomenda).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetEncomendaByID(id)
}

func (s *EncomendaService) DeleteEncomenda(id uint) error {
	encomenda, err := s.GetEncomendaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(encomenda).Error
}
