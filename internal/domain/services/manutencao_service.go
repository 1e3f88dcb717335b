package services

import (
	"errors"
	"fmt"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceManutencaoService defines the maintenance-ticket interface
type InterfaceManutencaoService interface {
	GetAllManutencoes() ([]models.Manutencao, error)
	GetManutencoesByCliente(clienteID string) ([]models.Manutencao, error)
	GetManutencaoByID(id uint) (*models.Manutencao, error)
	CreateManutencao(manutencao *models.Manutencao) error
	AlterarPrioridade(id uint, prioridade bool) (*models.Manutencao, error)
	Concluir(id uint) (*models.Manutencao, error)
	DeleteManutencao(id uint) error
}

// ManutencaoService tracks maintenance tickets. Concluding a ticket
// notifies the resident who opened it.
type ManutencaoService struct {
	DB           *gorm.DB
	Config       *config.Config
	Notificacoes InterfaceNotificacaoService
}

// NewManutencaoService creates a new maintenance service
func NewManutencaoService(db *gorm.DB, cfg *config.Config, notificacoes InterfaceNotificacaoService) InterfaceManutencaoService {
	return &ManutencaoService{
		DB:           db,
		Config:       cfg,
		Notificacoes: notificacoes,
	}
}

func (s *ManutencaoService) GetAllManutencoes() ([]models.Manutencao, error) {
	var manutencoes []models.Manutencao
	// Open priority tickets first, then by age. PENDENTE > CONCLUIDO,
	// so DESC keeps the open ones on top.
	if err := s.DB.Preload("Cliente").
		Order("status DESC, prioridade DESC, data ASC").
		Find(&manutencoes).Error; err != nil {
		return nil, err
	}
	return manutencoes, nil
}

func (s *ManutencaoService) GetManutencoesByCliente(clienteID string) ([]models.Manutencao, error) {
	var manutencoes []models.Manutencao
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data DESC").Find(&manutencoes).Error; err != nil {
		return nil, err
	}
	return manutencoes, nil
}

func (s *ManutencaoService) GetManutencaoByID(id uint) (*models.Manutencao, error) {
	var manutencao models.Manutencao
	if err := s.DB.Preload("Cliente").First(&manutencao, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &manutencao, nil
}

func (s *ManutencaoService) CreateManutencao(manutencao *models.Manutencao) error {
	manutencao.Status = models.ManutencaoPendente
	return s.DB.Create(manutencao).Error
}

// AlterarPrioridade flags or unflags the ticket as urgent
func (s *ManutencaoService) AlterarPrioridade(id uint, prioridade bool) (*models.Manutencao, error) {
	manutencao, err := s.GetManutencaoByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(manutencao).Update("prioridade", prioridade).Error; err != nil {
		return nil, err
	}
	manutencao.Prioridade = prioridade
	return manutencao, nil
}

// Concluir closes the ticket and notifies the resident
func (s *ManutencaoService) Concluir(id uint) (*models.Manutencao, error) {
	manutencao, err := s.GetManutencaoByID(id)
	if err != nil {
		return nil, err
	}
	if manutencao.Status == models.ManutencaoConcluido {
		return nil, ErrManutencaoConcluida
	}

	if err := s.DB.Model(manutencao).
		Update("status", models.ManutencaoConcluido).Error; err != nil {
		return nil, err
	}

	if s.Notificacoes != nil {
		_ = s.Notificacoes.CreateNotificacao(&models.Notificacao{
			Mensagem:  fmt.Sprintf("Sua solicitação de manutenção \"%s\" foi concluída", manutencao.Titulo),
			ClienteID: manutencao.ClienteID,
		})
	}
	return s.GetManutencaoByID(id)
}

func (s *ManutencaoService) DeleteManutencao(id uint) error {
	manutencao, err := s.GetManutencaoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(manutencao).Error
}
