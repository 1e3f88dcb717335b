package services

import (
	"errors"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ResultadoOpcao aggregates the votes of one option
type ResultadoOpcao struct {
	OpcaoID uint   `json:"opcaoId"`
	Texto   string `json:"texto"`
	Votos   int64  `json:"votos"`
}

// ResultadoVotacao is the tally returned by the results endpoint
type ResultadoVotacao struct {
	Votacao    models.Votacao   `json:"votacao"`
	TotalVotos int64            `json:"totalVotos"`
	Resultados []ResultadoOpcao `json:"resultados"`
}

// InterfaceVotacaoService defines the poll service interface
type InterfaceVotacaoService interface {
	GetAllVotacoes() ([]models.Votacao, error)
	GetVotacaoByID(id uint) (*models.Votacao, error)
	CreateVotacao(votacao *models.Votacao, opcoes []string) error
	Votar(votacaoID, opcaoID uint, clienteID string) (*models.Voto, error)
	GetResultado(votacaoID uint) (*ResultadoVotacao, error)
	DeleteVotacao(id uint) error
}

// VotacaoService runs the condominium polls. One vote per resident per
// poll, enforced in the transaction and backed by the unique index.
type VotacaoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVotacaoService creates a new poll service
func NewVotacaoService(db *gorm.DB, cfg *config.Config) InterfaceVotacaoService {
	return &VotacaoService{
		DB:     db,
		Config: cfg,
	}
}

func (s *VotacaoService) GetAllVotacoes() ([]models.Votacao, error) {
	var votacoes []models.Votacao
	if err := s.DB.Preload("Opcoes").Order("data_inicio DESC").Find(&votacoes).Error; err != nil {
		return nil, err
	}
	return votacoes, nil
}

func (s *VotacaoService) GetVotacaoByID(id uint) (*models.Votacao, error) {
	var votacao models.Votacao
	if err := s.DB.Preload("Opcoes").First(&votacao, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &votacao, nil
}

// CreateVotacao stores the poll and its options together
func (s *VotacaoService) CreateVotacao(votacao *models.Votacao, opcoes []string) error {
	if len(opcoes) < 2 {
		return errors.New("votação exige pelo menos duas opções")
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(votacao).Error; err != nil {
			return err
		}
		registros := make([]models.OpcaoVotacao, 0, len(opcoes))
		for _, texto := range opcoes {
			registros = append(registros, models.OpcaoVotacao{
				Texto:     texto,
				VotacaoID: votacao.ID,
			})
		}
		return tx.Create(&registros).Error
	})
}

// Votar validates the window, the option ownership and the one-vote
// rule before inserting
func (s *VotacaoService) Votar(votacaoID, opcaoID uint, clienteID string) (*models.Voto, error) {
	votacao, err := s.GetVotacaoByID(votacaoID)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	if agora.Before(votacao.DataInicio) || agora.After(votacao.DataFim) {
		return nil, ErrVotacaoEncerrada
	}

	pertence := false
	for _, opcao := range votacao.Opcoes {
		if opcao.ID == opcaoID {
			pertence = true
			break
		}
	}
	if !pertence {
		return nil, ErrOpcaoInvalida
	}

	voto := &models.Voto{
		ClienteID: clienteID,
		VotacaoID: votacaoID,
		OpcaoID:   opcaoID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Voto{}).
			Where("cliente_id = ? AND votacao_id = ?", clienteID, votacaoID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrVotoDuplicado
		}
		return tx.Create(voto).Error
	})
	if err != nil {
		return nil, err
	}
	return voto, nil
}

func (s *VotacaoService) GetResultado(votacaoID uint) (*ResultadoVotacao, error) {
	votacao, err := s.GetVotacaoByID(votacaoID)
	if err != nil {
		return nil, err
	}

	resultado := &ResultadoVotacao{
		Votacao:    *votacao,
		Resultados: make([]ResultadoOpcao, 0, len(votacao.Opcoes)),
	}
	for _, opcao := range votacao.Opcoes {
		var votos int64
		if err := s.DB.Model(&models.Voto{}).
			Where("opcao_id = ?", opcao.ID).Count(&votos).Error; err != nil {
			return nil, err
		}
		resultado.Resultados = append(resultado.Resultados, ResultadoOpcao{
			OpcaoID: opcao.ID,
			Texto:   opcao.Texto,
			Votos:   votos,
		})
		resultado.TotalVotos += votos
	}
	return resultado, nil
}

func (s *VotacaoService) DeleteVotacao(id uint) error {
	if _, err := s.GetVotacaoByID(id); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("votacao_id = ?", id).Delete(&models.Voto{}).Error; err != nil {
			return err
		}
		if err := tx.Where("votacao_id = ?", id).Delete(&models.OpcaoVotacao{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Votacao{}, id).Error
	})
}
