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

// VisitanteHoje is one row of the unified concierge panel: walk-ins
// already logged plus visits and service providers scheduled for today
// that have not arrived yet.
type VisitanteHoje struct {
	ID           string              `json:"id"`
	TipoOriginal string              `json:"tipoOriginal"`
	Nome         string              `json:"nome"`
	CPF          string              `json:"cpf"`
	NumeroCasa   string              `json:"numeroCasa"`
	Placa        string              `json:"placa,omitempty"`
	Status       models.StatusVisita `json:"status"`
	Horario      string              `json:"horario"`
	DataEntrada  *time.Time          `json:"dataEntrada"`
}

// InterfaceVisitanteService defines the gate-log service interface
type InterfaceVisitanteService interface {
	GetAllVisitantes() ([]models.Visitante, error)
	GetVisitantesDentro() ([]models.Visitante, error)
	GetVisitantesHoje() ([]VisitanteHoje, error)
	GetVisitanteByID(id uint) (*models.Visitante, error)
	RegistrarEntrada(visitante *models.Visitante) error
	RegistrarEntradaAgendada(visitante *models.Visitante) error
	RegistrarSaida(id uint) (*models.Visitante, error)
	DeleteVisitante(id uint) error
}

// VisitanteService is the walk-in gate log kept by the concierge.
// Arrivals and departures of people that were scheduled by a resident
// are propagated back to the matching visita/prestador rows by CPF.
type VisitanteService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewVisitanteService creates a new gate-log service
func NewVisitanteService(db *gorm.DB, cfg *config.Config) InterfaceVisitanteService {
	return &VisitanteService{
		DB:     db,
		Config: cfg,
	}
}

func hojeJanela() (time.Time, time.Time) {
	agora := time.Now()
	inicio := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	return inicio, inicio.Add(24 * time.Hour)
}

func (s *VisitanteService) GetAllVisitantes() ([]models.Visitante, error) {
	var visitantes []models.Visitante
	if err := s.DB.Order("data_entrada DESC").Limit(500).Find(&visitantes).Error; err != nil {
		return nil, err
	}
	return visitantes, nil
}

func (s *VisitanteService) GetVisitantesDentro() ([]models.Visitante, error) {
	var visitantes []models.Visitante
	if err := s.DB.Where("status = ?", models.VisitaDentro).
		Order("data_entrada ASC").Find(&visitantes).Error; err != nil {
		return nil, err
	}
	return visitantes, nil
}

// GetVisitantesHoje builds the unified panel: today's logged entries
// first, then visits and providers still scheduled for today.
func (s *VisitanteService) GetVisitantesHoje() ([]VisitanteHoje, error) {
	inicio, fim := hojeJanela()

	var visitantes []models.Visitante
	if err := s.DB.Where("data_entrada >= ? AND data_entrada < ?", inicio, fim).
		Order("data_entrada DESC").Find(&visitantes).Error; err != nil {
		return nil, err
	}

	var visitas []models.Visita
	if err := s.DB.Preload("Residencia").
		Where("data_visita >= ? AND data_visita < ? AND status = ?",
			inicio, fim, models.VisitaAgendada).
		Find(&visitas).Error; err != nil {
		return nil, err
	}

	var prestadores []models.Prestador
	if err := s.DB.Preload("Residencia").
		Where("data_servico >= ? AND data_servico < ? AND status = ?",
			inicio, fim, models.VisitaAgendada).
		Find(&prestadores).Error; err != nil {
		return nil, err
	}

	painel := make([]VisitanteHoje, 0, len(visitantes)+len(visitas)+len(prestadores))
	for _, v := range visitantes {
		entrada := v.DataEntrada
		painel = append(painel, VisitanteHoje{
			ID:           fmt.Sprintf("r-%d", v.ID),
			TipoOriginal: "REAL",
			Nome:         v.Nome,
			CPF:          v.CPF,
			NumeroCasa:   v.NumeroCasa,
			Placa:        v.Placa,
			Status:       v.Status,
			Horario:      entrada.Format("15:04"),
			DataEntrada:  &entrada,
		})
	}
	for _, v := range visitas {
		painel = append(painel, VisitanteHoje{
			ID:           fmt.Sprintf("v-%d", v.ID),
			TipoOriginal: "VISITA",
			Nome:         v.Nome,
			CPF:          v.CPF,
			NumeroCasa:   numeroCasaOuSN(v.Residencia),
			Status:       models.VisitaAgendada,
			Horario:      v.Horario,
		})
	}
	for _, p := range prestadores {
		painel = append(painel, VisitanteHoje{
			ID:           fmt.Sprintf("p-%d", p.ID),
			TipoOriginal: "PRESTADOR",
			Nome:         p.Nome,
			CPF:          p.CPF,
			NumeroCasa:   numeroCasaOuSN(p.Residencia),
			Status:       models.VisitaAgendada,
			Horario:      p.Horario,
		})
	}
	return painel, nil
}

func numeroCasaOuSN(residencia *models.Residencia) string {
	if residencia == nil || residencia.NumeroCasa == "" {
		return "S/N"
	}
	return residencia.NumeroCasa
}

func (s *VisitanteService) GetVisitanteByID(id uint) (*models.Visitante, error) {
	var visitante models.Visitante
	if err := s.DB.First(&visitante, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &visitante, nil
}

func (s *VisitanteService) RegistrarEntrada(visitante *models.Visitante) error {
	visitante.CPF = utils.LimpaCPF(visitante.CPF)
	visitante.Status = models.VisitaDentro
	if visitante.DataEntrada.IsZero() {
		visitante.DataEntrada = time.Now()
	}
	return s.DB.Create(visitante).Error
}

// RegistrarEntradaAgendada logs the arrival of someone a resident
// scheduled: besides creating the gate-log row it flips today's
// AGENDADA visitas and prestadores with the same CPF to DENTRO.
func (s *VisitanteService) RegistrarEntradaAgendada(visitante *models.Visitante) error {
	visitante.CPF = utils.LimpaCPF(visitante.CPF)
	inicio, fim := hojeJanela()

	var dentro int64
	if err := s.DB.Model(&models.Visitante{}).
		Where("cpf = ? AND data_entrada >= ? AND status = ?",
			visitante.CPF, inicio, models.VisitaDentro).
		Count(&dentro).Error; err != nil {
		return err
	}
	if dentro > 0 {
		return ErrVisitanteJaDentro
	}

	agora := time.Now()
	visitante.Status = models.VisitaDentro
	visitante.DataEntrada = agora

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(visitante).Error; err != nil {
			return err
		}
		chegada := map[string]interface{}{
			"status":       models.VisitaDentro,
			"data_entrada": &agora,
		}
		if err := tx.Model(&models.Visita{}).
			Where("cpf = ? AND data_visita >= ? AND data_visita < ? AND status = ?",
				visitante.CPF, inicio, fim, models.VisitaAgendada).
			Updates(chegada).Error; err != nil {
			return err
		}
		return tx.Model(&models.Prestador{}).
			Where("cpf = ? AND data_servico >= ? AND data_servico < ? AND status = ?",
				visitante.CPF, inicio, fim, models.VisitaAgendada).
			Updates(chegada).Error
	})
}

// RegistrarSaida closes the gate-log row and propagates the exit to
// today's visitas/prestadores still marked DENTRO for the same CPF.
func (s *VisitanteService) RegistrarSaida(id uint) (*models.Visitante, error) {
	visitante, err := s.GetVisitanteByID(id)
	if err != nil {
		return nil, err
	}
	if visitante.Status == models.VisitaSaiu {
		return nil, ErrVisitaEncerrada
	}

	agora := time.Now()
	inicio, fim := hojeJanela()
	saida := map[string]interface{}{
		"status":     models.VisitaSaiu,
		"data_saida": &agora,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(visitante).Updates(saida).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Visita{}).
			Where("cpf = ? AND data_visita >= ? AND data_visita < ? AND status = ?",
				visitante.CPF, inicio, fim, models.VisitaDentro).
			Updates(saida).Error; err != nil {
			return err
		}
		return tx.Model(&models.Prestador{}).
			Where("cpf = ? AND data_servico >= ? AND data_servico < ? AND status = ?",
				visitante.CPF, inicio, fim, models.VisitaDentro).
			Updates(saida).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetVisitanteByID(id)
}

func (s *VisitanteService) DeleteVisitante(id uint) error {
	visitante, err := s.GetVisitanteByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(visitante).Error
}
