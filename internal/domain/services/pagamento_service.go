package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"

	"gorm.io/gorm"
)

// InterfacePagamentoService defines the payment service interface
type InterfacePagamentoService interface {
	GetAllPagamentos() ([]models.Pagamento, error)
	GetPagamentosByCliente(clienteID string) ([]models.Pagamento, error)
	GetPagamentoByID(id uint) (*models.Pagamento, error)
	CreatePagamento(pagamento *models.Pagamento) error
	Pagar(id uint, metodo models.MetodoPagamento) (*models.Pagamento, error)
	DeletePagamento(id uint) error
}

// PagamentoService settles payments. Paying a reservation boleto also
// confirms the pending reservation it was generated for, matched by
// the "Reserva " prefix and the exact amount. The match is best effort:
// when it finds nothing the payment still settles normally.
type PagamentoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPagamentoService creates a new payment service
func NewPagamentoService(db *gorm.DB, cfg *config.Config) InterfacePagamentoService {
	return &PagamentoService{
		DB:     db,
		Config: cfg,
	}
}

func (s *PagamentoService) GetAllPagamentos() ([]models.Pagamento, error) {
	var pagamentos []models.Pagamento
	if err := s.DB.Preload("Cliente").Order("data_vencimento DESC").Find(&pagamentos).Error; err != nil {
		return nil, err
	}
	return pagamentos, nil
}

func (s *PagamentoService) GetPagamentosByCliente(clienteID string) ([]models.Pagamento, error) {
	var pagamentos []models.Pagamento
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data_vencimento DESC").Find(&pagamentos).Error; err != nil {
		return nil, err
	}
	return pagamentos, nil
}

func (s *PagamentoService) GetPagamentoByID(id uint) (*models.Pagamento, error) {
	var pagamento models.Pagamento
	if err := s.DB.First(&pagamento, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &pagamento, nil
}

// CreatePagamento registers a standalone charge (condominium fee,
// fine). Reservation boletos are created by the reservation flow.
func (s *PagamentoService) CreatePagamento(pagamento *models.Pagamento) error {
	var cliente models.Cliente
	if err := s.DB.First(&cliente, "id = ?", pagamento.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	pagamento.Status = models.PagamentoPendente
	return s.DB.Create(pagamento).Error
}

// Pagar settles the payment and reconciles the reservation it may
// belong to, all inside one transaction. The status filter on the
// update is the double-settlement guard: two concurrent calls both
// reach the update, but only one flips the row.
func (s *PagamentoService) Pagar(id uint, metodo models.MetodoPagamento) (*models.Pagamento, error) {
	pagamento, err := s.GetPagamentoByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		agora := time.Now()
		updates := map[string]interface{}{
			"status":         models.PagamentoPago,
			"data_pagamento": &agora,
		}
		if metodo != "" {
			updates["metodo_pagamento"] = metodo
		}
		result := tx.Model(&models.Pagamento{}).
			Where("id = ? AND status = ?", id, models.PagamentoPendente).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPagamentoJaPago
		}
		return s.confirmaReserva(tx, pagamento)
	})
	if err != nil {
		return nil, err
	}
	return s.GetPagamentoByID(id)
}

// confirmaReserva flips the oldest pending reservation of the same
// cliente with the exact amount of the boleto. The description prefix
// plus the amount is the whole correlation; no match is not an error.
func (s *PagamentoService) confirmaReserva(tx *gorm.DB, pagamento *models.Pagamento) error {
	if !strings.HasPrefix(pagamento.Boletos, models.BoletosPrefixoReserva) {
		return nil
	}

	var reserva models.Reserva
	err := tx.Where("cliente_id = ? AND valor = ? AND status = ?",
		pagamento.ClienteID, pagamento.Valor, models.ReservaPendente).
		Order("created_at ASC").First(&reserva).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warning("Pagamento %d liquidado sem reserva pendente correspondente (%s)",
				pagamento.ID, pagamento.Boletos)
			return nil
		}
		return err
	}
	err = tx.Model(&reserva).Updates(map[string]interface{}{
		"status":           models.ReservaConfirmada,
		"chave_confirmada": reserva.ChaveDia(),
	}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Another booking already holds the slot; the match is best
		// effort, so the payment still settles
		logger.Warning("Pagamento %d liquidado sem confirmar a reserva %d: slot já confirmado",
			pagamento.ID, reserva.ID)
		return nil
	}
	return err
}

func (s *PagamentoService) DeletePagamento(id uint) error {
	pagamento, err := s.GetPagamentoByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(pagamento).Error
}
