package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceReservaService defines the reservation service interface
type InterfaceReservaService interface {
	GetAllReservas() ([]models.Reserva, error)
	GetReservasByCliente(clienteID string) ([]models.Reserva, error)
	GetDatasOcupadas(area string) ([]time.Time, error)
	GetReservaByID(id uint) (*models.Reserva, error)
	CreateReserva(reserva *models.Reserva) (*models.Reserva, *models.Pagamento, error)
	AtualizarStatus(id uint, status models.StatusReserva) (*models.Reserva, error)
	CancelarReserva(id uint) (*models.Reserva, error)
	DeleteReserva(id uint) error
}

// ReservaService books common areas. Creation is atomic with the
// matching payment: the reservation starts PENDENTE and only flips to
// CONFIRMADA when the payment is settled.
type ReservaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReservaService creates a new reservation service
func NewReservaService(db *gorm.DB, cfg *config.Config) InterfaceReservaService {
	return &ReservaService{
		DB:     db,
		Config: cfg,
	}
}

func (s *ReservaService) GetAllReservas() ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.DB.Preload("Cliente").Order("data_reserva DESC").Find(&reservas).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

func (s *ReservaService) GetReservasByCliente(clienteID string) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data_reserva DESC").Find(&reservas).Error; err != nil {
		return nil, err
	}
	return reservas, nil
}

// GetDatasOcupadas lists the confirmed booking dates of one area, used
// by the calendar on the booking screen
func (s *ReservaService) GetDatasOcupadas(area string) ([]time.Time, error) {
	var datas []time.Time
	if err := s.DB.Model(&models.Reserva{}).
		Where("area = ? AND status = ?", area, models.ReservaConfirmada).
		Order("data_reserva ASC").
		Pluck("data_reserva", &datas).Error; err != nil {
		return nil, err
	}
	return datas, nil
}

func (s *ReservaService) GetReservaByID(id uint) (*models.Reserva, error) {
	var reserva models.Reserva
	if err := s.DB.Preload("Cliente").First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &reserva, nil
}

// CreateReserva runs the whole booking inside one transaction: the
// conflict check against live reservations for the same area and day,
// the reservation insert and the payment insert. If any step fails
// nothing is persisted. The payment carries the "Reserva " prefix in
// Boletos plus the exact amount, which is the only link back from the
// payment side.
func (s *ReservaService) CreateReserva(reserva *models.Reserva) (*models.Reserva, *models.Pagamento, error) {
	var area models.AreaComum
	if err := s.DB.Where("nome = ?", reserva.Area).First(&area).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		// Areas not in the catalog keep working with the values sent
		// by the client (legacy behavior)
	} else {
		if area.Status != models.AreaAtiva {
			return nil, nil, ErrAreaIndisponivel
		}
		reserva.Valor = area.Preco
		if reserva.Capacidade == 0 || reserva.Capacidade > area.Capacidade {
			reserva.Capacidade = area.Capacidade
		}
	}

	if reserva.DataReserva.Before(time.Now()) {
		return nil, nil, ErrReservaDataPassada
	}

	var pagamento *models.Pagamento
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		inicio := reserva.DataReserva.Truncate(24 * time.Hour)
		fim := inicio.Add(24 * time.Hour)

		var count int64
		if err := tx.Model(&models.Reserva{}).
			Where("area = ? AND data_reserva >= ? AND data_reserva < ? AND status != ?",
				reserva.Area, inicio, fim, models.ReservaCancelada).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrReservaConflito
		}

		reserva.Status = models.ReservaPendente
		if err := tx.Create(reserva).Error; err != nil {
			return err
		}

		pagamento = &models.Pagamento{
			Boletos:         fmt.Sprintf("%s%s - %s", models.BoletosPrefixoReserva, reserva.Area, reserva.Horario),
			DataVencimento:  reserva.DataReserva,
			Valor:           reserva.Valor,
			MetodoPagamento: models.MetodoBoleto,
			Status:          models.PagamentoPendente,
			ClienteID:       reserva.ClienteID,
		}
		return tx.Create(pagamento).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return reserva, pagamento, nil
}

// AtualizarStatus is the administrative transition. Confirming re-runs
// the conflict check against other live reservations for the same area
// and day; the unique index on chave_confirmada is the storage-level
// backstop when two confirmations race past it.
func (s *ReservaService) AtualizarStatus(id uint, status models.StatusReserva) (*models.Reserva, error) {
	if status == models.ReservaCancelada {
		return s.CancelarReserva(id)
	}

	reserva, err := s.GetReservaByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":           status,
			"chave_confirmada": nil,
		}
		if status == models.ReservaConfirmada {
			inicio := reserva.DataReserva.Truncate(24 * time.Hour)
			fim := inicio.Add(24 * time.Hour)

			var count int64
			if err := tx.Model(&models.Reserva{}).
				Where("area = ? AND data_reserva >= ? AND data_reserva < ? AND status = ? AND id != ?",
					reserva.Area, inicio, fim, models.ReservaConfirmada, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrReservaConflito
			}
			updates["chave_confirmada"] = reserva.ChaveDia()
		}
		return tx.Model(&models.Reserva{}).Where("id = ?", id).
			Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrReservaConflito
		}
		return nil, err
	}
	return s.GetReservaByID(id)
}

// CancelarReserva cancels the booking and drops the still-unpaid
// payment that matches it by prefix and amount. A payment already
// settled is left alone.
func (s *ReservaService) CancelarReserva(id uint) (*models.Reserva, error) {
	reserva, err := s.GetReservaByID(id)
	if err != nil {
		return nil, err
	}
	if reserva.Status == models.ReservaCancelada {
		return reserva, nil
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Reserva{}).Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":           models.ReservaCancelada,
				"chave_confirmada": nil,
			}).Error; err != nil {
			return err
		}
		boletos := fmt.Sprintf("%s%s - %s", models.BoletosPrefixoReserva, reserva.Area, reserva.Horario)
		return tx.Where("cliente_id = ? AND boletos = ? AND valor = ? AND status = ?",
			reserva.ClienteID, boletos, reserva.Valor, models.PagamentoPendente).
			Delete(&models.Pagamento{}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetReservaByID(id)
}

func (s *ReservaService) DeleteReserva(id uint) error {
	reserva, err := s.GetReservaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(reserva).Error
}
