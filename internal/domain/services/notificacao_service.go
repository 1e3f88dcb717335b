package services

import (
	"errors"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceNotificacaoService defines the notification service interface
type InterfaceNotificacaoService interface {
	GetNotificacoesByCliente(clienteID string) ([]models.Notificacao, error)
	CountNaoLidas(clienteID string) (int64, error)
	CreateNotificacao(notificacao *models.Notificacao) error
	MarcarLida(id uint, clienteID string) (*models.Notificacao, error)
	MarcarTodasLidas(clienteID string) error
	DeleteNotificacao(id uint, clienteID string) error
}

// NotificacaoService manages per-resident notifications. The unread
// counter is cached in Redis and pushed over MQTT on creation; both are
// optional and the database remains the source of truth.
type NotificacaoService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService
	MQTT   InterfaceMQTTService
}

// NewNotificacaoService creates a new notification service
func NewNotificacaoService(db *gorm.DB, cfg *config.Config, redis InterfaceRedisService, mqtt InterfaceMQTTService) InterfaceNotificacaoService {
	return &NotificacaoService{
		DB:     db,
		Config: cfg,
		Redis:  redis,
		MQTT:   mqtt,
	}
}

func (s *NotificacaoService) GetNotificacoesByCliente(clienteID string) ([]models.Notificacao, error) {
	var notificacoes []models.Notificacao
	if err := s.DB.Where("cliente_id = ?", clienteID).
		Order("data DESC").Limit(20).Find(&notificacoes).Error; err != nil {
		return nil, err
	}
	return notificacoes, nil
}

func (s *NotificacaoService) CountNaoLidas(clienteID string) (int64, error) {
	if s.Redis != nil {
		if count, ok := s.Redis.GetNaoLidas(clienteID); ok {
			return count, nil
		}
	}

	var count int64
	if err := s.DB.Model(&models.Notificacao{}).
		Where("cliente_id = ? AND lida = ?", clienteID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	if s.Redis != nil {
		_ = s.Redis.CacheNaoLidas(clienteID, count)
	}
	return count, nil
}

func (s *NotificacaoService) CreateNotificacao(notificacao *models.Notificacao) error {
	if err := s.DB.Create(notificacao).Error; err != nil {
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.InvalidateNaoLidas(notificacao.ClienteID)
	}
	if s.MQTT != nil {
		_ = s.MQTT.PublishNotificacao(notificacao.ClienteID, notificacao.Mensagem)
	}
	return nil
}

// MarcarLida only touches notifications owned by the requester
func (s *NotificacaoService) MarcarLida(id uint, clienteID string) (*models.Notificacao, error) {
	var notificacao models.Notificacao
	if err := s.DB.Where("id = ? AND cliente_id = ?", id, clienteID).
		First(&notificacao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	if err := s.DB.Model(&notificacao).Update("lida", true).Error; err != nil {
		return nil, err
	}
	if s.Redis != nil {
		_ = s.Redis.InvalidateNaoLidas(clienteID)
	}
	notificacao.Lida = true
	return &notificacao, nil
}

func (s *NotificacaoService) MarcarTodasLidas(clienteID string) error {
	if err := s.DB.Model(&models.Notificacao{}).
		Where("cliente_id = ? AND lida = ?", clienteID, false).
		Update("lida", true).Error; err != nil {
		return err
	}
	if s.Redis != nil {
		_ = s.Redis.InvalidateNaoLidas(clienteID)
	}
	return nil
}

func (s *NotificacaoService) DeleteNotificacao(id uint, clienteID string) error {
	result := s.DB.Where("id = ? AND cliente_id = ?", id, clienteID).
		Delete(&models.Notificacao{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNaoEncontrado
	}
	if s.Redis != nil {
		_ = s.Redis.InvalidateNaoLidas(clienteID)
	}
	return nil
}
