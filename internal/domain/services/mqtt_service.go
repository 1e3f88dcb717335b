package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Topics published by the backend. Mobile/portaria clients subscribe
// to receive announcements and per-resident notifications in real time.
const (
	TopicAvisos       = "comdominium/avisos"
	TopicNotificacoes = "comdominium/notificacoes/%s" // per-cliente
)

// InterfaceMQTTService defines the MQTT publisher interface
type InterfaceMQTTService interface {
	Connect() error
	Disconnect()
	PublishAviso(titulo, descricao, tipo string) error
	PublishNotificacao(clienteID, mensagem string) error
}

// MQTTService publishes domain events to the broker. When the broker
// is disabled or unreachable the publish calls degrade to warnings so
// the HTTP flow never depends on it.
type MQTTService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex
	PublishMutex   sync.Mutex
}

type mqttEnvelope struct {
	Type      string                 `json:"type"`
	Timestamp int64                  `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

// NewMQTTService creates a new MQTT publisher
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	return &MQTTService{Config: cfg}
}

// Connect dials the broker. A no-op when MQTT is disabled.
func (s *MQTTService) Connect() error {
	if !s.Config.MQTTEnabled {
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBrokerURL).
		SetClientID(fmt.Sprintf("comdominium-api-%s", uuid.NewString()[:8])).
		SetUsername(s.Config.MQTTUsername).
		SetPassword(s.Config.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			s.setConnected(true)
			logger.Info("Conectado ao broker MQTT %s", s.Config.MQTTBrokerURL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			s.setConnected(false)
			logger.Warning("Conexão MQTT perdida: %v", err)
		})

	s.Client = mqtt.NewClient(opts)
	token := s.Client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return fmt.Errorf("timeout conectando ao broker MQTT")
	}
	return token.Error()
}

// Disconnect closes the broker connection gracefully
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.setConnected(false)
}

func (s *MQTTService) setConnected(v bool) {
	s.connectedMutex.Lock()
	s.IsConnected = v
	s.connectedMutex.Unlock()
}

func (s *MQTTService) connected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.IsConnected
}

// PublishAviso broadcasts a new announcement to every client
func (s *MQTTService) PublishAviso(titulo, descricao, tipo string) error {
	return s.publish(TopicAvisos, mqttEnvelope{
		Type:      "aviso",
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"titulo":    titulo,
			"descricao": descricao,
			"tipo":      tipo,
		},
	})
}

// PublishNotificacao pushes a notification to one resident's topic
func (s *MQTTService) PublishNotificacao(clienteID, mensagem string) error {
	return s.publish(fmt.Sprintf(TopicNotificacoes, clienteID), mqttEnvelope{
		Type:      "notificacao",
		Timestamp: time.Now().Unix(),
		Payload: map[string]interface{}{
			"mensagem": mensagem,
		},
	})
}

func (s *MQTTService) publish(topic string, envelope mqttEnvelope) error {
	if !s.Config.MQTTEnabled || !s.connected() {
		return nil
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	token := s.Client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(3 * time.Second) {
		logger.Warning("Timeout publicando em %s", topic)
		return nil
	}
	if err := token.Error(); err != nil {
		logger.Warning("Falha publicando em %s: %v", topic, err)
	}
	return nil
}
