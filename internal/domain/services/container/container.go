package container

import (
	"sync"

	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer wires every service once and hands them to the
// controllers by name
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	mqttService  services.InterfaceMQTTService

	clienteService     services.InterfaceClienteService
	adminService       services.InterfaceAdminService
	cadastroService    services.InterfaceCadastroService
	residenciaService  services.InterfaceResidenciaService
	moradorService     services.InterfaceMoradorService
	veiculoService     services.InterfaceVeiculoService
	contatoService     services.InterfaceContatoService
	visitaService      services.InterfaceVisitaService
	prestadorService   services.InterfacePrestadorService
	visitanteService   services.InterfaceVisitanteService
	encomendaService   services.InterfaceEncomendaService
	reservaService     services.InterfaceReservaService
	pagamentoService   services.InterfacePagamentoService
	areaService        services.InterfaceAreaService
	avisoService       services.InterfaceAvisoService
	votacaoService     services.InterfaceVotacaoService
	sugestaoService    services.InterfaceSugestaoService
	manutencaoService  services.InterfaceManutencaoService
	notificacaoService services.InterfaceNotificacaoService
	atividadeService   services.InterfaceAtividadeService
	dashboardService   services.InterfaceDashboardService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes every
// service. Redis and MQTT are optional collaborators; their failures
// are logged and the HTTP surface keeps working without them.
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("conexão com o banco de dados é nil")
	}
	if cfg == nil {
		panic("configuração é nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	c.mqttService = services.NewMQTTService(c.config)
	if err := c.mqttService.Connect(); err != nil {
		logger.Warning("Falha ao conectar ao broker MQTT: %v", err)
	}

	c.clienteService = services.NewClienteService(c.db, c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.cadastroService = services.NewCadastroService(c.db, c.config)
	c.residenciaService = services.NewResidenciaService(c.db, c.config)
	c.moradorService = services.NewMoradorService(c.db, c.config)
	c.veiculoService = services.NewVeiculoService(c.db, c.config)
	c.contatoService = services.NewContatoService(c.db, c.config)
	c.visitaService = services.NewVisitaService(c.db, c.config)
	c.prestadorService = services.NewPrestadorService(c.db, c.config)
	c.visitanteService = services.NewVisitanteService(c.db, c.config)
	c.encomendaService = services.NewEncomendaService(c.db, c.config)
	c.reservaService = services.NewReservaService(c.db, c.config)
	c.pagamentoService = services.NewPagamentoService(c.db, c.config)
	c.areaService = services.NewAreaService(c.db, c.config)
	c.avisoService = services.NewAvisoService(c.db, c.config, c.mqttService)
	c.votacaoService = services.NewVotacaoService(c.db, c.config)
	c.sugestaoService = services.NewSugestaoService(c.db, c.config)
	c.notificacaoService = services.NewNotificacaoService(c.db, c.config, c.redisService, c.mqttService)
	c.manutencaoService = services.NewManutencaoService(c.db, c.config, c.notificacaoService)
	c.atividadeService = services.NewAtividadeService(c.db, c.config)
	c.dashboardService = services.NewDashboardService(c.db, c.config, c.redisService)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "cliente":
		return c.clienteService
	case "admin":
		return c.adminService
	case "cadastro":
		return c.cadastroService
	case "residencia":
		return c.residenciaService
	case "morador":
		return c.moradorService
	case "veiculo":
		return c.veiculoService
	case "contato":
		return c.contatoService
	case "visita":
		return c.visitaService
	case "prestador":
		return c.prestadorService
	case "visitante":
		return c.visitanteService
	case "encomenda":
		return c.encomendaService
	case "reserva":
		return c.reservaService
	case "pagamento":
		return c.pagamentoService
	case "area":
		return c.areaService
	case "aviso":
		return c.avisoService
	case "votacao":
		return c.votacaoService
	case "sugestao":
		return c.sugestaoService
	case "manutencao":
		return c.manutencaoService
	case "notificacao":
		return c.notificacaoService
	case "atividade":
		return c.atividadeService
	case "dashboard":
		return c.dashboardService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Close releases the long-lived collaborators (Redis pool, MQTT
// connection) during shutdown
func (c *ServiceContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mqttService != nil {
		c.mqttService.Disconnect()
	}
	if c.redisService != nil {
		if err := c.redisService.Close(); err != nil {
			logger.Warning("Falha ao fechar conexão Redis: %v", err)
		}
	}
}
