package routes

import (
	"time"

	_ "github.com/Hellwig19/Com-Dominium-API/docs"
	"github.com/Hellwig19/Com-Dominium-API/internal/app/controllers"
	"github.com/Hellwig19/Com-Dominium-API/internal/app/middleware"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services/container"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the gin engine with all routes registered
func SetupRouter(pool *database.ConnectionPool, cfg *config.Config) (*gin.Engine, *container.ServiceContainer) {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	r.Use(middleware.Metrics())

	serviceContainer := container.NewServiceContainer(pool.GetDB(), cfg)
	middleware.InitAuthMiddleware(cfg, pool.GetDB())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(r, serviceContainer, pool)
	return r, serviceContainer
}

func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	pool *database.ConnectionPool,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container, pool)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes: probes, login and the onboarding endpoint
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	pool *database.ConnectionPool,
) {
	api.Use(middleware.RateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, pool, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, pool, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, pool, "status"))

	// Login mais restrito para conter tentativas de força bruta
	loginGroup := api.Group("/")
	loginGroup.Use(middleware.RateLimiter(5, 10))
	loginGroup.POST("/clientes/login", controllers.HandleAuthFunc(container, "loginCliente"))
	loginGroup.POST("/admins/login", controllers.HandleAuthFunc(container, "loginAdmin"))

	api.POST("/cadastro", controllers.HandleCadastroFunc(container, "cadastrar"))
}

// registerAuthenticatedRoutes: everything behind the JWT
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.VerificaToken())
	auth.Use(middleware.RateLimiter(30, 50))

	// Clientes: leitura e edição do próprio cadastro liberadas (o
	// controller valida a posse); gestão restrita
	clienteGroup := auth.Group("/clientes")
	clienteGroup.GET("/:id", controllers.HandleClienteFunc(container, "getCliente"))
	clienteGroup.PUT("/:id", controllers.HandleClienteFunc(container, "updateCliente"))
	clienteAdmin := clienteGroup.Group("")
	clienteAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarClientes))
	clienteAdmin.GET("", controllers.HandleClienteFunc(container, "getClientes"))
	clienteAdmin.POST("", controllers.HandleClienteFunc(container, "createCliente"))
	clienteAdmin.PATCH("/:id/desativar", controllers.HandleClienteFunc(container, "deactivateCliente"))
	clienteAdmin.DELETE("/:id", controllers.HandleClienteFunc(container, "deleteCliente"))

	// Admins
	adminGroup := auth.Group("/admins")
	adminGroup.Use(middleware.RequirePermission(middleware.PermGerenciarAdmins))
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	logGroup := auth.Group("/logs")
	logGroup.Use(middleware.RequirePermission(middleware.PermVerLogs))
	logGroup.GET("", controllers.HandleAdminFunc(container, "getLogs"))

	// Residências e seus vínculos (posse validada nos controllers)
	residenciaGroup := auth.Group("/residencias")
	residenciaGroup.GET("", controllers.HandleResidenciaFunc(container, "getResidencias"))
	residenciaGroup.GET("/:id", controllers.HandleResidenciaFunc(container, "getResidencia"))
	residenciaGroup.POST("", controllers.HandleResidenciaFunc(container, "createResidencia"))
	residenciaGroup.PUT("/:id", controllers.HandleResidenciaFunc(container, "updateResidencia"))
	residenciaGroup.DELETE("/:id", controllers.HandleResidenciaFunc(container, "deleteResidencia"))

	moradorGroup := auth.Group("/moradores")
	moradorGroup.GET("", controllers.HandleMoradorFunc(container, "getMoradores"))
	moradorGroup.GET("/:id", controllers.HandleMoradorFunc(container, "getMorador"))
	moradorGroup.POST("", controllers.HandleMoradorFunc(container, "createMorador"))
	moradorGroup.PUT("/:id", controllers.HandleMoradorFunc(container, "updateMorador"))
	moradorGroup.DELETE("/:id", controllers.HandleMoradorFunc(container, "deleteMorador"))

	veiculoGroup := auth.Group("/veiculos")
	veiculoGroup.GET("", controllers.HandleVeiculoFunc(container, "getVeiculos"))
	veiculoGroup.GET("/:id", controllers.HandleVeiculoFunc(container, "getVeiculo"))
	veiculoGroup.POST("", controllers.HandleVeiculoFunc(container, "createVeiculo"))
	veiculoGroup.PUT("/:id", controllers.HandleVeiculoFunc(container, "updateVeiculo"))
	veiculoGroup.DELETE("/:id", controllers.HandleVeiculoFunc(container, "deleteVeiculo"))

	contatoGroup := auth.Group("/contatos")
	contatoGroup.GET("", controllers.HandleContatoFunc(container, "getContatos"))
	contatoGroup.POST("", controllers.HandleContatoFunc(container, "createContato"))
	contatoGroup.PUT("/:id", controllers.HandleContatoFunc(container, "updateContato"))
	contatoGroup.DELETE("/:id", controllers.HandleContatoFunc(container, "deleteContato"))

	// Visitas agendadas pelo morador; entrada e saída são da portaria
	visitaGroup := auth.Group("/visitas")
	visitaGroup.GET("", controllers.HandleVisitaFunc(container, "getVisitas"))
	visitaGroup.GET("/:id", controllers.HandleVisitaFunc(container, "getVisita"))
	visitaGroup.POST("", controllers.HandleVisitaFunc(container, "createVisita"))
	visitaGroup.DELETE("/:id", controllers.HandleVisitaFunc(container, "deleteVisita"))
	visitaPortaria := visitaGroup.Group("")
	visitaPortaria.Use(middleware.RequirePermission(middleware.PermRegistrarVisitantes))
	visitaPortaria.PATCH("/:id/entrada", controllers.HandleVisitaFunc(container, "registrarEntrada"))
	visitaPortaria.PATCH("/:id/saida", controllers.HandleVisitaFunc(container, "registrarSaida"))

	prestadorGroup := auth.Group("/prestadores")
	prestadorGroup.GET("", controllers.HandlePrestadorFunc(container, "getPrestadores"))
	prestadorGroup.GET("/:id", controllers.HandlePrestadorFunc(container, "getPrestador"))
	prestadorGroup.POST("", controllers.HandlePrestadorFunc(container, "createPrestador"))
	prestadorGroup.DELETE("/:id", controllers.HandlePrestadorFunc(container, "deletePrestador"))
	prestadorPortaria := prestadorGroup.Group("")
	prestadorPortaria.Use(middleware.RequirePermission(middleware.PermRegistrarVisitantes))
	prestadorPortaria.PATCH("/:id/entrada", controllers.HandlePrestadorFunc(container, "registrarEntrada"))
	prestadorPortaria.PATCH("/:id/saida", controllers.HandlePrestadorFunc(container, "registrarSaida"))

	// Diário de portaria (visitantes avulsos)
	visitanteGroup := auth.Group("/visitantes")
	visitanteGroup.Use(middleware.RequirePermission(middleware.PermRegistrarVisitantes))
	visitanteGroup.GET("", controllers.HandleVisitanteFunc(container, "getVisitantes"))
	visitanteGroup.GET("/hoje", controllers.HandleVisitanteFunc(container, "getHoje"))
	visitanteGroup.POST("", controllers.HandleVisitanteFunc(container, "registrarEntrada"))
	visitanteGroup.POST("/entrada-agendada", controllers.HandleVisitanteFunc(container, "registrarEntradaAgendada"))
	visitanteGroup.PATCH("/:id/saida", controllers.HandleVisitanteFunc(container, "registrarSaida"))
	visitanteGroup.DELETE("/:id", controllers.HandleVisitanteFunc(container, "deleteVisitante"))

	// Encomendas: morador consulta as próprias; registro é da portaria
	encomendaGroup := auth.Group("/encomendas")
	encomendaGroup.GET("", controllers.HandleEncomendaFunc(container, "getEncomendas"))
	encomendaGroup.GET("/:id", controllers.HandleEncomendaFunc(container, "getEncomenda"))
	encomendaPortaria := encomendaGroup.Group("")
	encomendaPortaria.Use(middleware.RequirePermission(middleware.PermRegistrarEncomendas))
	encomendaPortaria.POST("", controllers.HandleEncomendaFunc(container, "registrarChegada"))
	encomendaPortaria.PATCH("/:id/retirada", controllers.HandleEncomendaFunc(container, "registrarRetirada"))
	encomendaPortaria.DELETE("/:id", controllers.HandleEncomendaFunc(container, "deleteEncomenda"))

	// Reservas de áreas comuns
	reservaGroup := auth.Group("/reservas")
	reservaGroup.GET("", controllers.HandleReservaFunc(container, "getReservas"))
	reservaGroup.GET("/datas-ocupadas", controllers.HandleReservaFunc(container, "getDatasOcupadas"))
	reservaGroup.GET("/:id", controllers.HandleReservaFunc(container, "getReserva"))
	reservaGroup.POST("", controllers.HandleReservaFunc(container, "createReserva"))
	reservaGroup.PATCH("/:id/cancelar", controllers.HandleReservaFunc(container, "cancelarReserva"))
	reservaAdmin := reservaGroup.Group("")
	reservaAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarAreas))
	reservaAdmin.PATCH("/:id/status", controllers.HandleReservaFunc(container, "atualizarStatus"))
	reservaAdmin.DELETE("/:id", controllers.HandleReservaFunc(container, "deleteReserva"))

	// Pagamentos: morador consulta e paga os próprios boletos
	pagamentoGroup := auth.Group("/pagamentos")
	pagamentoGroup.GET("", controllers.HandlePagamentoFunc(container, "getPagamentos"))
	pagamentoGroup.GET("/:id", controllers.HandlePagamentoFunc(container, "getPagamento"))
	pagamentoGroup.POST("/:id/pagar", controllers.HandlePagamentoFunc(container, "pagar"))
	pagamentoAdmin := pagamentoGroup.Group("")
	pagamentoAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarPagamentos))
	pagamentoAdmin.POST("", controllers.HandlePagamentoFunc(container, "createPagamento"))
	pagamentoAdmin.PATCH("/:id/confirmar", controllers.HandlePagamentoFunc(container, "confirmar"))
	pagamentoAdmin.DELETE("/:id", controllers.HandlePagamentoFunc(container, "deletePagamento"))

	// Catálogo de áreas comuns (leitura cacheada)
	areaGroup := auth.Group("/areas")
	areaGroup.GET("", middleware.Cache(5*time.Minute), controllers.HandleAreaFunc(container, "getAreas"))
	areaGroup.GET("/:id", middleware.Cache(5*time.Minute), controllers.HandleAreaFunc(container, "getArea"))
	areaAdmin := areaGroup.Group("")
	areaAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarAreas))
	areaAdmin.POST("", controllers.HandleAreaFunc(container, "createArea"))
	areaAdmin.PUT("/:id", controllers.HandleAreaFunc(container, "updateArea"))
	areaAdmin.DELETE("/:id", controllers.HandleAreaFunc(container, "deleteArea"))

	// Avisos (leitura cacheada)
	avisoGroup := auth.Group("/avisos")
	avisoGroup.GET("", middleware.Cache(1*time.Minute), controllers.HandleAvisoFunc(container, "getAvisos"))
	avisoGroup.GET("/:id", middleware.Cache(1*time.Minute), controllers.HandleAvisoFunc(container, "getAviso"))
	avisoAdmin := avisoGroup.Group("")
	avisoAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarAvisos))
	avisoAdmin.POST("", controllers.HandleAvisoFunc(container, "createAviso"))
	avisoAdmin.PUT("/:id", controllers.HandleAvisoFunc(container, "updateAviso"))
	avisoAdmin.DELETE("/:id", controllers.HandleAvisoFunc(container, "deleteAviso"))

	// Votações: morador lê, vota e consulta o resultado
	votacaoGroup := auth.Group("/votacoes")
	votacaoGroup.GET("", controllers.HandleVotacaoFunc(container, "getVotacoes"))
	votacaoGroup.GET("/:id", controllers.HandleVotacaoFunc(container, "getVotacao"))
	votacaoGroup.POST("/:id/votar", controllers.HandleVotacaoFunc(container, "votar"))
	votacaoGroup.GET("/:id/resultado", controllers.HandleVotacaoFunc(container, "getResultado"))
	votacaoAdmin := votacaoGroup.Group("")
	votacaoAdmin.Use(middleware.RequirePermission(middleware.PermGerenciarVotacoes))
	votacaoAdmin.POST("", controllers.HandleVotacaoFunc(container, "createVotacao"))
	votacaoAdmin.DELETE("/:id", controllers.HandleVotacaoFunc(container, "deleteVotacao"))

	// Sugestões
	sugestaoGroup := auth.Group("/sugestoes")
	sugestaoGroup.GET("", controllers.HandleSugestaoFunc(container, "getSugestoes"))
	sugestaoGroup.GET("/:id", controllers.HandleSugestaoFunc(container, "getSugestao"))
	sugestaoGroup.POST("", controllers.HandleSugestaoFunc(container, "createSugestao"))
	sugestaoGroup.DELETE("/:id", controllers.HandleSugestaoFunc(container, "deleteSugestao"))
	sugestaoGroup.PATCH("/:id/lida",
		middleware.RequirePermission(middleware.PermGerenciarClientes),
		controllers.HandleSugestaoFunc(container, "marcarLida"))

	// Manutenções
	manutencaoGroup := auth.Group("/manutencoes")
	manutencaoGroup.GET("", controllers.HandleManutencaoFunc(container, "getManutencoes"))
	manutencaoGroup.GET("/:id", controllers.HandleManutencaoFunc(container, "getManutencao"))
	manutencaoGroup.POST("", controllers.HandleManutencaoFunc(container, "createManutencao"))
	manutencaoGroup.DELETE("/:id", controllers.HandleManutencaoFunc(container, "deleteManutencao"))
	manutencaoGroup.PATCH("/:id/prioridade",
		middleware.RequirePermission(middleware.PermGerenciarAreas),
		controllers.HandleManutencaoFunc(container, "alterarPrioridade"))
	manutencaoGroup.PATCH("/:id/concluir",
		middleware.RequirePermission(middleware.PermGerenciarAreas),
		controllers.HandleManutencaoFunc(container, "concluir"))

	// Notificações (sempre do próprio morador)
	notificacaoGroup := auth.Group("/notificacoes")
	notificacaoGroup.GET("", controllers.HandleNotificacaoFunc(container, "getNotificacoes"))
	notificacaoGroup.GET("/nao-lidas", controllers.HandleNotificacaoFunc(container, "getNaoLidas"))
	notificacaoGroup.PATCH("/:id/lida", controllers.HandleNotificacaoFunc(container, "marcarLida"))
	notificacaoGroup.PATCH("/lidas", controllers.HandleNotificacaoFunc(container, "marcarTodasLidas"))
	notificacaoGroup.DELETE("/:id", controllers.HandleNotificacaoFunc(container, "deleteNotificacao"))

	// Feed de atividades
	atividadeGroup := auth.Group("/atividades")
	atividadeGroup.GET("/recentes", controllers.HandleAtividadeFunc(container, "feedRecentes"))
	atividadeGroup.GET("/geral",
		middleware.RequirePermission(middleware.PermVerFeedGeral),
		controllers.HandleAtividadeFunc(container, "feedGeral"))

	// Dashboard da administração
	dashboardGroup := auth.Group("/dashboard")
	dashboardGroup.Use(middleware.RequirePermission(middleware.PermVerDashboard))
	dashboardGroup.GET("", controllers.HandleDashboardFunc(container, "getResumo"))
}
