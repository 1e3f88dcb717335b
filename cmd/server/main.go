// @title           Com-Dominium API
// @version         1.0
// @description     API de gestão de condomínios: moradores, portaria, reservas e finanças.

// @host      localhost:3000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Informe o token com o prefixo `Bearer `
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Hellwig19/Com-Dominium-API/internal/app/routes"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/models"
	"github.com/Hellwig19/Com-Dominium-API/internal/domain/services"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/config"
	"github.com/Hellwig19/Com-Dominium-API/internal/infrastructure/database"
	"github.com/Hellwig19/Com-Dominium-API/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("falha ao inicializar o log: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warning("arquivo .env não carregado: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("falha ao criar o pool de conexões: %v", err)
		os.Exit(1)
	}

	if err := autoMigrate(pool.GetDB()); err != nil {
		logger.Error("falha na migração do banco: %v", err)
		os.Exit(1)
	}

	if err := services.NewAdminService(pool.GetDB(), cfg).EnsureDefaultAdmin(); err != nil {
		logger.Error("falha ao garantir a conta de administrador: %v", err)
		os.Exit(1)
	}

	r, serviceContainer := routes.SetupRouter(pool, cfg)

	printSystemInfo(pool)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Info("servidor iniciado em http://0.0.0.0:%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("falha ao iniciar o servidor: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("encerrando o servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("encerramento forçado: %v", err)
	}

	serviceContainer.Close()
	if err := pool.Close(); err != nil {
		logger.Error("falha ao fechar o pool de conexões: %v", err)
	}
	logger.Info("servidor encerrado")
}

// autoMigrate creates missing tables and columns; it never drops
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Cliente{},
		&models.Admin{},
		&models.LogAdmin{},
		&models.Residencia{},
		&models.Morador{},
		&models.Veiculo{},
		&models.Contato{},
		&models.Visita{},
		&models.Prestador{},
		&models.Visitante{},
		&models.Encomenda{},
		&models.Reserva{},
		&models.Pagamento{},
		&models.AreaComum{},
		&models.Aviso{},
		&models.Votacao{},
		&models.OpcaoVotacao{},
		&models.Voto{},
		&models.Sugestao{},
		&models.Notificacao{},
		&models.Manutencao{},
	)
}

func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		logger.Info("pool de conexões: %+v", stats)
	}
	logger.Info("núcleos de CPU: %d", runtime.NumCPU())
}
